package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ repository.ClickRepository = (*ClickRepo)(nil)

// ClickRepo registro durable de clicks. El contador caliente vive en Redis;
// esta tabla es la fuente de verdad para los reportes.
type ClickRepo struct {
	q Querier
}

// NewClickRepository construye el adaptador de persistencia para clicks.
func NewClickRepository(q Querier) *ClickRepo {
	return &ClickRepo{q: q}
}

// Insert registra un evento de click.
func (r *ClickRepo) Insert(ctx context.Context, c *entity.Click) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO clicks (modulo, publicacion_id, user_id, created_at) VALUES ($1, $2, $3, $4)`,
		c.Modulo, c.PublicacionID, c.UserID, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}
