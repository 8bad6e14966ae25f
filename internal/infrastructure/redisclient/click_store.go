package redisclient

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tu-usuario/turismo-market/internal/application/reportes"
	"github.com/tu-usuario/turismo-market/internal/application/tracking"
)

var (
	_ tracking.ClickCounter = (*ClickStore)(nil)
	_ reportes.ClickCounter = (*ClickStore)(nil)
)

// ClickStore contador caliente de clicks por módulo y publicación.
//
// Claves:
//
//	clicks:modulo:{modulo}                  total por módulo
//	clicks:pub:{modulo}:{publicacionID}     total por publicación
type ClickStore struct {
	rdb *redis.Client
}

// NewClickStore construye el contador sobre el cliente dado.
func NewClickStore(rdb *redis.Client) *ClickStore {
	return &ClickStore{rdb: rdb}
}

// Incr incrementa los contadores del módulo y de la publicación.
func (s *ClickStore) Incr(ctx context.Context, modulo, publicacionID string) error {
	pipe := s.rdb.Pipeline()
	pipe.Incr(ctx, fmt.Sprintf("clicks:modulo:%s", modulo))
	pipe.Incr(ctx, fmt.Sprintf("clicks:pub:%s:%s", modulo, publicacionID))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("incr clicks: %w", err)
	}
	return nil
}

// TotalPorModulo devuelve el total acumulado del módulo. Clave ausente
// cuenta como cero.
func (s *ClickStore) TotalPorModulo(ctx context.Context, modulo string) (int64, error) {
	n, err := s.rdb.Get(ctx, fmt.Sprintf("clicks:modulo:%s", modulo)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("total de clicks por modulo: %w", err)
	}
	return n, nil
}
