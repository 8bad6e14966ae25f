package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// CircuitoRepository define el puerto de persistencia para Circuito.
type CircuitoRepository interface {
	Create(ctx context.Context, c *entity.Circuito) error
	GetByID(ctx context.Context, id string) (*entity.Circuito, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	Update(ctx context.Context, c *entity.Circuito) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.Circuito, error)
	ListDestacados(ctx context.Context, limit int) ([]*entity.Circuito, error)
}
