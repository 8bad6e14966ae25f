package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(ctx context.Context, c *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	Update(ctx context.Context, c *entity.Cliente) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.Cliente, error)
}
