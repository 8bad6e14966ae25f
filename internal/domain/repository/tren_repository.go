package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// TrenRepository define el puerto de persistencia para Tren.
type TrenRepository interface {
	Create(ctx context.Context, t *entity.Tren) error
	GetByID(ctx context.Context, id string) (*entity.Tren, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	Update(ctx context.Context, t *entity.Tren) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.Tren, error)
	ListDestacados(ctx context.Context, limit int) ([]*entity.Tren, error)
}
