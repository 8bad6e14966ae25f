package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// ReservaRepository define el puerto de persistencia para Reserva.
type ReservaRepository interface {
	Create(ctx context.Context, r *entity.Reserva) error
	GetByID(ctx context.Context, id string) (*entity.Reserva, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	UpdateEstado(ctx context.Context, id, estado string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.Reserva, error)
}
