package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// CupoRepository define el puerto de persistencia para CupoAereo.
//
// List con Scope sin restricción es el caso normal en este módulo (lectura
// abierta del mercado); el Scope restringido se usa para "mis cupos".
// DescontarPlazas corre dentro de la transacción de reserva.
type CupoRepository interface {
	Create(ctx context.Context, c *entity.CupoAereo) error
	GetByID(ctx context.Context, id string) (*entity.CupoAereo, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	Update(ctx context.Context, c *entity.CupoAereo) error
	// Delete es baja lógica: disponible = false.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.CupoAereo, error)
	// DescontarPlazas descuenta plazas de forma atómica; devuelve
	// domain.ErrCupoAgotado si no hay plazas suficientes.
	DescontarPlazas(ctx context.Context, id string, plazas int) error
	// ReponerPlazas devuelve plazas al cupo (cancelación de reserva).
	ReponerPlazas(ctx context.Context, id string, plazas int) error
}
