package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// PaqueteRepository define el puerto de persistencia para Paquete.
// GetByID devuelve nil sin error si la fila no existe. OwnerOf es la consulta
// puntual que usa el middleware de ownership (dueño, existencia).
type PaqueteRepository interface {
	Create(ctx context.Context, p *entity.Paquete) error
	GetByID(ctx context.Context, id string) (*entity.Paquete, error)
	OwnerOf(ctx context.Context, id string) (*int64, bool, error)
	Update(ctx context.Context, p *entity.Paquete) error
	// Delete es baja lógica: activo = false.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, scope Scope, limit, offset int) ([]*entity.Paquete, error)
	// ListDestacados lista paquetes públicos y destacados para la vidriera B2C.
	ListDestacados(ctx context.Context, limit int) ([]*entity.Paquete, error)
}
