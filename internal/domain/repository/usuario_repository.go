package repository

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	// FirstAdminID devuelve el id del admin más antiguo (dueño por defecto del
	// backfill de filas huérfanas). Cero si no hay admins.
	FirstAdminID(ctx context.Context) (int64, error)
}
