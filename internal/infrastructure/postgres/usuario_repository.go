package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y devuelve el id asignado por la DB.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) (int64, error) {
	query := `
		INSERT INTO usuarios (email, password_hash, nombre, role, user_type, publica_productos, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		u.Email, u.PasswordHash, u.Nombre, u.Role, u.UserType, u.PublicaProductos, u.Status, u.CreatedAt, u.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("insert usuario: %w", err)
	}
	return id, nil
}

// GetByID obtiene un usuario por ID. Nil si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, role, user_type, publica_productos, status, created_at, updated_at
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Role, &u.UserType, &u.PublicaProductos, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// FindByEmail obtiene un usuario por email. Nil si no existe.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, password_hash, nombre, role, user_type, publica_productos, status, created_at, updated_at
		FROM usuarios WHERE email = $1`
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Role, &u.UserType, &u.PublicaProductos, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find usuario por email: %w", err)
	}
	return &u, nil
}

// FirstAdminID devuelve el id del admin más antiguo (cero si no hay admins).
func (r *UsuarioRepo) FirstAdminID(ctx context.Context) (int64, error) {
	var id int64
	err := r.q.QueryRow(ctx,
		`SELECT id FROM usuarios WHERE role IN ('admin', 'sysadmin') ORDER BY created_at ASC LIMIT 1`,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("first admin: %w", err)
	}
	return id, nil
}
