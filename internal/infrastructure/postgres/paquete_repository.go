package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ repository.PaqueteRepository = (*PaqueteRepo)(nil)

// PaqueteRepo implementación del puerto PaqueteRepository sobre PostgreSQL.
type PaqueteRepo struct {
	q Querier
}

// NewPaqueteRepository construye el adaptador de persistencia para paquetes.
func NewPaqueteRepository(q Querier) *PaqueteRepo {
	return &PaqueteRepo{q: q}
}

const paqueteColumns = `id, COALESCE(published_by_user_id, 0), nombre, descripcion, destino, dias, noches, precio, moneda, is_public, destacado, activo, created_at, updated_at`

func scanPaquete(row pgx.Row) (*entity.Paquete, error) {
	var p entity.Paquete
	err := row.Scan(
		&p.ID, &p.PublishedByUserID, &p.Nombre, &p.Descripcion, &p.Destino, &p.Dias, &p.Noches,
		&p.Precio, &p.Moneda, &p.IsPublic, &p.Destacado, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo paquete.
func (r *PaqueteRepo) Create(ctx context.Context, p *entity.Paquete) error {
	query := `
		INSERT INTO paquetes (id, published_by_user_id, nombre, descripcion, destino, dias, noches, precio, moneda, is_public, destacado, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.PublishedByUserID, p.Nombre, p.Descripcion, p.Destino, p.Dias, p.Noches,
		p.Precio, p.Moneda, p.IsPublic, p.Destacado, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert paquete: %w", err)
	}
	return nil
}

// GetByID obtiene un paquete por ID. Nil si no existe.
func (r *PaqueteRepo) GetByID(ctx context.Context, id string) (*entity.Paquete, error) {
	p, err := scanPaquete(r.q.QueryRow(ctx, `SELECT `+paqueteColumns+` FROM paquetes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paquete: %w", err)
	}
	return p, nil
}

// OwnerOf devuelve el dueño de la fila y si la fila existe. El dueño puede
// ser nil en filas legacy pendientes de backfill.
func (r *PaqueteRepo) OwnerOf(ctx context.Context, id string) (*int64, bool, error) {
	var owner *int64
	err := r.q.QueryRow(ctx, `SELECT published_by_user_id FROM paquetes WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("owner de paquete: %w", err)
	}
	return owner, true, nil
}

// Update actualiza un paquete. published_by_user_id nunca se toca por acá.
func (r *PaqueteRepo) Update(ctx context.Context, p *entity.Paquete) error {
	query := `
		UPDATE paquetes SET nombre = $2, descripcion = $3, destino = $4, dias = $5, noches = $6,
			precio = $7, moneda = $8, is_public = $9, destacado = $10, activo = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.Destino, p.Dias, p.Noches,
		p.Precio, p.Moneda, p.IsPublic, p.Destacado, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update paquete: %w", err)
	}
	return nil
}

// Delete baja lógica: activo = false.
func (r *PaqueteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE paquetes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paquete: %w", err)
	}
	return nil
}

// List lista paquetes honrando el alcance de ownership.
func (r *PaqueteRepo) List(ctx context.Context, scope repository.Scope, limit, offset int) ([]*entity.Paquete, error) {
	query := `SELECT ` + paqueteColumns + ` FROM paquetes WHERE activo = true`
	args := []any{}
	if scope.OwnerID != nil {
		query += ` AND published_by_user_id = $1`
		args = append(args, *scope.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list paquetes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paquete
	for rows.Next() {
		p, err := scanPaquete(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paquete: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListDestacados lista paquetes públicos y destacados para la vidriera B2C.
func (r *PaqueteRepo) ListDestacados(ctx context.Context, limit int) ([]*entity.Paquete, error) {
	query := `SELECT ` + paqueteColumns + ` FROM paquetes
		WHERE is_public = true AND destacado = true AND ` + estadoColumn(policy.ModPaquetes) + ` = true
		ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list paquetes destacados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paquete
	for rows.Next() {
		p, err := scanPaquete(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paquete: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
