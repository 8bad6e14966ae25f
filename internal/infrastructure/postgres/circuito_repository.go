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

var _ repository.CircuitoRepository = (*CircuitoRepo)(nil)

// CircuitoRepo implementación del puerto CircuitoRepository sobre PostgreSQL.
type CircuitoRepo struct {
	q Querier
}

// NewCircuitoRepository construye el adaptador de persistencia para circuitos.
func NewCircuitoRepository(q Querier) *CircuitoRepo {
	return &CircuitoRepo{q: q}
}

const circuitoColumns = `id, COALESCE(published_by_user_id, 0), nombre, descripcion, paises, duracion_dias, precio, moneda, is_public, destacado, activo, created_at, updated_at`

func scanCircuito(row pgx.Row) (*entity.Circuito, error) {
	var c entity.Circuito
	err := row.Scan(
		&c.ID, &c.PublishedByUserID, &c.Nombre, &c.Descripcion, &c.Paises, &c.DuracionDias,
		&c.Precio, &c.Moneda, &c.IsPublic, &c.Destacado, &c.Activo, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo circuito.
func (r *CircuitoRepo) Create(ctx context.Context, c *entity.Circuito) error {
	query := `
		INSERT INTO circuitos (id, published_by_user_id, nombre, descripcion, paises, duracion_dias, precio, moneda, is_public, destacado, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.PublishedByUserID, c.Nombre, c.Descripcion, c.Paises, c.DuracionDias,
		c.Precio, c.Moneda, c.IsPublic, c.Destacado, c.Activo, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert circuito: %w", err)
	}
	return nil
}

// GetByID obtiene un circuito por ID. Nil si no existe.
func (r *CircuitoRepo) GetByID(ctx context.Context, id string) (*entity.Circuito, error) {
	c, err := scanCircuito(r.q.QueryRow(ctx, `SELECT `+circuitoColumns+` FROM circuitos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get circuito: %w", err)
	}
	return c, nil
}

// OwnerOf devuelve el dueño de la fila y si la fila existe.
func (r *CircuitoRepo) OwnerOf(ctx context.Context, id string) (*int64, bool, error) {
	var owner *int64
	err := r.q.QueryRow(ctx, `SELECT published_by_user_id FROM circuitos WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("owner de circuito: %w", err)
	}
	return owner, true, nil
}

// Update actualiza un circuito. published_by_user_id nunca se toca por acá.
func (r *CircuitoRepo) Update(ctx context.Context, c *entity.Circuito) error {
	query := `
		UPDATE circuitos SET nombre = $2, descripcion = $3, paises = $4, duracion_dias = $5,
			precio = $6, moneda = $7, is_public = $8, destacado = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Nombre, c.Descripcion, c.Paises, c.DuracionDias,
		c.Precio, c.Moneda, c.IsPublic, c.Destacado, c.Activo, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update circuito: %w", err)
	}
	return nil
}

// Delete baja lógica: activo = false.
func (r *CircuitoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE circuitos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete circuito: %w", err)
	}
	return nil
}

// List lista circuitos honrando el alcance de ownership.
func (r *CircuitoRepo) List(ctx context.Context, scope repository.Scope, limit, offset int) ([]*entity.Circuito, error) {
	query := `SELECT ` + circuitoColumns + ` FROM circuitos WHERE activo = true`
	args := []any{}
	if scope.OwnerID != nil {
		query += ` AND published_by_user_id = $1`
		args = append(args, *scope.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list circuitos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Circuito
	for rows.Next() {
		c, err := scanCircuito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circuito: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListDestacados lista circuitos públicos y destacados para la vidriera B2C.
func (r *CircuitoRepo) ListDestacados(ctx context.Context, limit int) ([]*entity.Circuito, error) {
	query := `SELECT ` + circuitoColumns + ` FROM circuitos
		WHERE is_public = true AND destacado = true AND ` + estadoColumn(policy.ModCircuitos) + ` = true
		ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list circuitos destacados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Circuito
	for rows.Next() {
		c, err := scanCircuito(rows)
		if err != nil {
			return nil, fmt.Errorf("scan circuito: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
