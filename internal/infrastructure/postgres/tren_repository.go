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

var _ repository.TrenRepository = (*TrenRepo)(nil)

// TrenRepo implementación del puerto TrenRepository sobre PostgreSQL.
type TrenRepo struct {
	q Querier
}

// NewTrenRepository construye el adaptador de persistencia para trenes.
func NewTrenRepository(q Querier) *TrenRepo {
	return &TrenRepo{q: q}
}

const trenColumns = `id, COALESCE(published_by_user_id, 0), nombre, origen, destino, salida, precio, moneda, is_public, destacado, activo, created_at, updated_at`

func scanTren(row pgx.Row) (*entity.Tren, error) {
	var t entity.Tren
	err := row.Scan(
		&t.ID, &t.PublishedByUserID, &t.Nombre, &t.Origen, &t.Destino, &t.Salida,
		&t.Precio, &t.Moneda, &t.IsPublic, &t.Destacado, &t.Activo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste un nuevo tren.
func (r *TrenRepo) Create(ctx context.Context, t *entity.Tren) error {
	query := `
		INSERT INTO trenes (id, published_by_user_id, nombre, origen, destino, salida, precio, moneda, is_public, destacado, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.PublishedByUserID, t.Nombre, t.Origen, t.Destino, t.Salida,
		t.Precio, t.Moneda, t.IsPublic, t.Destacado, t.Activo, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tren: %w", err)
	}
	return nil
}

// GetByID obtiene un tren por ID. Nil si no existe.
func (r *TrenRepo) GetByID(ctx context.Context, id string) (*entity.Tren, error) {
	t, err := scanTren(r.q.QueryRow(ctx, `SELECT `+trenColumns+` FROM trenes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tren: %w", err)
	}
	return t, nil
}

// OwnerOf devuelve el dueño de la fila y si la fila existe.
func (r *TrenRepo) OwnerOf(ctx context.Context, id string) (*int64, bool, error) {
	var owner *int64
	err := r.q.QueryRow(ctx, `SELECT published_by_user_id FROM trenes WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("owner de tren: %w", err)
	}
	return owner, true, nil
}

// Update actualiza un tren. published_by_user_id nunca se toca por acá.
func (r *TrenRepo) Update(ctx context.Context, t *entity.Tren) error {
	query := `
		UPDATE trenes SET nombre = $2, origen = $3, destino = $4, salida = $5,
			precio = $6, moneda = $7, is_public = $8, destacado = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.Nombre, t.Origen, t.Destino, t.Salida,
		t.Precio, t.Moneda, t.IsPublic, t.Destacado, t.Activo, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tren: %w", err)
	}
	return nil
}

// Delete baja lógica: activo = false.
func (r *TrenRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE trenes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tren: %w", err)
	}
	return nil
}

// List lista trenes honrando el alcance de ownership.
func (r *TrenRepo) List(ctx context.Context, scope repository.Scope, limit, offset int) ([]*entity.Tren, error) {
	query := `SELECT ` + trenColumns + ` FROM trenes WHERE activo = true`
	args := []any{}
	if scope.OwnerID != nil {
		query += ` AND published_by_user_id = $1`
		args = append(args, *scope.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list trenes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tren
	for rows.Next() {
		t, err := scanTren(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tren: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListDestacados lista trenes públicos y destacados para la vidriera B2C.
func (r *TrenRepo) ListDestacados(ctx context.Context, limit int) ([]*entity.Tren, error) {
	query := `SELECT ` + trenColumns + ` FROM trenes
		WHERE is_public = true AND destacado = true AND ` + estadoColumn(policy.ModTrenes) + ` = true
		ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list trenes destacados: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tren
	for rows.Next() {
		t, err := scanTren(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tren: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
