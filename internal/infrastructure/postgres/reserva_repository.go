package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ repository.ReservaRepository = (*ReservaRepo)(nil)

// ReservaRepo implementación del puerto ReservaRepository sobre PostgreSQL.
type ReservaRepo struct {
	q Querier
}

// NewReservaRepository construye el adaptador de persistencia para reservas.
func NewReservaRepository(q Querier) *ReservaRepo {
	return &ReservaRepo{q: q}
}

const reservaColumns = `id, COALESCE(published_by_user_id, 0), cliente_id, cupo_id, pasajeros, total, moneda, estado, created_at, updated_at`

func scanReserva(row pgx.Row) (*entity.Reserva, error) {
	var rv entity.Reserva
	err := row.Scan(
		&rv.ID, &rv.PublishedByUserID, &rv.ClienteID, &rv.CupoID, &rv.Pasajeros,
		&rv.Total, &rv.Moneda, &rv.Estado, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create persiste una nueva reserva. Corre dentro de la transacción que
// descuenta las plazas del cupo.
func (r *ReservaRepo) Create(ctx context.Context, rv *entity.Reserva) error {
	query := `
		INSERT INTO reservas (id, published_by_user_id, cliente_id, cupo_id, pasajeros, total, moneda, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		rv.ID, rv.PublishedByUserID, rv.ClienteID, rv.CupoID, rv.Pasajeros,
		rv.Total, rv.Moneda, rv.Estado, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reserva: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por ID. Nil si no existe.
func (r *ReservaRepo) GetByID(ctx context.Context, id string) (*entity.Reserva, error) {
	rv, err := scanReserva(r.q.QueryRow(ctx, `SELECT `+reservaColumns+` FROM reservas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reserva: %w", err)
	}
	return rv, nil
}

// OwnerOf devuelve el dueño de la fila y si la fila existe.
func (r *ReservaRepo) OwnerOf(ctx context.Context, id string) (*int64, bool, error) {
	var owner *int64
	err := r.q.QueryRow(ctx, `SELECT published_by_user_id FROM reservas WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("owner de reserva: %w", err)
	}
	return owner, true, nil
}

// UpdateEstado cambia el estado de la reserva (confirmada, cancelada).
func (r *ReservaRepo) UpdateEstado(ctx context.Context, id, estado string) error {
	_, err := r.q.Exec(ctx, `UPDATE reservas SET estado = $2, updated_at = now() WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado de reserva: %w", err)
	}
	return nil
}

// List lista reservas honrando el alcance de ownership.
func (r *ReservaRepo) List(ctx context.Context, scope repository.Scope, limit, offset int) ([]*entity.Reserva, error) {
	query := `SELECT ` + reservaColumns + ` FROM reservas`
	args := []any{}
	if scope.OwnerID != nil {
		query += ` WHERE published_by_user_id = $1`
		args = append(args, *scope.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reserva
	for rows.Next() {
		rv, err := scanReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reserva: %w", err)
		}
		list = append(list, rv)
	}
	return list, rows.Err()
}
