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

var _ repository.CupoRepository = (*CupoRepo)(nil)

// CupoRepo implementación del puerto CupoRepository sobre PostgreSQL.
type CupoRepo struct {
	q Querier
}

// NewCupoRepository construye el adaptador de persistencia para cupos aéreos.
func NewCupoRepository(q Querier) *CupoRepo {
	return &CupoRepo{q: q}
}

const cupoColumns = `id, COALESCE(published_by_user_id, 0), is_public, destacado, aerolinea, origen, destino, fecha_salida, fecha_regreso, plazas_totales, plazas_disponibles, tarifa, moneda, disponible, created_at, updated_at`

func scanCupo(row pgx.Row) (*entity.CupoAereo, error) {
	var c entity.CupoAereo
	err := row.Scan(
		&c.ID, &c.PublishedByUserID, &c.IsPublic, &c.Destacado, &c.Aerolinea, &c.Origen, &c.Destino, &c.FechaSalida, &c.FechaRegreso,
		&c.PlazasTotales, &c.PlazasDisponibles, &c.Tarifa, &c.Moneda, &c.Disponible, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cupo.
func (r *CupoRepo) Create(ctx context.Context, c *entity.CupoAereo) error {
	query := `
		INSERT INTO cupos (id, published_by_user_id, is_public, destacado, aerolinea, origen, destino, fecha_salida, fecha_regreso, plazas_totales, plazas_disponibles, tarifa, moneda, disponible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.PublishedByUserID, c.IsPublic, c.Destacado, c.Aerolinea, c.Origen, c.Destino, c.FechaSalida, c.FechaRegreso,
		c.PlazasTotales, c.PlazasDisponibles, c.Tarifa, c.Moneda, c.Disponible, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cupo: %w", err)
	}
	return nil
}

// GetByID obtiene un cupo por ID. Nil si no existe.
func (r *CupoRepo) GetByID(ctx context.Context, id string) (*entity.CupoAereo, error) {
	c, err := scanCupo(r.q.QueryRow(ctx, `SELECT `+cupoColumns+` FROM cupos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cupo: %w", err)
	}
	return c, nil
}

// OwnerOf devuelve el dueño de la fila y si la fila existe.
func (r *CupoRepo) OwnerOf(ctx context.Context, id string) (*int64, bool, error) {
	var owner *int64
	err := r.q.QueryRow(ctx, `SELECT published_by_user_id FROM cupos WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("owner de cupo: %w", err)
	}
	return owner, true, nil
}

// Update actualiza un cupo. Las plazas y el dueño no se tocan por acá.
func (r *CupoRepo) Update(ctx context.Context, c *entity.CupoAereo) error {
	query := `
		UPDATE cupos SET aerolinea = $2, origen = $3, destino = $4, fecha_salida = $5, fecha_regreso = $6,
			tarifa = $7, moneda = $8, is_public = $9, destacado = $10, disponible = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Aerolinea, c.Origen, c.Destino, c.FechaSalida, c.FechaRegreso,
		c.Tarifa, c.Moneda, c.IsPublic, c.Destacado, c.Disponible, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cupo: %w", err)
	}
	return nil
}

// Delete baja lógica: disponible = false.
func (r *CupoRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE cupos SET disponible = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cupo: %w", err)
	}
	return nil
}

// List lista cupos honrando el alcance. En el mercado el alcance llega sin
// restricción (lectura abierta).
func (r *CupoRepo) List(ctx context.Context, scope repository.Scope, limit, offset int) ([]*entity.CupoAereo, error) {
	query := `SELECT ` + cupoColumns + ` FROM cupos WHERE disponible = true`
	args := []any{}
	if scope.OwnerID != nil {
		query += ` AND published_by_user_id = $1`
		args = append(args, *scope.OwnerID)
	}
	query += fmt.Sprintf(` ORDER BY fecha_salida ASC LIMIT %d OFFSET %d`, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cupos: %w", err)
	}
	defer rows.Close()
	var list []*entity.CupoAereo
	for rows.Next() {
		c, err := scanCupo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cupo: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// DescontarPlazas descuenta plazas de forma atómica. El WHERE con el mínimo
// de plazas evita sobrevender bajo concurrencia: cero filas afectadas
// significa plazas insuficientes.
func (r *CupoRepo) DescontarPlazas(ctx context.Context, id string, plazas int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE cupos SET plazas_disponibles = plazas_disponibles - $2, updated_at = now()
		 WHERE id = $1 AND plazas_disponibles >= $2`,
		id, plazas,
	)
	if err != nil {
		return fmt.Errorf("descontar plazas: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrCupoAgotado
	}
	return nil
}

// ReponerPlazas devuelve plazas al cupo (cancelación), sin superar el total.
func (r *CupoRepo) ReponerPlazas(ctx context.Context, id string, plazas int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE cupos SET plazas_disponibles = LEAST(plazas_disponibles + $2, plazas_totales), updated_at = now()
		 WHERE id = $1`,
		id, plazas,
	)
	if err != nil {
		return fmt.Errorf("reponer plazas: %w", err)
	}
	return nil
}
