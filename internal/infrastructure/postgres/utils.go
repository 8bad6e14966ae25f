package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tu-usuario/turismo-market/internal/domain/policy"
)

// Querier es el contrato mínimo común entre *pgxpool.Pool y pgx.Tx, para que
// los repositorios sirvan igual dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// estadoColumn devuelve la columna de estado que el registro de módulos
// declara para el módulo (activo o disponible). Los repos de la vidriera la
// usan en vez de fijar la columna a mano, así el predicado sale del mismo
// registro que consume la capa de políticas.
func estadoColumn(moduleName string) string {
	m, ok := policy.ModuleByName(moduleName)
	if !ok || m.CampoEstado == policy.EstadoNinguno {
		return ""
	}
	return m.CampoEstado
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}
