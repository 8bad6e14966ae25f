package postgres

import (
	"context"
	"fmt"
)

// tablas de publicaciones con columna de dueño backfilleable.
var backfillTables = []string{"paquetes", "trenes", "circuitos", "cupos", "clientes", "reservas"}

// Backfiller asigna dueño a las filas legacy que quedaron con
// published_by_user_id en NULL (datos migrados de la plataforma vieja).
// Mientras el backfill no corre, esas filas pasan los chequeos de ownership
// con una advertencia de auditoría; correrlo cierra esa ventana.
type Backfiller struct {
	q Querier
}

// NewBackfiller construye el backfiller de dueños.
func NewBackfiller(q Querier) *Backfiller {
	return &Backfiller{q: q}
}

// Run asigna ownerID a toda fila sin dueño, tabla por tabla, y devuelve
// cuántas filas se actualizaron en cada una.
func (b *Backfiller) Run(ctx context.Context, ownerID int64) (map[string]int64, error) {
	updated := make(map[string]int64, len(backfillTables))
	for _, table := range backfillTables {
		query := fmt.Sprintf(`UPDATE %s SET published_by_user_id = $1, updated_at = now() WHERE published_by_user_id IS NULL`, table)
		cmd, err := b.q.Exec(ctx, query, ownerID)
		if err != nil {
			return updated, fmt.Errorf("backfill de %s: %w", table, err)
		}
		updated[table] = cmd.RowsAffected()
	}
	return updated, nil
}

// Pendientes cuenta cuántas filas siguen sin dueño por tabla.
func (b *Backfiller) Pendientes(ctx context.Context) (map[string]int64, error) {
	pending := make(map[string]int64, len(backfillTables))
	for _, table := range backfillTables {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE published_by_user_id IS NULL`, table)
		var n int64
		if err := b.q.QueryRow(ctx, query).Scan(&n); err != nil {
			return pending, fmt.Errorf("pendientes de %s: %w", table, err)
		}
		pending[table] = n
	}
	return pending, nil
}
