package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

var _ reservas.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Se usa para crear/cancelar reservas moviendo plazas del cupo de forma
// atómica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner transaccional sobre el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run abre una transacción, reconstruye los repos sobre ella y la comitea
// solo si el callback termina sin error.
func (t *TxRunner) Run(ctx context.Context, fn func(cupoRepo repository.CupoRepository, reservaRepo repository.ReservaRepository) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewCupoRepository(tx), NewReservaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
