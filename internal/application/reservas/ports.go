package reservas

import (
	"context"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cupoRepo repository.CupoRepository,
		reservaRepo repository.ReservaRepository,
	) error) error
}

// VoucherGenerator genera el comprobante PDF de una reserva confirmada.
// Lo implementa pdf.MarotoVoucherGenerator.
type VoucherGenerator interface {
	Generate(reserva *entity.Reserva, cliente *entity.Cliente, cupo *entity.CupoAereo) ([]byte, error)
}
