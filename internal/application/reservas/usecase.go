// Package reservas implementa la toma de reservas sobre cupos del mercado:
// alta transaccional (reserva + descuento de plazas), cancelación con
// reposición de plazas y emisión del voucher PDF.
package reservas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ReservaUseCase casos de uso de reservas.
type ReservaUseCase struct {
	tx          TxRunner
	reservaRepo repository.ReservaRepository
	cupoRepo    repository.CupoRepository
	clienteRepo repository.ClienteRepository
	voucher     VoucherGenerator
	log         *logger.Logger
}

// NewReservaUseCase construye el caso de uso.
func NewReservaUseCase(
	tx TxRunner,
	reservaRepo repository.ReservaRepository,
	cupoRepo repository.CupoRepository,
	clienteRepo repository.ClienteRepository,
	voucher VoucherGenerator,
	log *logger.Logger,
) *ReservaUseCase {
	return &ReservaUseCase{
		tx:          tx,
		reservaRepo: reservaRepo,
		cupoRepo:    cupoRepo,
		clienteRepo: clienteRepo,
		voucher:     voucher,
		log:         log,
	}
}

// Create toma una reserva para el vendedor autenticado: valida que el cliente
// pertenezca a su cartera, que el cupo esté disponible con plazas suficientes
// y descuenta las plazas en la misma transacción que persiste la reserva.
//
// El cupo puede ser ajeno (lectura abierta del mercado); la cartera no.
func (uc *ReservaUseCase) Create(ctx context.Context, p *policy.Principal, in dto.CreateReservaRequest) (*dto.ReservaResponse, error) {
	if in.Pasajeros < 1 {
		return nil, domain.ErrInvalidInput
	}

	clienteOwner, found, err := uc.clienteRepo.OwnerOf(ctx, in.ClienteID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	v := policy.ResolveMutationVerdict(p, mustClientes(), clienteOwner)
	if !v.Allowed {
		return nil, domain.ErrForbidden
	}
	if v.Warning != "" {
		uc.log.Audit().Warn().
			Int64("user_id", p.ID).
			Str("rol", p.EffectiveRole()).
			Str("cliente_id", in.ClienteID).
			Str("advertencia", v.Warning).
			Msg("reserva sobre cliente sin dueño registrado")
	}

	cupo, err := uc.cupoRepo.GetByID(ctx, in.CupoID)
	if err != nil {
		return nil, err
	}
	if cupo == nil {
		return nil, domain.ErrNotFound
	}
	if !cupo.Disponible {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	r := &entity.Reserva{
		ID:                uuid.New().String(),
		PublishedByUserID: p.ID,
		ClienteID:         in.ClienteID,
		CupoID:            in.CupoID,
		Pasajeros:         in.Pasajeros,
		Total:             cupo.Tarifa.Mul(decimal.NewFromInt(int64(in.Pasajeros))),
		Moneda:            cupo.Moneda,
		Estado:            entity.ReservaConfirmada,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = uc.tx.Run(ctx, func(cupoRepo repository.CupoRepository, reservaRepo repository.ReservaRepository) error {
		if err := cupoRepo.DescontarPlazas(ctx, in.CupoID, in.Pasajeros); err != nil {
			return err
		}
		return reservaRepo.Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return toReservaResponse(r), nil
}

// GetByID obtiene una reserva por ID. Nil si no existe.
func (uc *ReservaUseCase) GetByID(ctx context.Context, id string) (*dto.ReservaResponse, error) {
	r, err := uc.reservaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return toReservaResponse(r), nil
}

// List lista reservas según el alcance resuelto por la política.
func (uc *ReservaUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.ReservaListResponse, error) {
	list, err := uc.reservaRepo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReservaResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReservaResponse(r))
	}
	return &dto.ReservaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Cancel cancela una reserva confirmada y repone las plazas al cupo en la
// misma transacción. Cancelar dos veces es conflicto, no un no-op.
func (uc *ReservaUseCase) Cancel(ctx context.Context, id string) error {
	r, err := uc.reservaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	if r.Estado == entity.ReservaCancelada {
		return domain.ErrConflict
	}
	return uc.tx.Run(ctx, func(cupoRepo repository.CupoRepository, reservaRepo repository.ReservaRepository) error {
		if err := cupoRepo.ReponerPlazas(ctx, r.CupoID, r.Pasajeros); err != nil {
			return err
		}
		return reservaRepo.UpdateEstado(ctx, id, entity.ReservaCancelada)
	})
}

// Voucher genera el comprobante PDF de una reserva.
func (uc *ReservaUseCase) Voucher(ctx context.Context, id string) ([]byte, error) {
	r, err := uc.reservaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(ctx, r.ClienteID)
	if err != nil {
		return nil, err
	}
	cupo, err := uc.cupoRepo.GetByID(ctx, r.CupoID)
	if err != nil {
		return nil, err
	}
	if cliente == nil || cupo == nil {
		return nil, domain.ErrNotFound
	}
	return uc.voucher.Generate(r, cliente, cupo)
}

func mustClientes() policy.Module {
	m, _ := policy.ModuleByName(policy.ModClientes)
	return m
}

func toReservaResponse(r *entity.Reserva) *dto.ReservaResponse {
	if r == nil {
		return nil
	}
	return &dto.ReservaResponse{
		ID:                r.ID,
		PublishedByUserID: r.PublishedByUserID,
		ClienteID:         r.ClienteID,
		CupoID:            r.CupoID,
		Pasajeros:         r.Pasajeros,
		Total:             r.Total,
		Moneda:            r.Moneda,
		Estado:            r.Estado,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
