package reservas_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCupoRepo struct {
	cupos map[string]*entity.CupoAereo
}

func (f *fakeCupoRepo) Create(_ context.Context, c *entity.CupoAereo) error {
	f.cupos[c.ID] = c
	return nil
}

func (f *fakeCupoRepo) GetByID(_ context.Context, id string) (*entity.CupoAereo, error) {
	return f.cupos[id], nil
}

func (f *fakeCupoRepo) OwnerOf(_ context.Context, id string) (*int64, bool, error) {
	c, ok := f.cupos[id]
	if !ok {
		return nil, false, nil
	}
	owner := c.PublishedByUserID
	return &owner, true, nil
}

func (f *fakeCupoRepo) Update(_ context.Context, c *entity.CupoAereo) error { return nil }
func (f *fakeCupoRepo) Delete(_ context.Context, id string) error           { return nil }

func (f *fakeCupoRepo) List(_ context.Context, _ repository.Scope, _, _ int) ([]*entity.CupoAereo, error) {
	return nil, nil
}

// DescontarPlazas replica la semántica del UPDATE condicional de Postgres:
// sin plazas suficientes no descuenta y devuelve ErrCupoAgotado.
func (f *fakeCupoRepo) DescontarPlazas(_ context.Context, id string, plazas int) error {
	c, ok := f.cupos[id]
	if !ok || c.PlazasDisponibles < plazas {
		return domain.ErrCupoAgotado
	}
	c.PlazasDisponibles -= plazas
	return nil
}

func (f *fakeCupoRepo) ReponerPlazas(_ context.Context, id string, plazas int) error {
	c, ok := f.cupos[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.PlazasDisponibles += plazas
	if c.PlazasDisponibles > c.PlazasTotales {
		c.PlazasDisponibles = c.PlazasTotales
	}
	return nil
}

type fakeReservaRepo struct {
	reservas map[string]*entity.Reserva
}

func (f *fakeReservaRepo) Create(_ context.Context, r *entity.Reserva) error {
	f.reservas[r.ID] = r
	return nil
}

func (f *fakeReservaRepo) GetByID(_ context.Context, id string) (*entity.Reserva, error) {
	return f.reservas[id], nil
}

func (f *fakeReservaRepo) OwnerOf(_ context.Context, id string) (*int64, bool, error) {
	r, ok := f.reservas[id]
	if !ok {
		return nil, false, nil
	}
	owner := r.PublishedByUserID
	return &owner, true, nil
}

func (f *fakeReservaRepo) UpdateEstado(_ context.Context, id, estado string) error {
	r, ok := f.reservas[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Estado = estado
	return nil
}

func (f *fakeReservaRepo) List(_ context.Context, _ repository.Scope, _, _ int) ([]*entity.Reserva, error) {
	return nil, nil
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepo) Create(_ context.Context, c *entity.Cliente) error { return nil }

func (f *fakeClienteRepo) GetByID(_ context.Context, id string) (*entity.Cliente, error) {
	return f.clientes[id], nil
}

// OwnerOf replica el comportamiento del repo real: un cliente migrado sin
// dueño registrado (published_by_user_id en cero) devuelve owner nil.
func (f *fakeClienteRepo) OwnerOf(_ context.Context, id string) (*int64, bool, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, false, nil
	}
	if c.PublishedByUserID == 0 {
		return nil, true, nil
	}
	owner := c.PublishedByUserID
	return &owner, true, nil
}

func (f *fakeClienteRepo) Update(_ context.Context, c *entity.Cliente) error { return nil }
func (f *fakeClienteRepo) Delete(_ context.Context, id string) error         { return nil }

func (f *fakeClienteRepo) List(_ context.Context, _ repository.Scope, _, _ int) ([]*entity.Cliente, error) {
	return nil, nil
}

// fakeTxRunner pasa los mismos repos en memoria; si fn falla, nada se revierte,
// así que los tests de fallo verifican estado ANTES de la mutación.
type fakeTxRunner struct {
	cupoRepo    *fakeCupoRepo
	reservaRepo *fakeReservaRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.CupoRepository, repository.ReservaRepository) error) error {
	return fn(f.cupoRepo, f.reservaRepo)
}

type fakeVoucherGen struct{ out []byte }

func (f *fakeVoucherGen) Generate(*entity.Reserva, *entity.Cliente, *entity.CupoAereo) ([]byte, error) {
	return f.out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de escenario
// ──────────────────────────────────────────────────────────────────────────────

func vendedor(id int64) *policy.Principal {
	return &policy.Principal{ID: id, Role: policy.RoleOperador, UserType: "B2B"}
}

type escenario struct {
	uc       *reservas.ReservaUseCase
	cupos    *fakeCupoRepo
	reservas *fakeReservaRepo
	clientes *fakeClienteRepo
	logs     *bytes.Buffer
}

// nuevoEscenario arma el caso de uso con un cupo del vendedor 7 (10 plazas a
// 150.000 ARS) y un cliente en la cartera del vendedor 42.
func nuevoEscenario() *escenario {
	cupos := &fakeCupoRepo{cupos: map[string]*entity.CupoAereo{
		"cupo-1": {
			Publicacion:       entity.Publicacion{ID: "cupo-1", PublishedByUserID: 7},
			Aerolinea:         "Aerolíneas Argentinas",
			Origen:            "EZE",
			Destino:           "BRC",
			PlazasTotales:     10,
			PlazasDisponibles: 10,
			Tarifa:            decimal.NewFromInt(150000),
			Moneda:            "ARS",
			Disponible:        true,
		},
	}}
	rsv := &fakeReservaRepo{reservas: map[string]*entity.Reserva{}}
	cli := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"cli-1": {ID: "cli-1", PublishedByUserID: 42, Nombre: "Ana", Apellido: "Pérez"},
	}}
	logs := &bytes.Buffer{}
	uc := reservas.NewReservaUseCase(
		&fakeTxRunner{cupoRepo: cupos, reservaRepo: rsv},
		rsv, cupos, cli,
		&fakeVoucherGen{out: []byte("%PDF-fake")},
		logger.NewWithWriter(logs, logger.Config{Env: "production", Level: "warn"}),
	)
	return &escenario{uc: uc, cupos: cupos, reservas: rsv, clientes: cli, logs: logs}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create
// ──────────────────────────────────────────────────────────────────────────────

// Una reserva sobre un cupo ajeno del mercado es el caso de uso central:
// cliente propio + cupo de otro vendedor.
func TestCreate_ReservaSobreCupoAjeno(t *testing.T) {
	e := nuevoEscenario()

	out, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1",
		CupoID:    "cupo-1",
		Pasajeros: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), out.PublishedByUserID,
		"la reserva pertenece al vendedor que la tomó, no al dueño del cupo")
	assert.Equal(t, entity.ReservaConfirmada, out.Estado)
	assert.True(t, out.Total.Equal(decimal.NewFromInt(450000)),
		"total = tarifa × pasajeros")
	assert.Equal(t, "ARS", out.Moneda)
	assert.Equal(t, 7, e.cupos.cupos["cupo-1"].PlazasDisponibles,
		"las plazas deben descontarse en la misma operación")
}

func TestCreate_PasajerosInvalidos(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La cartera de clientes NO es de lectura abierta: reservar con el cliente de
// otro vendedor se rechaza.
func TestCreate_ClienteDeOtroVendedorProhibido(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(99), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 10, e.cupos.cupos["cupo-1"].PlazasDisponibles,
		"no debe descontarse ninguna plaza")
}

func TestCreate_ClienteInexistente(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "no-existe", CupoID: "cupo-1", Pasajeros: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CupoInexistente(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "no-existe", Pasajeros: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CupoDadoDeBaja(t *testing.T) {
	e := nuevoEscenario()
	e.cupos.cupos["cupo-1"].Disponible = false

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 1,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Pedir más plazas de las disponibles devuelve ErrCupoAgotado y no persiste
// la reserva.
func TestCreate_PlazasInsuficientes(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 11,
	})
	assert.ErrorIs(t, err, domain.ErrCupoAgotado)
	assert.Empty(t, e.reservas.reservas, "la reserva no debe persistirse")
}

// Un cliente migrado sin dueño registrado no bloquea la reserva, pero la
// excepción debe quedar asentada en el log de auditoría.
func TestCreate_ClienteSinDuenoQuedaAuditado(t *testing.T) {
	e := nuevoEscenario()
	e.clientes.clientes["cli-legacy"] = &entity.Cliente{ID: "cli-legacy", Nombre: "Rosa", Apellido: "Mestre"}

	out, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-legacy", CupoID: "cupo-1", Pasajeros: 2,
	})
	require.NoError(t, err, "el caso sin dueño es permitido")
	assert.Equal(t, entity.ReservaConfirmada, out.Estado)

	logs := e.logs.String()
	assert.Contains(t, logs, `"component":"audit"`)
	assert.Contains(t, logs, "cli-legacy")
	assert.Contains(t, logs, "reserva sobre cliente sin dueño registrado")
}

// El camino normal con cliente propio no debe generar advertencias.
func TestCreate_ClienteConDuenoNoGeneraAdvertencia(t *testing.T) {
	e := nuevoEscenario()

	_, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, e.logs.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Cancel
// ──────────────────────────────────────────────────────────────────────────────

func reservaConfirmada(t *testing.T, e *escenario) string {
	t.Helper()
	out, err := e.uc.Create(context.Background(), vendedor(42), dto.CreateReservaRequest{
		ClienteID: "cli-1", CupoID: "cupo-1", Pasajeros: 4,
	})
	require.NoError(t, err)
	return out.ID
}

func TestCancel_ReponePlazas(t *testing.T) {
	e := nuevoEscenario()
	id := reservaConfirmada(t, e)
	require.Equal(t, 6, e.cupos.cupos["cupo-1"].PlazasDisponibles)

	require.NoError(t, e.uc.Cancel(context.Background(), id))

	assert.Equal(t, entity.ReservaCancelada, e.reservas.reservas[id].Estado)
	assert.Equal(t, 10, e.cupos.cupos["cupo-1"].PlazasDisponibles,
		"las plazas deben reponerse al cancelar")
}

// Cancelar dos veces es conflicto: evita reponer plazas de más.
func TestCancel_DobleCancelacionEsConflicto(t *testing.T) {
	e := nuevoEscenario()
	id := reservaConfirmada(t, e)

	require.NoError(t, e.uc.Cancel(context.Background(), id))
	err := e.uc.Cancel(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 10, e.cupos.cupos["cupo-1"].PlazasDisponibles,
		"la segunda cancelación no debe reponer plazas otra vez")
}

func TestCancel_ReservaInexistente(t *testing.T) {
	e := nuevoEscenario()
	assert.ErrorIs(t, e.uc.Cancel(context.Background(), "no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Voucher
// ──────────────────────────────────────────────────────────────────────────────

func TestVoucher_ReservaExistente(t *testing.T) {
	e := nuevoEscenario()
	id := reservaConfirmada(t, e)

	pdf, err := e.uc.Voucher(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestVoucher_ReservaInexistente(t *testing.T) {
	e := nuevoEscenario()
	_, err := e.uc.Voucher(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el cliente de la reserva fue borrado de la cartera, el voucher no puede
// emitirse.
func TestVoucher_ClienteBorrado(t *testing.T) {
	e := nuevoEscenario()
	id := reservaConfirmada(t, e)
	delete(e.clientes.clientes, "cli-1")

	_, err := e.uc.Voucher(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
