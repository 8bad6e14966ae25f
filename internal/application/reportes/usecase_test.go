package reportes_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/turismo-market/internal/application/reportes"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeReporteRepo struct {
	clicks     []repository.ClicksPorModuloResult
	vendedores []repository.PublicacionesPorVendedorResult
	actividad  []repository.ActividadDiariaResult
	err        error
}

func (f *fakeReporteRepo) ClicksPorModulo(ctx context.Context, desde, hasta time.Time) ([]repository.ClicksPorModuloResult, error) {
	return f.clicks, f.err
}

func (f *fakeReporteRepo) PublicacionesPorVendedor(ctx context.Context) ([]repository.PublicacionesPorVendedorResult, error) {
	return f.vendedores, f.err
}

func (f *fakeReporteRepo) ActividadDiaria(ctx context.Context, desde, hasta time.Time) ([]repository.ActividadDiariaResult, error) {
	return f.actividad, f.err
}

// fakeClickCounter contador en memoria; con fail=true simula Redis caído.
type fakeClickCounter struct {
	totales map[string]int64
	fail    bool
}

func (f *fakeClickCounter) TotalPorModulo(ctx context.Context, modulo string) (int64, error) {
	if f.fail {
		return 0, errors.New("redis: connection refused")
	}
	return f.totales[modulo], nil
}

func testLog() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func admin(id int64) *policy.Principal {
	return &policy.Principal{ID: id, Role: policy.RoleAdmin}
}

// ─────────────────────────────────────────────
// GetActividad
// ─────────────────────────────────────────────

func TestGetActividad_AdminRecibeReporteCompleto(t *testing.T) {
	repo := &fakeReporteRepo{
		clicks: []repository.ClicksPorModuloResult{{Modulo: policy.ModPaquetes, Clicks: 12}},
		vendedores: []repository.PublicacionesPorVendedorResult{
			{UserID: 7, Vendedor: "Andes Viajes", Modulo: policy.ModPaquetes, Total: 3},
		},
		actividad: []repository.ActividadDiariaResult{{Dia: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Clicks: 5}},
	}
	counter := &fakeClickCounter{totales: map[string]int64{
		policy.ModPaquetes: 40,
		policy.ModTrenes:   9,
	}}
	uc := reportes.NewReporteUseCase(repo, counter, testLog())

	out, err := uc.GetActividad(context.Background(), admin(1), time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Len(t, out.ClicksPorModulo, 1)
	assert.Equal(t, int64(12), out.ClicksPorModulo[0].Clicks)
	require.Len(t, out.PorVendedor, 1)
	assert.Equal(t, "Andes Viajes", out.PorVendedor[0].Vendedor)
	require.Len(t, out.ActividadDiaria, 1)

	// La sección en vivo trae solo los módulos con contador > 0, ordenados
	// por nombre de módulo.
	require.Len(t, out.ClicksEnVivo, 2)
	assert.Equal(t, policy.ModPaquetes, out.ClicksEnVivo[0].Modulo)
	assert.Equal(t, int64(40), out.ClicksEnVivo[0].Clicks)
	assert.Equal(t, policy.ModTrenes, out.ClicksEnVivo[1].Modulo)
	assert.Equal(t, int64(9), out.ClicksEnVivo[1].Clicks)
}

func TestGetActividad_RedisCaidoNoRompeElReporte(t *testing.T) {
	repo := &fakeReporteRepo{
		clicks: []repository.ClicksPorModuloResult{{Modulo: policy.ModCircuitos, Clicks: 2}},
	}
	uc := reportes.NewReporteUseCase(repo, &fakeClickCounter{fail: true}, testLog())

	out, err := uc.GetActividad(context.Background(), admin(1), time.Time{}, time.Time{})
	require.NoError(t, err, "el contador caliente es best-effort")
	assert.Empty(t, out.ClicksEnVivo)
	require.Len(t, out.ClicksPorModulo, 1, "la serie durable sigue presente")
}

func TestGetActividad_OperadorRechazado(t *testing.T) {
	uc := reportes.NewReporteUseCase(&fakeReporteRepo{}, &fakeClickCounter{}, testLog())

	_, err := uc.GetActividad(context.Background(), &policy.Principal{ID: 9, Role: policy.RoleOperador}, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetActividad_SinPrincipalRechazado(t *testing.T) {
	uc := reportes.NewReporteUseCase(&fakeReporteRepo{}, &fakeClickCounter{}, testLog())

	_, err := uc.GetActividad(context.Background(), nil, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGetActividad_ErrorDeRepositorioSePropaga(t *testing.T) {
	repoErr := errors.New("timeout de consulta")
	uc := reportes.NewReporteUseCase(&fakeReporteRepo{err: repoErr}, &fakeClickCounter{}, testLog())

	_, err := uc.GetActividad(context.Background(), admin(1), time.Time{}, time.Time{})
	assert.ErrorIs(t, err, repoErr)
}

func TestGetActividad_RangoPorDefectoUltimoMes(t *testing.T) {
	uc := reportes.NewReporteUseCase(&fakeReporteRepo{}, &fakeClickCounter{}, testLog())

	out, err := uc.GetActividad(context.Background(), admin(1), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), out.Hasta, 5*time.Second)
	assert.WithinDuration(t, out.Hasta.AddDate(0, -1, 0), out.Desde, 5*time.Second)
}
