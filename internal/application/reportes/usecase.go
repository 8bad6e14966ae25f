// Package reportes contiene los reportes de administración (actividad,
// clicks, publicaciones por vendedor). Corren consultas sin filtro de
// ownership, por eso toda entrada verifica rol admin contra la tabla de
// políticas antes de tocar el repositorio.
package reportes

import (
	"context"
	"sort"
	"time"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/policy"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
	"github.com/tu-usuario/turismo-market/pkg/logger"
)

// ClickCounter lectura del contador caliente de clicks. Lo implementa
// redisclient.ClickStore; el lado de escritura vive en tracking.
type ClickCounter interface {
	TotalPorModulo(ctx context.Context, modulo string) (int64, error)
}

// ReporteUseCase reportes agregados solo-admin.
type ReporteUseCase struct {
	repo    repository.ReporteRepository
	counter ClickCounter
	log     *logger.Logger
}

// NewReporteUseCase construye el caso de uso.
func NewReporteUseCase(repo repository.ReporteRepository, counter ClickCounter, log *logger.Logger) *ReporteUseCase {
	return &ReporteUseCase{repo: repo, counter: counter, log: log}
}

// GetActividad arma el reporte de actividad del período para un admin.
// Es el caso degenerado del resolver: admin-only, sin excepciones; la
// verificación sale de la misma tabla de políticas que el resto del sistema.
//
// Tres consultas en paralelo, como el resto de los dashboards.
func (uc *ReporteUseCase) GetActividad(ctx context.Context, p *policy.Principal, desde, hasta time.Time) (*dto.ReporteActividadDTO, error) {
	if !p.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !policy.IsAdmin(p.EffectiveRole()) {
		return nil, domain.ErrForbidden
	}
	if hasta.IsZero() {
		hasta = time.Now()
	}
	if desde.IsZero() {
		desde = hasta.AddDate(0, -1, 0)
	}

	type clicksResult struct {
		rows []repository.ClicksPorModuloResult
		err  error
	}
	type vendedoresResult struct {
		rows []repository.PublicacionesPorVendedorResult
		err  error
	}
	type actividadResult struct {
		rows []repository.ActividadDiariaResult
		err  error
	}

	clicksCh := make(chan clicksResult, 1)
	vendCh := make(chan vendedoresResult, 1)
	actCh := make(chan actividadResult, 1)

	go func() {
		rows, err := uc.repo.ClicksPorModulo(ctx, desde, hasta)
		clicksCh <- clicksResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.PublicacionesPorVendedor(ctx)
		vendCh <- vendedoresResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.ActividadDiaria(ctx, desde, hasta)
		actCh <- actividadResult{rows, err}
	}()

	clicks := <-clicksCh
	vend := <-vendCh
	act := <-actCh
	if clicks.err != nil {
		return nil, clicks.err
	}
	if vend.err != nil {
		return nil, vend.err
	}
	if act.err != nil {
		return nil, act.err
	}

	out := &dto.ReporteActividadDTO{Desde: desde, Hasta: hasta}
	for _, r := range clicks.rows {
		out.ClicksPorModulo = append(out.ClicksPorModulo, dto.ClicksPorModuloDTO{Modulo: r.Modulo, Clicks: r.Clicks})
	}
	for _, r := range vend.rows {
		out.PorVendedor = append(out.PorVendedor, dto.PublicacionesPorVendedorDTO{
			UserID: r.UserID, Vendedor: r.Vendedor, Modulo: r.Modulo, Total: r.Total,
		})
	}
	for _, r := range act.rows {
		out.ActividadDiaria = append(out.ActividadDiaria, dto.ActividadDiariaDTO{Dia: r.Dia, Clicks: r.Clicks})
	}
	out.ClicksEnVivo = uc.clicksEnVivo(ctx)
	return out, nil
}

// clicksEnVivo consulta el contador caliente por módulo. El contador es
// best-effort igual que en tracking: si Redis no responde, el reporte sale
// sin la sección en vivo y queda un warn en el log.
func (uc *ReporteUseCase) clicksEnVivo(ctx context.Context) []dto.ClicksPorModuloDTO {
	mods := policy.Modules()
	sort.Slice(mods, func(i, j int) bool { return mods[i].Nombre < mods[j].Nombre })

	var out []dto.ClicksPorModuloDTO
	for _, m := range mods {
		total, err := uc.counter.TotalPorModulo(ctx, m.Nombre)
		if err != nil {
			uc.log.Warn().Err(err).Str("modulo", m.Nombre).Msg("contador de clicks no disponible")
			return nil
		}
		if total == 0 {
			continue
		}
		out = append(out, dto.ClicksPorModuloDTO{Modulo: m.Nombre, Clicks: total})
	}
	return out
}
