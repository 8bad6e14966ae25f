package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// ClicksPorModuloResult resultado crudo del conteo de clicks por módulo.
// Lo produce la DB; el use case lo convierte en DTO.
type ClicksPorModuloResult struct {
	Modulo string
	Clicks int64
}

// PublicacionesPorVendedorResult resultado crudo del conteo de publicaciones
// por vendedor y módulo.
type PublicacionesPorVendedorResult struct {
	UserID   int64
	Vendedor string
	Modulo   string
	Total    int64
}

// ActividadDiariaResult clicks agregados por día calendario.
type ActividadDiariaResult struct {
	Dia    time.Time
	Clicks int64
}

// ClickRepository persistencia durable de eventos de click.
type ClickRepository interface {
	Insert(ctx context.Context, c *entity.Click) error
}

// ReporteRepository define las consultas de lectura para los reportes de
// administración. Corren sin filtro de ownership: el caller debe verificar
// rol admin ANTES de invocarlas (lo hace el use case de reportes vía la
// tabla de políticas, nunca re-derivando admin a mano).
type ReporteRepository interface {
	ClicksPorModulo(ctx context.Context, desde, hasta time.Time) ([]ClicksPorModuloResult, error)
	PublicacionesPorVendedor(ctx context.Context) ([]PublicacionesPorVendedorResult, error)
	ActividadDiaria(ctx context.Context, desde, hasta time.Time) ([]ActividadDiariaResult, error)
}
