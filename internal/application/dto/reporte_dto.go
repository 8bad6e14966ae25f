package dto

import "time"

// ClicksPorModuloDTO clicks acumulados de un módulo en el período.
type ClicksPorModuloDTO struct {
	Modulo string `json:"modulo"`
	Clicks int64  `json:"clicks"`
}

// PublicacionesPorVendedorDTO publicaciones de un vendedor por módulo.
type PublicacionesPorVendedorDTO struct {
	UserID   int64  `json:"user_id"`
	Vendedor string `json:"vendedor"`
	Modulo   string `json:"modulo"`
	Total    int64  `json:"total"`
}

// ActividadDiariaDTO clicks por día calendario.
type ActividadDiariaDTO struct {
	Dia    time.Time `json:"dia"`
	Clicks int64     `json:"clicks"`
}

// ReporteActividadDTO reporte completo para el dashboard de administración.
// ClicksEnVivo sale del contador caliente de Redis (acumulado total, sin
// rango); el resto de las series sale de la tabla durable.
type ReporteActividadDTO struct {
	Desde           time.Time                     `json:"desde"`
	Hasta           time.Time                     `json:"hasta"`
	ClicksPorModulo []ClicksPorModuloDTO          `json:"clicks_por_modulo"`
	ClicksEnVivo    []ClicksPorModuloDTO          `json:"clicks_en_vivo,omitempty"`
	PorVendedor     []PublicacionesPorVendedorDTO `json:"publicaciones_por_vendedor"`
	ActividadDiaria []ActividadDiariaDTO          `json:"actividad_diaria"`
}

// RegistrarClickRequest entrada del endpoint público de tracking.
type RegistrarClickRequest struct {
	Modulo        string `json:"modulo" validate:"required"`
	PublicacionID string `json:"publicacion_id" validate:"required"`
}
