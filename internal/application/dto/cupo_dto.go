package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCupoRequest entrada para publicar un cupo aéreo en el mercado.
// Sin campo de dueño: lo asigna el servidor desde el principal.
type CreateCupoRequest struct {
	Aerolinea     string          `json:"aerolinea" validate:"required"`
	Origen        string          `json:"origen" validate:"required"`
	Destino       string          `json:"destino" validate:"required"`
	FechaSalida   time.Time       `json:"fecha_salida"`
	FechaRegreso  time.Time       `json:"fecha_regreso"`
	PlazasTotales int             `json:"plazas_totales" validate:"min=1"`
	Tarifa        decimal.Decimal `json:"tarifa"`
	Moneda        string          `json:"moneda"`
}

// UpdateCupoRequest entrada para actualizar un cupo (solo el dueño o admin).
type UpdateCupoRequest struct {
	Aerolinea    *string          `json:"aerolinea"`
	Origen       *string          `json:"origen"`
	Destino      *string          `json:"destino"`
	FechaSalida  *time.Time       `json:"fecha_salida"`
	FechaRegreso *time.Time       `json:"fecha_regreso"`
	Tarifa       *decimal.Decimal `json:"tarifa"`
	Moneda       *string          `json:"moneda"`
	Disponible   *bool            `json:"disponible"`
}

// CupoResponse salida de un cupo aéreo.
type CupoResponse struct {
	ID                string          `json:"id"`
	PublishedByUserID int64           `json:"published_by_user_id"`
	Aerolinea         string          `json:"aerolinea"`
	Origen            string          `json:"origen"`
	Destino           string          `json:"destino"`
	FechaSalida       time.Time       `json:"fecha_salida"`
	FechaRegreso      time.Time       `json:"fecha_regreso"`
	PlazasTotales     int             `json:"plazas_totales"`
	PlazasDisponibles int             `json:"plazas_disponibles"`
	Tarifa            decimal.Decimal `json:"tarifa"`
	Moneda            string          `json:"moneda"`
	Disponible        bool            `json:"disponible"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CupoListResponse lista paginada de cupos.
type CupoListResponse struct {
	Items []CupoResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
