package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReservaRequest entrada para reservar plazas sobre un cupo del mercado.
// El dueño de la reserva es el vendedor autenticado, nunca un campo del body.
type CreateReservaRequest struct {
	ClienteID string `json:"cliente_id" validate:"required"`
	CupoID    string `json:"cupo_id" validate:"required"`
	Pasajeros int    `json:"pasajeros" validate:"min=1"`
}

// ReservaResponse salida de una reserva.
type ReservaResponse struct {
	ID                string          `json:"id"`
	PublishedByUserID int64           `json:"published_by_user_id"`
	ClienteID         string          `json:"cliente_id"`
	CupoID            string          `json:"cupo_id"`
	Pasajeros         int             `json:"pasajeros"`
	Total             decimal.Decimal `json:"total"`
	Moneda            string          `json:"moneda"`
	Estado            string          `json:"estado"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ReservaListResponse lista paginada de reservas.
type ReservaListResponse struct {
	Items []ReservaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
