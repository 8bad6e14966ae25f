package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrenRequest entrada para crear un servicio de tren.
// Sin campo de dueño: lo asigna el servidor desde el principal.
type CreateTrenRequest struct {
	Nombre    string          `json:"nombre" validate:"required,min=1,max=200"`
	Origen    string          `json:"origen" validate:"required"`
	Destino   string          `json:"destino" validate:"required"`
	Salida    time.Time       `json:"salida"`
	Precio    decimal.Decimal `json:"precio"`
	Moneda    string          `json:"moneda"`
	IsPublic  bool            `json:"is_public"`
	Destacado bool            `json:"destacado"`
}

// UpdateTrenRequest entrada para actualizar un tren.
type UpdateTrenRequest struct {
	Nombre    *string          `json:"nombre"`
	Origen    *string          `json:"origen"`
	Destino   *string          `json:"destino"`
	Salida    *time.Time       `json:"salida"`
	Precio    *decimal.Decimal `json:"precio"`
	Moneda    *string          `json:"moneda"`
	IsPublic  *bool            `json:"is_public"`
	Destacado *bool            `json:"destacado"`
	Activo    *bool            `json:"activo"`
}

// TrenResponse salida de un tren.
type TrenResponse struct {
	ID                string          `json:"id"`
	PublishedByUserID int64           `json:"published_by_user_id"`
	Nombre            string          `json:"nombre"`
	Origen            string          `json:"origen"`
	Destino           string          `json:"destino"`
	Salida            time.Time       `json:"salida"`
	Precio            decimal.Decimal `json:"precio"`
	Moneda            string          `json:"moneda"`
	IsPublic          bool            `json:"is_public"`
	Destacado         bool            `json:"destacado"`
	Activo            bool            `json:"activo"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TrenListResponse lista paginada de trenes.
type TrenListResponse struct {
	Items []TrenResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
