package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCircuitoRequest entrada para crear un circuito.
// Sin campo de dueño: lo asigna el servidor desde el principal.
type CreateCircuitoRequest struct {
	Nombre       string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion  string          `json:"descripcion"`
	Paises       string          `json:"paises"`
	DuracionDias int             `json:"duracion_dias" validate:"min=1"`
	Precio       decimal.Decimal `json:"precio"`
	Moneda       string          `json:"moneda"`
	IsPublic     bool            `json:"is_public"`
	Destacado    bool            `json:"destacado"`
}

// UpdateCircuitoRequest entrada para actualizar un circuito.
type UpdateCircuitoRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	Paises       *string          `json:"paises"`
	DuracionDias *int             `json:"duracion_dias"`
	Precio       *decimal.Decimal `json:"precio"`
	Moneda       *string          `json:"moneda"`
	IsPublic     *bool            `json:"is_public"`
	Destacado    *bool            `json:"destacado"`
	Activo       *bool            `json:"activo"`
}

// CircuitoResponse salida de un circuito.
type CircuitoResponse struct {
	ID                string          `json:"id"`
	PublishedByUserID int64           `json:"published_by_user_id"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	Paises            string          `json:"paises"`
	DuracionDias      int             `json:"duracion_dias"`
	Precio            decimal.Decimal `json:"precio"`
	Moneda            string          `json:"moneda"`
	IsPublic          bool            `json:"is_public"`
	Destacado         bool            `json:"destacado"`
	Activo            bool            `json:"activo"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CircuitoListResponse lista paginada de circuitos.
type CircuitoListResponse struct {
	Items []CircuitoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
