package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaqueteRequest entrada para crear un paquete.
// No existe campo de dueño: published_by_user_id lo asigna siempre el
// servidor desde el principal autenticado, nunca desde el body.
type CreatePaqueteRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Descripcion string          `json:"descripcion"`
	Destino     string          `json:"destino" validate:"required"`
	Dias        int             `json:"dias" validate:"min=1"`
	Noches      int             `json:"noches" validate:"min=0"`
	Precio      decimal.Decimal `json:"precio"`
	Moneda      string          `json:"moneda"`
	IsPublic    bool            `json:"is_public"`
	Destacado   bool            `json:"destacado"`
}

// UpdatePaqueteRequest entrada para actualizar un paquete (campos opcionales).
type UpdatePaqueteRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Descripcion *string          `json:"descripcion"`
	Destino     *string          `json:"destino"`
	Dias        *int             `json:"dias"`
	Noches      *int             `json:"noches"`
	Precio      *decimal.Decimal `json:"precio"`
	Moneda      *string          `json:"moneda"`
	IsPublic    *bool            `json:"is_public"`
	Destacado   *bool            `json:"destacado"`
	Activo      *bool            `json:"activo"`
}

// PaqueteResponse salida de un paquete.
type PaqueteResponse struct {
	ID                string          `json:"id"`
	PublishedByUserID int64           `json:"published_by_user_id"`
	Nombre            string          `json:"nombre"`
	Descripcion       string          `json:"descripcion"`
	Destino           string          `json:"destino"`
	Dias              int             `json:"dias"`
	Noches            int             `json:"noches"`
	Precio            decimal.Decimal `json:"precio"`
	Moneda            string          `json:"moneda"`
	IsPublic          bool            `json:"is_public"`
	Destacado         bool            `json:"destacado"`
	Activo            bool            `json:"activo"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PaqueteListResponse lista paginada de paquetes.
type PaqueteListResponse struct {
	Items []PaqueteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
