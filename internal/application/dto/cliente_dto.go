package dto

import "time"

// CreateClienteRequest entrada para crear un cliente de la cartera.
// Sin campo de dueño: lo asigna el servidor desde el principal.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Apellido  string `json:"apellido" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
	Documento string `json:"documento"`
}

// UpdateClienteRequest entrada para actualizar un cliente.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Email     *string `json:"email"`
	Telefono  *string `json:"telefono"`
	Documento *string `json:"documento"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID                string    `json:"id"`
	PublishedByUserID int64     `json:"published_by_user_id"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	Email             string    `json:"email"`
	Telefono          string    `json:"telefono"`
	Documento         string    `json:"documento"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClienteListResponse lista paginada de clientes.
type ClienteListResponse struct {
	Items []ClienteResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
