package dto

import "time"

// RegisterRequest entrada de registro de usuario.
type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=8"`
	Nombre           string `json:"nombre"`
	Role             string `json:"role"`      // admin solo asignable por otro admin
	UserType         string `json:"user_type"` // B2B | B2C
	PublicaProductos bool   `json:"publica_productos"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UsuarioResponse salida de un usuario (sin hash de password).
type UsuarioResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Nombre         string    `json:"nombre"`
	Role           string    `json:"role"`
	UserType       string    `json:"user_type"`
	CalculatedRole string    `json:"calculated_role"`
	CreatedAt      time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
