package entity

import "time"

// Tipos de usuario.
const (
	UserTypeB2B = "B2B"
	UserTypeB2C = "B2C"
)

// Usuario representa un usuario del sistema (vendedor B2B o consumidor B2C).
//
// PublicaProductos marca a los usuarios B2B que cargan inventario propio; el rol
// efectivo (calculatedRole) se deriva de este atributo en policy.CalculatedRole.
type Usuario struct {
	ID               int64
	Email            string
	PasswordHash     string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre           string
	Role             string // admin, sysadmin, agencia, operador
	UserType         string // B2B, B2C
	PublicaProductos bool   // solo relevante para B2B
	Status           string // active, inactive, suspended
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
