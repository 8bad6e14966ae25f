package entity

import "github.com/shopspring/decimal"

// Paquete representa un paquete turístico (vuelo + hotel + servicios).
// El flag de visibilidad de este módulo es Activo (soft-delete).
type Paquete struct {
	Publicacion
	Nombre      string
	Descripcion string
	Destino     string
	Dias        int
	Noches      int
	Precio      decimal.Decimal
	Moneda      string // ARS, USD
	Activo      bool
}
