package entity

import "github.com/shopspring/decimal"

// Circuito representa un circuito turístico multi-destino.
type Circuito struct {
	Publicacion
	Nombre       string
	Descripcion  string
	Paises       string // lista separada por comas, ej. "España, Francia, Italia"
	DuracionDias int
	Precio       decimal.Decimal
	Moneda       string
	Activo       bool
}
