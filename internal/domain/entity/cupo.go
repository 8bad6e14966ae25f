package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CupoAereo representa un bloqueo de plazas aéreas publicado en el mercado de cupos.
//
// Es el único módulo con lectura abierta: todos los vendedores ven los cupos de
// todos (para poder reservar plazas ajenas), pero solo el dueño puede mutarlos.
// El flag de visibilidad de este módulo es Disponible, no Activo.
type CupoAereo struct {
	Publicacion
	Aerolinea          string
	Origen             string
	Destino            string
	FechaSalida        time.Time
	FechaRegreso       time.Time
	PlazasTotales      int
	PlazasDisponibles  int
	Tarifa             decimal.Decimal
	Moneda             string
	Disponible         bool
}
