package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una reserva.
const (
	ReservaPendiente  = "pendiente"
	ReservaConfirmada = "confirmada"
	ReservaCancelada  = "cancelada"
)

// Reserva representa una reserva de plazas sobre un cupo aéreo del mercado.
// El dueño de la reserva es el vendedor que la tomó (no el dueño del cupo);
// al crearla se descuentan las plazas del cupo en la misma transacción.
type Reserva struct {
	ID                string // uuid
	PublishedByUserID int64
	ClienteID         string
	CupoID            string
	Pasajeros         int
	Total             decimal.Decimal
	Moneda            string
	Estado            string // pendiente, confirmada, cancelada
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
