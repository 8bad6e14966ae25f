package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tren representa un servicio de tren turístico publicado por un vendedor.
type Tren struct {
	Publicacion
	Nombre  string
	Origen  string
	Destino string
	Salida  time.Time
	Precio  decimal.Decimal
	Moneda  string
	Activo  bool
}
