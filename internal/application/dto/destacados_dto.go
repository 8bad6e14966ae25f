package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DestacadoDTO item genérico de la vidriera pública: la forma común de
// cualquier publicación destacada, sea cual sea su módulo de origen.
type DestacadoDTO struct {
	Modulo    string          `json:"modulo"`
	ID        string          `json:"id"`
	Titulo    string          `json:"titulo"`
	Destino   string          `json:"destino,omitempty"`
	Precio    decimal.Decimal `json:"precio"`
	Moneda    string          `json:"moneda"`
	CreatedAt time.Time       `json:"created_at"`
}

// DestacadosResponse vidriera pública completa.
type DestacadosResponse struct {
	Items []DestacadoDTO `json:"items"`
}
