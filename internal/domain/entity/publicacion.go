package entity

import "time"

// Publicacion es la forma base de todo producto publicable del marketplace
// (paquete, tren, circuito, cupo aéreo, etc.).
//
// PublishedByUserID es la única fuente de verdad del ownership: no nulo,
// asignado por el servidor al crear y nunca tomado del request. IsPublic
// habilita la visibilidad para consumidores B2C sin autenticar; Destacado
// marca la publicación como elegible para la vidriera pública.
type Publicacion struct {
	ID                string // uuid
	PublishedByUserID int64
	IsPublic          bool
	Destacado         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
