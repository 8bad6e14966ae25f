package entity

import "time"

// Cliente representa un cliente/pasajero de la cartera de un vendedor.
// No es una publicación (no tiene vidriera pública), pero sí tiene dueño:
// cada vendedor ve y administra únicamente su propia cartera.
type Cliente struct {
	ID                string // uuid
	PublishedByUserID int64
	Nombre            string
	Apellido          string
	Email             string
	Telefono          string
	Documento         string // DNI/pasaporte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
