package entity

import "time"

// Click registra una visita a una publicación (tracking de actividad).
// UserID es nulo para visitantes anónimos (vidriera pública B2C).
type Click struct {
	ID            int64
	Modulo        string
	PublicacionID string
	UserID        *int64
	CreatedAt     time.Time
}
