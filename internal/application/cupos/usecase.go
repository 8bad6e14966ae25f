// Package cupos implementa el mercado de cupos aéreos: el único módulo con
// lectura abierta entre vendedores (todos ven todos los cupos publicados,
// solo el dueño o un admin los muta).
package cupos

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// CupoUseCase casos de uso del mercado de cupos.
type CupoUseCase struct {
	repo repository.CupoRepository
}

// NewCupoUseCase construye el caso de uso.
func NewCupoUseCase(repo repository.CupoRepository) *CupoUseCase {
	return &CupoUseCase{repo: repo}
}

// Create publica un cupo con dueño asignado por el servidor.
func (uc *CupoUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateCupoRequest) (*dto.CupoResponse, error) {
	if in.PlazasTotales < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	moneda := in.Moneda
	if moneda == "" {
		moneda = "USD"
	}
	c := &entity.CupoAereo{
		Publicacion: entity.Publicacion{
			ID:                uuid.New().String(),
			PublishedByUserID: ownerID,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Aerolinea:         in.Aerolinea,
		Origen:            in.Origen,
		Destino:           in.Destino,
		FechaSalida:       in.FechaSalida,
		FechaRegreso:      in.FechaRegreso,
		PlazasTotales:     in.PlazasTotales,
		PlazasDisponibles: in.PlazasTotales,
		Tarifa:            in.Tarifa,
		Moneda:            moneda,
		Disponible:        true,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCupoResponse(c), nil
}

// GetByID obtiene un cupo por ID. Nil si no existe.
func (uc *CupoUseCase) GetByID(ctx context.Context, id string) (*dto.CupoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCupoResponse(c), nil
}

// Update actualiza campos presentes. Las plazas no se tocan por esta vía:
// solo la transacción de reserva las mueve.
func (uc *CupoUseCase) Update(ctx context.Context, id string, in dto.UpdateCupoRequest) (*dto.CupoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Aerolinea != nil {
		c.Aerolinea = *in.Aerolinea
	}
	if in.Origen != nil {
		c.Origen = *in.Origen
	}
	if in.Destino != nil {
		c.Destino = *in.Destino
	}
	if in.FechaSalida != nil {
		c.FechaSalida = *in.FechaSalida
	}
	if in.FechaRegreso != nil {
		c.FechaRegreso = *in.FechaRegreso
	}
	if in.Tarifa != nil {
		c.Tarifa = *in.Tarifa
	}
	if in.Moneda != nil {
		c.Moneda = *in.Moneda
	}
	if in.Disponible != nil {
		c.Disponible = *in.Disponible
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCupoResponse(c), nil
}

// List lista cupos según el alcance. En el mercado el alcance normal es sin
// restricción (lectura abierta); "mis cupos" llega con Scope restringido.
func (uc *CupoUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.CupoListResponse, error) {
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CupoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCupoResponse(c))
	}
	return &dto.CupoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete baja lógica (disponible = false).
func (uc *CupoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCupoResponse(c *entity.CupoAereo) *dto.CupoResponse {
	if c == nil {
		return nil
	}
	return &dto.CupoResponse{
		ID:                c.ID,
		PublishedByUserID: c.PublishedByUserID,
		Aerolinea:         c.Aerolinea,
		Origen:            c.Origen,
		Destino:           c.Destino,
		FechaSalida:       c.FechaSalida,
		FechaRegreso:      c.FechaRegreso,
		PlazasTotales:     c.PlazasTotales,
		PlazasDisponibles: c.PlazasDisponibles,
		Tarifa:            c.Tarifa,
		Moneda:            c.Moneda,
		Disponible:        c.Disponible,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
