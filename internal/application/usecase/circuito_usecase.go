package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// CircuitoUseCase casos de uso CRUD para circuitos turísticos.
type CircuitoUseCase struct {
	repo repository.CircuitoRepository
}

// NewCircuitoUseCase construye el caso de uso.
func NewCircuitoUseCase(repo repository.CircuitoRepository) *CircuitoUseCase {
	return &CircuitoUseCase{repo: repo}
}

// Create crea un circuito con dueño asignado por el servidor.
func (uc *CircuitoUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateCircuitoRequest) (*dto.CircuitoResponse, error) {
	now := time.Now()
	moneda := in.Moneda
	if moneda == "" {
		moneda = "USD"
	}
	c := &entity.Circuito{
		Publicacion: entity.Publicacion{
			ID:                uuid.New().String(),
			PublishedByUserID: ownerID,
			IsPublic:          in.IsPublic,
			Destacado:         in.Destacado,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Nombre:       in.Nombre,
		Descripcion:  in.Descripcion,
		Paises:       in.Paises,
		DuracionDias: in.DuracionDias,
		Precio:       in.Precio,
		Moneda:       moneda,
		Activo:       true,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCircuitoResponse(c), nil
}

// GetByID obtiene un circuito por ID. Nil si no existe.
func (uc *CircuitoUseCase) GetByID(ctx context.Context, id string) (*dto.CircuitoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCircuitoResponse(c), nil
}

// Update actualiza campos presentes. El dueño nunca cambia por esta vía.
func (uc *CircuitoUseCase) Update(ctx context.Context, id string, in dto.UpdateCircuitoRequest) (*dto.CircuitoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		c.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		c.Descripcion = *in.Descripcion
	}
	if in.Paises != nil {
		c.Paises = *in.Paises
	}
	if in.DuracionDias != nil {
		c.DuracionDias = *in.DuracionDias
	}
	if in.Precio != nil {
		c.Precio = *in.Precio
	}
	if in.Moneda != nil {
		c.Moneda = *in.Moneda
	}
	if in.IsPublic != nil {
		c.IsPublic = *in.IsPublic
	}
	if in.Destacado != nil {
		c.Destacado = *in.Destacado
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCircuitoResponse(c), nil
}

// List lista circuitos según el alcance resuelto por la política.
func (uc *CircuitoUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.CircuitoListResponse, error) {
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CircuitoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCircuitoResponse(c))
	}
	return &dto.CircuitoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete baja lógica (activo = false).
func (uc *CircuitoUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCircuitoResponse(c *entity.Circuito) *dto.CircuitoResponse {
	if c == nil {
		return nil
	}
	return &dto.CircuitoResponse{
		ID:                c.ID,
		PublishedByUserID: c.PublishedByUserID,
		Nombre:            c.Nombre,
		Descripcion:       c.Descripcion,
		Paises:            c.Paises,
		DuracionDias:      c.DuracionDias,
		Precio:            c.Precio,
		Moneda:            c.Moneda,
		IsPublic:          c.IsPublic,
		Destacado:         c.Destacado,
		Activo:            c.Activo,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
