package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// TrenUseCase casos de uso CRUD para servicios de tren.
type TrenUseCase struct {
	repo repository.TrenRepository
}

// NewTrenUseCase construye el caso de uso.
func NewTrenUseCase(repo repository.TrenRepository) *TrenUseCase {
	return &TrenUseCase{repo: repo}
}

// Create crea un tren con dueño asignado por el servidor.
func (uc *TrenUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateTrenRequest) (*dto.TrenResponse, error) {
	now := time.Now()
	moneda := in.Moneda
	if moneda == "" {
		moneda = "ARS"
	}
	t := &entity.Tren{
		Publicacion: entity.Publicacion{
			ID:                uuid.New().String(),
			PublishedByUserID: ownerID,
			IsPublic:          in.IsPublic,
			Destacado:         in.Destacado,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Nombre:  in.Nombre,
		Origen:  in.Origen,
		Destino: in.Destino,
		Salida:  in.Salida,
		Precio:  in.Precio,
		Moneda:  moneda,
		Activo:  true,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return toTrenResponse(t), nil
}

// GetByID obtiene un tren por ID. Nil si no existe.
func (uc *TrenUseCase) GetByID(ctx context.Context, id string) (*dto.TrenResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	return toTrenResponse(t), nil
}

// Update actualiza campos presentes. El dueño nunca cambia por esta vía.
func (uc *TrenUseCase) Update(ctx context.Context, id string, in dto.UpdateTrenRequest) (*dto.TrenResponse, error) {
	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		t.Nombre = *in.Nombre
	}
	if in.Origen != nil {
		t.Origen = *in.Origen
	}
	if in.Destino != nil {
		t.Destino = *in.Destino
	}
	if in.Salida != nil {
		t.Salida = *in.Salida
	}
	if in.Precio != nil {
		t.Precio = *in.Precio
	}
	if in.Moneda != nil {
		t.Moneda = *in.Moneda
	}
	if in.IsPublic != nil {
		t.IsPublic = *in.IsPublic
	}
	if in.Destacado != nil {
		t.Destacado = *in.Destacado
	}
	if in.Activo != nil {
		t.Activo = *in.Activo
	}
	t.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return toTrenResponse(t), nil
}

// List lista trenes según el alcance resuelto por la política.
func (uc *TrenUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.TrenListResponse, error) {
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TrenResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTrenResponse(t))
	}
	return &dto.TrenListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete baja lógica (activo = false).
func (uc *TrenUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toTrenResponse(t *entity.Tren) *dto.TrenResponse {
	if t == nil {
		return nil
	}
	return &dto.TrenResponse{
		ID:                t.ID,
		PublishedByUserID: t.PublishedByUserID,
		Nombre:            t.Nombre,
		Origen:            t.Origen,
		Destino:           t.Destino,
		Salida:            t.Salida,
		Precio:            t.Precio,
		Moneda:            t.Moneda,
		IsPublic:          t.IsPublic,
		Destacado:         t.Destacado,
		Activo:            t.Activo,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}
