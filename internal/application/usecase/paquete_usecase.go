package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// PaqueteUseCase casos de uso CRUD para paquetes turísticos.
//
// ownerID viene siempre del principal autenticado (GetPrincipal en el
// handler); el body del request jamás aporta el dueño.
type PaqueteUseCase struct {
	repo repository.PaqueteRepository
}

// NewPaqueteUseCase construye el caso de uso.
func NewPaqueteUseCase(repo repository.PaqueteRepository) *PaqueteUseCase {
	return &PaqueteUseCase{repo: repo}
}

// Create crea un paquete con dueño asignado por el servidor.
func (uc *PaqueteUseCase) Create(ctx context.Context, ownerID int64, in dto.CreatePaqueteRequest) (*dto.PaqueteResponse, error) {
	now := time.Now()
	moneda := in.Moneda
	if moneda == "" {
		moneda = "ARS"
	}
	p := &entity.Paquete{
		Publicacion: entity.Publicacion{
			ID:                uuid.New().String(),
			PublishedByUserID: ownerID,
			IsPublic:          in.IsPublic,
			Destacado:         in.Destacado,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Destino:     in.Destino,
		Dias:        in.Dias,
		Noches:      in.Noches,
		Precio:      in.Precio,
		Moneda:      moneda,
		Activo:      true,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toPaqueteResponse(p), nil
}

// GetByID obtiene un paquete por ID. Nil si no existe.
func (uc *PaqueteUseCase) GetByID(ctx context.Context, id string) (*dto.PaqueteResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPaqueteResponse(p), nil
}

// Update actualiza campos presentes. El dueño nunca cambia por esta vía.
func (uc *PaqueteUseCase) Update(ctx context.Context, id string, in dto.UpdatePaqueteRequest) (*dto.PaqueteResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Destino != nil {
		p.Destino = *in.Destino
	}
	if in.Dias != nil {
		p.Dias = *in.Dias
	}
	if in.Noches != nil {
		p.Noches = *in.Noches
	}
	if in.Precio != nil {
		p.Precio = *in.Precio
	}
	if in.Moneda != nil {
		p.Moneda = *in.Moneda
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	if in.Destacado != nil {
		p.Destacado = *in.Destacado
	}
	if in.Activo != nil {
		p.Activo = *in.Activo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toPaqueteResponse(p), nil
}

// List lista paquetes según el alcance resuelto por la política.
func (uc *PaqueteUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.PaqueteListResponse, error) {
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaqueteResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaqueteResponse(p))
	}
	return &dto.PaqueteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete baja lógica (activo = false).
func (uc *PaqueteUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toPaqueteResponse(p *entity.Paquete) *dto.PaqueteResponse {
	if p == nil {
		return nil
	}
	return &dto.PaqueteResponse{
		ID:                p.ID,
		PublishedByUserID: p.PublishedByUserID,
		Nombre:            p.Nombre,
		Descripcion:       p.Descripcion,
		Destino:           p.Destino,
		Dias:              p.Dias,
		Noches:            p.Noches,
		Precio:            p.Precio,
		Moneda:            p.Moneda,
		IsPublic:          p.IsPublic,
		Destacado:         p.Destacado,
		Activo:            p.Activo,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
