package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para la cartera de clientes del vendedor.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente en la cartera del vendedor autenticado.
func (uc *ClienteUseCase) Create(ctx context.Context, ownerID int64, in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	now := time.Now()
	c := &entity.Cliente{
		ID:                uuid.New().String(),
		PublishedByUserID: ownerID,
		Nombre:            in.Nombre,
		Apellido:          in.Apellido,
		Email:             in.Email,
		Telefono:          in.Telefono,
		Documento:         in.Documento,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID obtiene un cliente por ID. Nil si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id string) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toClienteResponse(c), nil
}

// Update actualiza campos presentes.
func (uc *ClienteUseCase) Update(ctx context.Context, id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
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
	if in.Apellido != nil {
		c.Apellido = *in.Apellido
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
	if in.Telefono != nil {
		c.Telefono = *in.Telefono
	}
	if in.Documento != nil {
		c.Documento = *in.Documento
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// List lista clientes según el alcance resuelto por la política.
func (uc *ClienteUseCase) List(ctx context.Context, scope repository.Scope, limit, offset int) (*dto.ClienteListResponse, error) {
	list, err := uc.repo.List(ctx, scope, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return &dto.ClienteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente de la cartera.
func (uc *ClienteUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:                c.ID,
		PublishedByUserID: c.PublishedByUserID,
		Nombre:            c.Nombre,
		Apellido:          c.Apellido,
		Email:             c.Email,
		Telefono:          c.Telefono,
		Documento:         c.Documento,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
