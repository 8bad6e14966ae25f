package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// CircuitoHandler maneja las peticiones HTTP para Circuito (protegido).
type CircuitoHandler struct {
	uc *usecase.CircuitoUseCase
}

// NewCircuitoHandler construye el handler.
func NewCircuitoHandler(uc *usecase.CircuitoUseCase) *CircuitoHandler {
	return &CircuitoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear circuito
// @Tags         circuitos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCircuitoRequest  true  "Datos del circuito"
// @Success      201   {object}  dto.CircuitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/circuitos [post]
func (h *CircuitoHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	var in dto.CreateCircuitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "nombre es requerido"))
	}
	out, err := h.uc.Create(c.Context(), p.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener circuito por ID
// @Tags         circuitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del circuito"
// @Success      200  {object}  dto.CircuitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/circuitos/{id} [get]
func (h *CircuitoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "circuito no encontrado"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar circuitos (alcance según rol)
// @Tags         circuitos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CircuitoListResponse
// @Router       /api/circuitos [get]
func (h *CircuitoHandler) List(c *fiber.Ctx) error {
	directive := GetListDirective(c)
	limit, offset := pageParams(c)
	if directive.Empty() {
		return c.JSON(dto.CircuitoListResponse{Items: []dto.CircuitoResponse{}, Page: dto.PageResponse{Limit: limit, Offset: offset}})
	}
	out, err := h.uc.List(c.Context(), repository.ScopeFromDirective(directive), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar circuito (solo dueño o admin)
// @Tags         circuitos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del circuito"
// @Param        body  body  dto.UpdateCircuitoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CircuitoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/circuitos/{id} [put]
func (h *CircuitoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCircuitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "circuito no encontrado"))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar circuito (baja lógica, solo dueño o admin)
// @Tags         circuitos
// @Security     Bearer
// @Param        id  path  string  true  "ID del circuito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/circuitos/{id} [delete]
func (h *CircuitoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
