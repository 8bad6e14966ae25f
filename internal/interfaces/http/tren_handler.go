package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// TrenHandler maneja las peticiones HTTP para Tren (protegido).
type TrenHandler struct {
	uc *usecase.TrenUseCase
}

// NewTrenHandler construye el handler.
func NewTrenHandler(uc *usecase.TrenUseCase) *TrenHandler {
	return &TrenHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio de tren
// @Tags         trenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrenRequest  true  "Datos del tren"
// @Success      201   {object}  dto.TrenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trenes [post]
func (h *TrenHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	var in dto.CreateTrenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Nombre == "" || in.Origen == "" || in.Destino == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "nombre, origen y destino son requeridos"))
	}
	out, err := h.uc.Create(c.Context(), p.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tren por ID
// @Tags         trenes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tren"
// @Success      200  {object}  dto.TrenResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trenes/{id} [get]
func (h *TrenHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "tren no encontrado"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar trenes (alcance según rol)
// @Tags         trenes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrenListResponse
// @Router       /api/trenes [get]
func (h *TrenHandler) List(c *fiber.Ctx) error {
	directive := GetListDirective(c)
	limit, offset := pageParams(c)
	if directive.Empty() {
		return c.JSON(dto.TrenListResponse{Items: []dto.TrenResponse{}, Page: dto.PageResponse{Limit: limit, Offset: offset}})
	}
	out, err := h.uc.List(c.Context(), repository.ScopeFromDirective(directive), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tren (solo dueño o admin)
// @Tags         trenes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tren"
// @Param        body  body  dto.UpdateTrenRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.TrenResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/trenes/{id} [put]
func (h *TrenHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTrenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "tren no encontrado"))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tren (baja lógica, solo dueño o admin)
// @Tags         trenes
// @Security     Bearer
// @Param        id  path  string  true  "ID del tren"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trenes/{id} [delete]
func (h *TrenHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
