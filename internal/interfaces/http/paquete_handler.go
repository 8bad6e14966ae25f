package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// PaqueteHandler maneja las peticiones HTTP para Paquete (protegido).
//
// El handler no decide ownership: el alcance de los listados llega resuelto
// por ScopeList y las mutaciones pasan antes por RequireOwnership.
type PaqueteHandler struct {
	uc *usecase.PaqueteUseCase
}

// NewPaqueteHandler construye el handler.
func NewPaqueteHandler(uc *usecase.PaqueteUseCase) *PaqueteHandler {
	return &PaqueteHandler{uc: uc}
}

// Create godoc
// @Summary      Crear paquete
// @Tags         paquetes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaqueteRequest  true  "Datos del paquete"
// @Success      201   {object}  dto.PaqueteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/paquetes [post]
func (h *PaqueteHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	var in dto.CreatePaqueteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Nombre == "" || in.Destino == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "nombre y destino son requeridos"))
	}
	// El dueño sale del token; cualquier published_by_user_id del body se ignora.
	out, err := h.uc.Create(c.Context(), p.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener paquete por ID
// @Tags         paquetes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del paquete"
// @Success      200  {object}  dto.PaqueteResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paquetes/{id} [get]
func (h *PaqueteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "paquete no encontrado"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar paquetes (alcance según rol)
// @Tags         paquetes
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PaqueteListResponse
// @Router       /api/paquetes [get]
func (h *PaqueteHandler) List(c *fiber.Ctx) error {
	directive := GetListDirective(c)
	limit, offset := pageParams(c)
	if directive.Empty() {
		return c.JSON(dto.PaqueteListResponse{Items: []dto.PaqueteResponse{}, Page: dto.PageResponse{Limit: limit, Offset: offset}})
	}
	out, err := h.uc.List(c.Context(), repository.ScopeFromDirective(directive), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar paquete (solo dueño o admin)
// @Tags         paquetes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del paquete"
// @Param        body  body  dto.UpdatePaqueteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PaqueteResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/paquetes/{id} [put]
func (h *PaqueteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaqueteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "paquete no encontrado"))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar paquete (baja lógica, solo dueño o admin)
// @Tags         paquetes
// @Security     Bearer
// @Param        id  path  string  true  "ID del paquete"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/paquetes/{id} [delete]
func (h *PaqueteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// pageParams normaliza limit/offset de la query.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
