package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/cupos"
	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// CupoHandler maneja las peticiones HTTP del mercado de cupos aéreos.
//
// Este módulo tiene lectura abierta: GET lista y detalle llegan a cualquier
// vendedor autenticado, pero PUT/DELETE pasan por RequireOwnership como en
// el resto de los módulos.
type CupoHandler struct {
	uc *cupos.CupoUseCase
}

// NewCupoHandler construye el handler.
func NewCupoHandler(uc *cupos.CupoUseCase) *CupoHandler {
	return &CupoHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar cupo aéreo en el mercado
// @Tags         cupos-mercado
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCupoRequest  true  "Datos del cupo"
// @Success      201   {object}  dto.CupoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cupos-mercado [post]
func (h *CupoHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	var in dto.CreateCupoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Aerolinea == "" || in.Origen == "" || in.Destino == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "aerolinea, origen y destino son requeridos"))
	}
	if in.PlazasTotales < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "plazas_totales debe ser al menos 1"))
	}
	out, err := h.uc.Create(c.Context(), p.ID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener cupo por ID (lectura abierta a vendedores)
// @Tags         cupos-mercado
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cupo"
// @Success      200  {object}  dto.CupoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cupos-mercado/{id} [get]
func (h *CupoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "cupo no encontrado"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el mercado de cupos (todos los vendedores ven todo)
// @Tags         cupos-mercado
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CupoListResponse
// @Router       /api/cupos-mercado [get]
func (h *CupoHandler) List(c *fiber.Ctx) error {
	directive := GetListDirective(c)
	limit, offset := pageParams(c)
	if directive.Empty() {
		return c.JSON(dto.CupoListResponse{Items: []dto.CupoResponse{}, Page: dto.PageResponse{Limit: limit, Offset: offset}})
	}
	out, err := h.uc.List(c.Context(), repository.ScopeFromDirective(directive), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// ListMios godoc
// @Summary      Listar solo los cupos publicados por el caller
// @Tags         cupos-mercado
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CupoListResponse
// @Router       /api/cupos-mercado/mios [get]
func (h *CupoHandler) ListMios(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), repository.Scope{OwnerID: &p.ID}, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cupo (solo dueño o admin)
// @Tags         cupos-mercado
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cupo"
// @Param        body  body  dto.UpdateCupoRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.CupoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cupos-mercado/{id} [put]
func (h *CupoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCupoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "cupo no encontrado"))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Retirar cupo del mercado (baja lógica, solo dueño o admin)
// @Tags         cupos-mercado
// @Security     Bearer
// @Param        id  path  string  true  "ID del cupo"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cupos-mercado/{id} [delete]
func (h *CupoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.SendStatus(fiber.StatusNoContent)
}
