package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/domain"
	"github.com/tu-usuario/turismo-market/internal/domain/repository"
)

// ReservaHandler maneja las peticiones HTTP para Reserva (protegido).
type ReservaHandler struct {
	uc *reservas.ReservaUseCase
}

// NewReservaHandler construye el handler.
func NewReservaHandler(uc *reservas.ReservaUseCase) *ReservaHandler {
	return &ReservaHandler{uc: uc}
}

// Create godoc
// @Summary      Reservar plazas sobre un cupo del mercado
// @Tags         reservas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservaRequest  true  "Datos de la reserva"
// @Success      201   {object}  dto.ReservaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservas [post]
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if !p.Authenticated() {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "autenticación requerida"))
	}
	var in dto.CreateReservaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.ClienteID == "" || in.CupoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "cliente_id y cupo_id son requeridos"))
	}
	out, err := h.uc.Create(c.Context(), p, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "pasajeros debe ser al menos 1"))
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "recurso no encontrado"))
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		case errors.Is(err, domain.ErrCupoAgotado):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("CUPO_AGOTADO", "el cupo no tiene plazas suficientes"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("CONFLICT", "el cupo no está disponible"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener reserva por ID (solo dueño o admin)
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservaResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id} [get]
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "reserva no encontrada"))
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar reservas (alcance según rol)
// @Tags         reservas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReservaListResponse
// @Router       /api/reservas [get]
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	directive := GetListDirective(c)
	limit, offset := pageParams(c)
	if directive.Empty() {
		return c.JSON(dto.ReservaListResponse{Items: []dto.ReservaResponse{}, Page: dto.PageResponse{Limit: limit, Offset: offset}})
	}
	out, err := h.uc.List(c.Context(), repository.ScopeFromDirective(directive), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar reserva y reponer plazas (solo dueño o admin)
// @Tags         reservas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la reserva"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/cancelar [post]
func (h *ReservaHandler) Cancel(c *fiber.Ctx) error {
	err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "reserva no encontrada"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("CONFLICT", "la reserva ya está cancelada"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Voucher godoc
// @Summary      Descargar voucher PDF de la reserva (solo dueño o admin)
// @Tags         reservas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la reserva"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservas/{id}/voucher [get]
func (h *ReservaHandler) Voucher(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Voucher(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "reserva no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="voucher.pdf"`)
	return c.Send(pdfBytes)
}
