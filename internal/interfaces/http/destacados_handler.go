package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/usecase"
)

// DestacadosHandler vidriera pública B2C: no requiere autenticación.
type DestacadosHandler struct {
	uc *usecase.DestacadosUseCase
}

// NewDestacadosHandler construye el handler.
func NewDestacadosHandler(uc *usecase.DestacadosUseCase) *DestacadosHandler {
	return &DestacadosHandler{uc: uc}
}

// List godoc
// @Summary      Vidriera pública de publicaciones destacadas
// @Tags         destacados
// @Produce      json
// @Success      200  {object}  dto.DestacadosResponse
// @Router       /api/destacados [get]
func (h *DestacadosHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}
