package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/tracking"
	"github.com/tu-usuario/turismo-market/internal/domain"
)

// TrackingHandler registro público de clicks. Va detrás de
// OptionalAuthMiddleware: visitantes anónimos registran sin user_id,
// usuarios logueados quedan atribuidos.
type TrackingHandler struct {
	uc *tracking.TrackingUseCase
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(uc *tracking.TrackingUseCase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

// RegistrarClick godoc
// @Summary      Registrar un click sobre una publicación
// @Tags         tracking
// @Accept       json
// @Success      202
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tracking/clicks [post]
func (h *TrackingHandler) RegistrarClick(c *fiber.Ctx) error {
	var in dto.RegistrarClickRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Modulo == "" || in.PublicacionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "modulo y publicacion_id son requeridos"))
	}

	var userID *int64
	if p := GetPrincipal(c); p.Authenticated() {
		userID = &p.ID
	}
	if err := h.uc.RegistrarClick(c.Context(), userID, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "módulo desconocido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.SendStatus(fiber.StatusAccepted)
}
