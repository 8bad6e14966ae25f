package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/turismo-market/internal/application/dto"
	"github.com/tu-usuario/turismo-market/internal/application/reportes"
	"github.com/tu-usuario/turismo-market/internal/domain"
)

// ReporteHandler expone los reportes de administración. Las rutas van detrás
// de RequireAdmin; el use case vuelve a verificar el rol por las dudas de un
// cableado incorrecto del router.
type ReporteHandler struct {
	uc *reportes.ReporteUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.ReporteUseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// GetActividad godoc
// @Summary      Reporte de actividad del marketplace (solo admin)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (YYYY-MM-DD)"
// @Param        hasta  query  string  false  "Fecha final (YYYY-MM-DD)"
// @Success      200  {object}  dto.ReporteActividadDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reportes/actividad [get]
func (h *ReporteHandler) GetActividad(c *fiber.Ctx) error {
	desde, err := parseDateQuery(c, "desde")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "desde inválido, formato YYYY-MM-DD"))
	}
	hasta, err := parseDateQuery(c, "hasta")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "hasta inválido, formato YYYY-MM-DD"))
	}
	out, err := h.uc.GetActividad(c.Context(), GetPrincipal(c), desde, hasta)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "acceso denegado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// parseDateQuery lee un query param de fecha. Ausente devuelve el cero de
// time.Time (el use case aplica el rango por defecto).
func parseDateQuery(c *fiber.Ctx, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}
