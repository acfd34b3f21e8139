package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/almacen-api/internal/application/analytics"
	"github.com/dcastano/almacen-api/internal/application/dto"
)

// DashboardHandler maneja el resumen agregado del almacén.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del almacén
// @Description  Totales, ítems en stock bajo, movimientos de hoy, distribución por categoría y top de stock.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
