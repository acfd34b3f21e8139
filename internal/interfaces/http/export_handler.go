package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/export"
	"github.com/dcastano/almacen-api/internal/domain"
)

// ExportHandler sirve las exportaciones del historial y las etiquetas de ítems.
type ExportHandler struct {
	uc *export.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *export.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// MovementsCSV godoc
// @Summary      Exportar historial como CSV
// @Tags         export
// @Produce      text/csv
// @Success      200  {string}  string  "CSV"
// @Router       /api/export/movements.csv [get]
func (h *ExportHandler) MovementsCSV(c *fiber.Ctx) error {
	data, err := h.uc.MovementsCSV(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("movimientos_%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// MovementsPDF godoc
// @Summary      Exportar historial como PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF"
// @Router       /api/export/movements.pdf [get]
func (h *ExportHandler) MovementsPDF(c *fiber.Ctx) error {
	data, err := h.uc.MovementsPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("movimientos_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ItemLabel godoc
// @Summary      Etiqueta imprimible de un ítem
// @Description  PDF con el nombre, el código y su QR, para pegar en la estantería.
// @Tags         export
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {string}  string  "PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/label.pdf [get]
func (h *ExportHandler) ItemLabel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	data, err := h.uc.ItemLabelPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiqueta.pdf"`)
	return c.Send(data)
}
