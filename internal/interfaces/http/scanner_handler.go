package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/scanner"
	"github.com/dcastano/almacen-api/internal/domain"
)

// ScannerHandler maneja la resolución de códigos escaneados.
type ScannerHandler struct {
	uc *scanner.ScannerUseCase
}

// NewScannerHandler construye el handler.
func NewScannerHandler(uc *scanner.ScannerUseCase) *ScannerHandler {
	return &ScannerHandler{uc: uc}
}

// Resolve godoc
// @Summary      Resolver código escaneado
// @Description  Devuelve el ítem del catálogo cuyo código coincide. Si no existe responde 422; el cliente puede ofrecer crear el ítem y reintentar el movimiento.
// @Tags         scanner
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResolveCodeRequest  true  "Código escaneado"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/scanner/resolve [post]
func (h *ScannerHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Resolve(in.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownCode):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_CODE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
