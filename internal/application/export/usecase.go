// Package export produce representaciones planas del historial de movimientos
// (CSV para hoja de cálculo, PDF para impresión) y etiquetas de ítems. El
// ledger no escribe ficheros: aquí solo se generan bytes que el handler HTTP
// sirve con el content-type adecuado.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// Etiquetas legibles de los tipos de movimiento en los informes.
const (
	labelIn  = "Entrada"
	labelOut = "Salida"
)

// ExportUseCase exportación del historial de movimientos y etiquetas.
type ExportUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
	reports      MovementReportGenerator
	labels       LabelGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
	reports MovementReportGenerator,
	labels LabelGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		itemRepo:     itemRepo,
		movementRepo: movementRepo,
		reports:      reports,
		labels:       labels,
	}
}

// MovementsCSV serializa el historial completo (del más reciente al más
// antiguo) como CSV con una fila plana por movimiento:
// código, ítem, tipo, cantidad, unidad, responsable, fecha, hora.
func (uc *ExportUseCase) MovementsCSV(_ context.Context) ([]byte, error) {
	movements, err := uc.movementRepo.List("", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("export csv: listar movimientos: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"codigo", "item", "tipo", "cantidad", "unidad", "responsable", "fecha", "hora"}); err != nil {
		return nil, fmt.Errorf("export csv: cabecera: %w", err)
	}
	for _, m := range movements {
		record := []string{
			m.ItemCode,
			m.ItemName,
			TypeLabel(m.Type),
			strconv.Itoa(m.Quantity),
			m.Unit,
			m.Responsible,
			m.CreatedAt.Format("02/01/2006"),
			m.CreatedAt.Format("15:04"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export csv: fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// MovementsPDF genera el informe PDF del historial completo.
func (uc *ExportUseCase) MovementsPDF(ctx context.Context) ([]byte, error) {
	movements, err := uc.movementRepo.List("", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("export pdf: listar movimientos: %w", err)
	}
	return uc.reports.GenerateMovementReport(ctx, movements)
}

// ItemLabelPDF genera la etiqueta imprimible (código + QR) del ítem indicado.
func (uc *ExportUseCase) ItemLabelPDF(ctx context.Context, itemID string) ([]byte, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return uc.labels.GenerateItemLabel(ctx, item)
}

// TypeLabel traduce el tipo de movimiento a su etiqueta de informe.
func TypeLabel(movType string) string {
	if movType == entity.MovementTypeIn {
		return labelIn
	}
	return labelOut
}
