// Package pdf genera los documentos imprimibles del almacén con Maroto v2:
//
//   - el informe del historial de movimientos (tabla A4, una fila por
//     movimiento, del más reciente al más antiguo), y
//   - la etiqueta de un ítem, con su código en texto y en QR, para pegar en
//     la estantería y escanear con cámara o lector USB.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appexport "github.com/dcastano/almacen-api/internal/application/export"
	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 128, Blue: 57}
	colorRed     = &props.Color{Red: 170, Green: 33, Blue: 33}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure MarotoReportGenerator implements the export ports.
var _ appexport.MovementReportGenerator = (*MarotoReportGenerator)(nil)
var _ appexport.LabelGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa los generadores de informes y etiquetas
// usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMovementReport genera el PDF del historial y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMovementReport(_ context.Context, movements []*entity.Movement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de Movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(reportHeaderRow(len(movements)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(movementTableHeaderRow())
	for _, r := range movementTableRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de movimientos: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateItemLabel genera la etiqueta imprimible del ítem y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateItemLabel(_ context.Context, item *entity.Item) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiqueta "+item.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(
		row.New(12).Add(col.New(12).Add(
			text.New(item.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1,
			}),
			text.New(string(item.Category)+"  ·  "+item.Unit, props.Text{
				Size: 7, Align: align.Center, Top: 8, Color: colorGray,
			}),
		)),
		row.New(40).Add(col.New(12).Add(
			code.NewQr(item.Code, props.Rect{Percent: 90, Center: true}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New(item.Code, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 1,
				Color: colorPrimary,
			}),
		)),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar etiqueta %s: %w", item.Code, err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del informe ─────────────────────────────────────────────────────

// reportHeaderRow: título + fecha de generación + total de movimientos.
func reportHeaderRow(total int) core.Row {
	generated := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("HISTORIAL DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d movimientos registrados", total), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generated, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// movementTableHeaderRow: cabecera de la tabla del historial.
func movementTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Código", 2, align.Left),
		h("Ítem", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Responsable", 2, align.Left),
	)
}

// movementTableRows: una fila por movimiento, con la cantidad coloreada según
// entrada (+, verde) o salida (-, rojo).
func movementTableRows(movements []*entity.Movement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mov := range movements {
		qtyColor := colorGreen
		sign := "+"
		if mov.Type == entity.MovementTypeOut {
			qtyColor = colorRed
			sign = "-"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mov.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				mov.ItemCode,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				mov.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				appexport.TypeLabel(mov.Type),
				props.Text{Size: 7.5, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%s%d %s", sign, mov.Quantity, mov.Unit),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor},
			)),
			col.New(2).Add(text.New(
				mov.Responsible,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}
