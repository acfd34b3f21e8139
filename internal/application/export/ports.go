package export

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// MovementReportGenerator genera el informe PDF del historial de movimientos.
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, movements []*entity.Movement) ([]byte, error)
}

// LabelGenerator genera la etiqueta imprimible de un ítem (código + QR).
type LabelGenerator interface {
	GenerateItemLabel(ctx context.Context, item *entity.Item) ([]byte, error)
}
