package inventory

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo a las colecciones del
// ledger. Garantiza que "actualizar stock del ítem + anexar movimiento" sea un
// único paso atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
