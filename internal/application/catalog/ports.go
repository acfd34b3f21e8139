package catalog

import (
	"context"

	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo a las colecciones del
// ledger. Garantiza que "leer códigos en uso + insertar ítem" sea un paso
// atómico frente a otras peticiones concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
