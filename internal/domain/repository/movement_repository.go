package repository

import (
	"time"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// MovementRepository define el puerto de acceso al historial de movimientos.
// El historial es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// List devuelve movimientos del más reciente al más antiguo, filtrando por
	// tipo si movType no está vacío. limit <= 0 devuelve todos.
	List(movType string, limit, offset int) ([]*entity.Movement, error)
	CountByType() (in int, out int, err error)
	CountByTypeSince(t time.Time) (in int, out int, err error)
}
