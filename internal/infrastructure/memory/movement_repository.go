package memory

import (
	"time"

	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre el Store en
// memoria. El historial es append-only: la colección interna guarda en orden
// cronológico y List invierte al presentar (el más reciente primero).
type MovementRepo struct {
	store *Store
	inTx  bool
}

// Create anexa un movimiento al historial.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	clone := *movement
	r.store.movements = append(r.store.movements, &clone)
	return nil
}

// List devuelve movimientos del más reciente al más antiguo, filtrando por
// tipo si movType no está vacío. limit <= 0 devuelve todos.
func (r *MovementRepo) List(movType string, limit, offset int) ([]*entity.Movement, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Movement, 0, len(r.store.movements))
	skipped := 0
	for i := len(r.store.movements) - 1; i >= 0; i-- {
		m := r.store.movements[i]
		if movType != "" && m.Type != movType {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		clone := *m
		out = append(out, &clone)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// CountByType cuenta entradas y salidas de todo el historial.
func (r *MovementRepo) CountByType() (in int, out int, err error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, m := range r.store.movements {
		if m.Type == entity.MovementTypeIn {
			in++
		} else {
			out++
		}
	}
	return in, out, nil
}

// CountByTypeSince cuenta entradas y salidas registradas desde t (inclusive).
func (r *MovementRepo) CountByTypeSince(t time.Time) (in int, out int, err error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, m := range r.store.movements {
		if m.CreatedAt.Before(t) {
			continue
		}
		if m.Type == entity.MovementTypeIn {
			in++
		} else {
			out++
		}
	}
	return in, out, nil
}
