package memory

import (
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre el Store en memoria.
// Con inTx=true los métodos asumen que Run ya tiene el lock; fuera de una
// sección crítica cada método toma el lock que le corresponde.
//
// Los métodos de lectura devuelven copias: el caller puede mutarlas libremente
// y nada cambia en el ledger hasta pasar por Update.
type ItemRepo struct {
	store *Store
	inTx  bool
}

// Create inserta un ítem nuevo. Un código ya en uso viola el invariante de
// unicidad y se rechaza con ErrDuplicate.
func (r *ItemRepo) Create(item *entity.Item) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for _, existing := range r.store.items {
		if existing.Code == item.Code {
			return domain.ErrDuplicate
		}
	}
	clone := *item
	r.store.items = append(r.store.items, &clone)
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, item := range r.store.items {
		if item.ID == id {
			clone := *item
			return &clone, nil
		}
	}
	return nil, nil
}

// GetByCode obtiene un ítem por código. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	for _, item := range r.store.items {
		if item.Code == code {
			clone := *item
			return &clone, nil
		}
	}
	return nil, nil
}

// Codes devuelve un snapshot del conjunto de códigos en uso.
func (r *ItemRepo) Codes() map[string]struct{} {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	codes := make(map[string]struct{}, len(r.store.items))
	for _, item := range r.store.items {
		codes[item.Code] = struct{}{}
	}
	return codes
}

// Update reemplaza el ítem con el mismo ID. El código almacenado no cambia
// nunca por esta vía: se conserva el del ítem existente.
func (r *ItemRepo) Update(item *entity.Item) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for i, existing := range r.store.items {
		if existing.ID == item.ID {
			clone := *item
			clone.Code = existing.Code
			r.store.items[i] = &clone
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el ítem con el ID dado. El historial de movimientos no se
// toca.
func (r *ItemRepo) Delete(id string) error {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	for i, existing := range r.store.items {
		if existing.ID == id {
			r.store.items = append(r.store.items[:i], r.store.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// List devuelve todos los ítems en orden de creación.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	if !r.inTx {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	out := make([]*entity.Item, 0, len(r.store.items))
	for _, item := range r.store.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}
