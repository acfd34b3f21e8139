// Package memory implementa el ledger en memoria: las colecciones de ítems y
// movimientos viven en un Store explícito que main construye y pasa a los
// casos de uso; no hay estado global de paquete. Todo el estado es efímero y
// se pierde al terminar el proceso.
package memory

import (
	"context"
	"sync"

	appcatalog "github.com/dcastano/almacen-api/internal/application/catalog"
	appinventory "github.com/dcastano/almacen-api/internal/application/inventory"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// Ensure Store implements catalog.TxRunner and inventory.TxRunner.
var _ appcatalog.TxRunner = (*Store)(nil)
var _ appinventory.TxRunner = (*Store)(nil)

// Store es el dueño de las colecciones del ledger. El servidor HTTP atiende
// peticiones concurrentes, así que las operaciones de varios pasos (asignar
// código + insertar; actualizar stock + anexar movimiento) se ejecutan bajo
// el lock de escritura vía Run; las lecturas sueltas usan el lock de lectura.
type Store struct {
	mu sync.RWMutex

	items     []*entity.Item
	movements []*entity.Movement // orden cronológico de inserción
}

// NewStore construye un ledger vacío.
func NewStore() *Store {
	return &Store{}
}

// Run ejecuta fn con acceso exclusivo al ledger, pasando repositorios atados
// a la sección crítica (equivalente en memoria a una transacción de BD: o fn
// completa entera o, si devuelve error, el caller descarta el resultado; como
// las mutaciones de los repos en memoria no fallan a medias, no hace falta
// rollback).
func (s *Store) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	movementRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&ItemRepo{store: s, inTx: true}, &MovementRepo{store: s, inTx: true})
}

// Items devuelve el repositorio de ítems para lecturas fuera de Run.
func (s *Store) Items() repository.ItemRepository {
	return &ItemRepo{store: s}
}

// Movements devuelve el repositorio de movimientos para lecturas fuera de Run.
func (s *Store) Movements() repository.MovementRepository {
	return &MovementRepo{store: s}
}
