package repository

import "github.com/dcastano/almacen-api/internal/domain/entity"

// ItemRepository define el puerto de acceso a la colección de ítems (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	// Codes devuelve el conjunto de códigos en uso, como snapshot para el
	// asignador de códigos.
	Codes() map[string]struct{}
	Update(item *entity.Item) error
	Delete(id string) error
	List() ([]*entity.Item, error)
}
