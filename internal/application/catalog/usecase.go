package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	domaincatalog "github.com/dcastano/almacen-api/internal/domain/catalog"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD del catálogo de ítems. El código de cada ítem
// lo genera el asignador de códigos y es inmutable, igual que el ID.
type ItemUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(txRunner TxRunner, itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// Create crea un ítem nuevo. El código se asigna dentro de la misma sección
// crítica en que se inserta el ítem, para que dos creaciones simultáneas no
// puedan recibir el mismo código.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	category := entity.Category(in.Category)
	if strings.TrimSpace(in.Name) == "" || !category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.CurrentStock < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	item := &entity.Item{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     category,
		Unit:         in.Unit,
		CurrentStock: in.CurrentStock,
		MinStock:     in.MinStock,
		Observation:  in.Observation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		item.Code = domaincatalog.AllocateCode(category, itemRepo.Codes())
		return itemRepo.Create(item)
	})
	if err != nil {
		return nil, err
	}
	return dto.NewItemResponse(item), nil
}

// GetByID obtiene un ítem por ID. Devuelve (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return dto.NewItemResponse(item), nil
}

// Update edita los campos mutables de un ítem. ID y Code se preservan
// incondicionalmente: el DTO ni siquiera los admite y aquí solo se copian los
// campos editables sobre el ítem existente. Devuelve (nil, nil) si no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != nil && !entity.Category(*in.Category).Valid() {
		return nil, domain.ErrInvalidInput
	}
	if (in.CurrentStock != nil && *in.CurrentStock < 0) || (in.MinStock != nil && *in.MinStock < 0) {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Item
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		item, err := itemRepo.GetByID(id)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		if in.Name != nil {
			item.Name = *in.Name
		}
		if in.Category != nil {
			item.Category = entity.Category(*in.Category)
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.CurrentStock != nil {
			item.CurrentStock = *in.CurrentStock
		}
		if in.MinStock != nil {
			item.MinStock = *in.MinStock
		}
		if in.Observation != nil {
			item.Observation = *in.Observation
		}
		item.UpdatedAt = time.Now()
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return dto.NewItemResponse(updated), nil
}

// Delete elimina un ítem por ID. Los movimientos históricos del ítem no se
// tocan: son hechos registrados, no filas con clave foránea.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		return itemRepo.Delete(id)
	})
}

// List lista el catálogo, filtrando opcionalmente por nombre, código o
// categoría. La búsqueda ignora mayúsculas y tildes.
func (uc *ItemUseCase) List(q string) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}

	needle := foldForSearch(q)
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesItem(item, needle) {
			continue
		}
		out = append(out, *dto.NewItemResponse(item))
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

func matchesItem(item *entity.Item, needle string) bool {
	return strings.Contains(foldForSearch(item.Name), needle) ||
		strings.Contains(foldForSearch(item.Code), needle) ||
		strings.Contains(foldForSearch(string(item.Category)), needle)
}
