package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas y salidas de stock de forma
// atómica: la actualización del stock del ítem y el alta del movimiento
// ocurren dentro de la misma sección crítica (TxRunner).
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, movementRepo: movementRepo}
}

// Register busca el ítem por código y aplica el movimiento:
//
//   - in:  stock nuevo = stock actual + cantidad
//   - out: stock nuevo = max(0, stock actual - cantidad); una salida nunca
//     deja el stock en negativo, el exceso se absorbe en el piso cero
//
// El movimiento captura nombre y unidad del ítem en este instante, para que
// el historial no cambie si el ítem se edita después. Un código sin ítem vivo
// devuelve ErrUnknownCode sin mutar nada; el flujo de recuperación esperado
// (crear el ítem y reintentar) es una secuencia explícita de dos llamadas del
// cliente, nunca se compone aquí dentro.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.RegisterMovementResponse, error) {
	if in.Type != entity.MovementTypeIn && in.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || strings.TrimSpace(in.Responsible) == "" || strings.TrimSpace(in.Code) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var resp *dto.RegisterMovementResponse

	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository) error {
		item, err := itemRepo.GetByCode(in.Code)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrUnknownCode
		}

		switch in.Type {
		case entity.MovementTypeIn:
			item.CurrentStock += in.Quantity
		case entity.MovementTypeOut:
			item.CurrentStock -= in.Quantity
			if item.CurrentStock < 0 {
				item.CurrentStock = 0
			}
		}
		item.UpdatedAt = now
		if err := itemRepo.Update(item); err != nil {
			return err
		}

		movement := &entity.Movement{
			ID:          uuid.New().String(),
			ItemCode:    item.Code,
			ItemName:    item.Name,
			Unit:        item.Unit,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Responsible: in.Responsible,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		resp = &dto.RegisterMovementResponse{
			Movement: *dto.NewMovementResponse(movement),
			Item:     *dto.NewItemResponse(item),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
