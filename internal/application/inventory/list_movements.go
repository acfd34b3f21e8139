package inventory

import (
	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// List devuelve el historial de movimientos del más reciente al más antiguo,
// filtrando opcionalmente por tipo (in/out), con los contadores globales de
// entradas y salidas para las pestañas del cliente.
func (uc *RegisterMovementUseCase) List(movType string, limit, offset int) (*dto.MovementListResponse, error) {
	if movType != "" && movType != entity.MovementTypeIn && movType != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	movements, err := uc.movementRepo.List(movType, limit, offset)
	if err != nil {
		return nil, err
	}
	in, out, err := uc.movementRepo.CountByType()
	if err != nil {
		return nil, err
	}

	// Total de la página: los registros que casan con el filtro, no solo los
	// devueltos en esta ventana.
	filteredTotal := in + out
	switch movType {
	case entity.MovementTypeIn:
		filteredTotal = in
	case entity.MovementTypeOut:
		filteredTotal = out
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *dto.NewMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items:    items,
		Total:    in + out,
		TotalIn:  in,
		TotalOut: out,
		Page:     dto.PageResponse{Limit: limit, Offset: offset, Total: filteredTotal},
	}, nil
}
