package dto

import (
	"github.com/dcastano/almacen-api/internal/domain/catalog"
	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// NewItemResponse mapea un ítem de dominio a su DTO de salida, calculando el
// estado de stock derivado.
func NewItemResponse(item *entity.Item) *ItemResponse {
	if item == nil {
		return nil
	}
	return &ItemResponse{
		ID:           item.ID,
		Code:         item.Code,
		Name:         item.Name,
		Category:     string(item.Category),
		Unit:         item.Unit,
		CurrentStock: item.CurrentStock,
		MinStock:     item.MinStock,
		Observation:  item.Observation,
		StockStatus:  catalog.StockStatus(item.CurrentStock, item.MinStock),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// NewMovementResponse mapea un movimiento de dominio a su DTO de salida.
func NewMovementResponse(m *entity.Movement) *MovementResponse {
	if m == nil {
		return nil
	}
	return &MovementResponse{
		ID:          m.ID,
		ItemCode:    m.ItemCode,
		ItemName:    m.ItemName,
		Unit:        m.Unit,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Responsible: m.Responsible,
		CreatedAt:   m.CreatedAt,
	}
}
