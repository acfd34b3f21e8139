package dto

import "time"

// CreateItemRequest entrada para crear un ítem. El código no se acepta del
// cliente: lo genera el asignador de códigos a partir de la categoría.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"current_stock" validate:"min=0"`
	MinStock     int    `json:"min_stock" validate:"min=0"`
	Observation  string `json:"observation"`
}

// UpdateItemRequest entrada para editar un ítem. No incluye ID ni Code a
// propósito: son inmutables tras la creación y el cliente no puede
// sobreescribirlos aunque los envíe en el body.
type UpdateItemRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string `json:"category"`
	Unit         *string `json:"unit"`
	CurrentStock *int    `json:"current_stock" validate:"omitempty,min=0"`
	MinStock     *int    `json:"min_stock" validate:"omitempty,min=0"`
	Observation  *string `json:"observation"`
}

// ItemResponse salida de un ítem. StockStatus es derivado (low/medium/good),
// no se almacena.
type ItemResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Unit         string    `json:"unit"`
	CurrentStock int       `json:"current_stock"`
	MinStock     int       `json:"min_stock"`
	Observation  string    `json:"observation,omitempty"`
	StockStatus  string    `json:"stock_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemListResponse lista de ítems del catálogo.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total"`
}
