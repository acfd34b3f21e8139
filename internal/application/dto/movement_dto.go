package dto

import "time"

// RegisterMovementRequest body para POST /api/movements.
// Code puede venir de la cámara, de un lector USB o tecleado a mano; para el
// ledger las tres fuentes son idénticas.
type RegisterMovementRequest struct {
	Code        string `json:"code" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=in out"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Responsible string `json:"responsible" validate:"required"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID          string    `json:"id"`
	ItemCode    string    `json:"item_code"`
	ItemName    string    `json:"item_name"`
	Unit        string    `json:"unit"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Responsible string    `json:"responsible"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterMovementResponse respuesta de registrar un movimiento: el movimiento
// creado y el ítem con su stock ya actualizado.
type RegisterMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	Item     ItemResponse     `json:"item"`
}

// MovementListResponse historial de movimientos (del más reciente al más
// antiguo) con los contadores de entradas y salidas.
type MovementListResponse struct {
	Items    []MovementResponse `json:"items"`
	Total    int                `json:"total"`
	TotalIn  int                `json:"total_in"`
	TotalOut int                `json:"total_out"`
	Page     PageResponse       `json:"page"`
}
