package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Visión general del almacén: totales, alertas de stock bajo, movimientos del
// día y distribución por categoría.
type DashboardSummaryDTO struct {
	TotalItems int `json:"total_items"` // ítems en el catálogo
	TotalStock int `json:"total_stock"` // suma de stock actual de todos los ítems

	// Ítems con stock actual <= mínimo (requieren reposición)
	LowStockItems []LowStockItemDTO `json:"low_stock_items"`

	// Movimientos registrados hoy (00:00 – ahora)
	MovementsToday MovementsTodayDTO `json:"movements_today"`

	// Distribución del catálogo por categoría
	Categories []CategoryShareDTO `json:"categories"`

	// Top 6 ítems por stock actual (de mayor a menor)
	TopStockItems []TopStockItemDTO `json:"top_stock_items"`
}

// LowStockItemDTO ítem por debajo de su umbral de reposición.
type LowStockItemDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
}

// MovementsTodayDTO contadores de movimientos del día en curso.
type MovementsTodayDTO struct {
	In    int `json:"in"`
	Out   int `json:"out"`
	Total int `json:"total"`
}

// CategoryShareDTO participación de una categoría en el catálogo.
type CategoryShareDTO struct {
	Category   string          `json:"category"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"` // % sobre el total, 1 decimal
}

// TopStockItemDTO ítem del widget de mayor stock. El nombre se recorta a 20
// caracteres para la etiqueta del gráfico.
type TopStockItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
