package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// Movement representa un hecho inmutable de entrada o salida de stock.
// Referencia al ítem por código y desnormaliza ItemName y Unit en el momento
// del registro, para que el historial sea estable aunque el ítem se edite o
// elimine después.
type Movement struct {
	ID          string
	ItemCode    string
	ItemName    string
	Unit        string
	Type        string // in, out
	Quantity    int    // siempre > 0; el signo lo da Type
	Responsible string
	CreatedAt   time.Time
}
