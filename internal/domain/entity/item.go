package entity

import "time"

// Category categoría de un ítem del almacén (enumeración cerrada).
type Category string

// Categorías soportadas. El prefijo del código se deriva de la categoría.
const (
	CategoryPartTool   Category = "Pieza/Herramienta"
	CategoryPPE        Category = "EPI"
	CategoryConsumable Category = "Consumible"
)

// fallbackPrefix prefijo defensivo para categorías fuera de la enumeración.
// Con Valid() como guardia en los handlers no debería alcanzarse nunca.
const fallbackPrefix = "ITM"

// Prefix devuelve el prefijo de código asociado a la categoría.
func (c Category) Prefix() string {
	switch c {
	case CategoryPartTool:
		return "PF"
	case CategoryPPE:
		return "EPI"
	case CategoryConsumable:
		return "CNS"
	default:
		return fallbackPrefix
	}
}

// Valid indica si la categoría pertenece a la enumeración cerrada.
func (c Category) Valid() bool {
	switch c {
	case CategoryPartTool, CategoryPPE, CategoryConsumable:
		return true
	}
	return false
}

// Item representa un ítem del catálogo del almacén.
// Code se genera con el asignador de códigos al crear el ítem y es inmutable
// después; ID también. El resto de campos se editan en sitio.
type Item struct {
	ID           string
	Code         string
	Name         string
	Category     Category
	Unit         string // etiqueta libre: "un", "par", "litro", ...
	CurrentStock int    // nunca negativo
	MinStock     int    // umbral de reposición
	Observation  string // nota opcional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
