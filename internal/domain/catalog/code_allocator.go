package catalog

import (
	"fmt"

	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// AllocateCode deriva el siguiente código libre para la categoría dada
// (servicio de dominio, función pura).
//
// Los candidatos se generan como prefijo + contador de 3 dígitos con ceros a
// la izquierda empezando en 1 (PF001, PF002, ...) y se recorre hacia arriba
// hasta encontrar uno que no esté en existingCodes. No hay contador
// persistente: se recalcula contra el conjunto actual en cada llamada, por lo
// que eliminar un ítem libera su número para una asignación futura.
//
// %03d fija un ancho mínimo, no máximo: con más de 999 códigos por categoría
// el sufijo simplemente crece (PF1000).
func AllocateCode(category entity.Category, existingCodes map[string]struct{}) string {
	prefix := category.Prefix()
	for counter := 1; ; counter++ {
		code := fmt.Sprintf("%s%03d", prefix, counter)
		if _, taken := existingCodes[code]; !taken {
			return code
		}
	}
}
