package catalog_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/domain/catalog"
	"github.com/dcastano/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del asignador de códigos.
//
// Garantías que se verifican:
//   - el código devuelto nunca está en el conjunto existente,
//   - el prefijo corresponde a la categoría (PF / EPI / CNS, ITM de reserva),
//   - la función es determinista (mismo input → mismo output),
//   - los huecos dejados por ítems eliminados se reutilizan,
//   - el relleno con ceros es un ancho mínimo, no un tope.
// ──────────────────────────────────────────────────────────────────────────────

func codeSet(codes ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func TestAllocateCode_ConjuntoVacio(t *testing.T) {
	assert.Equal(t, "PF001", catalog.AllocateCode(entity.CategoryPartTool, codeSet()))
	assert.Equal(t, "EPI001", catalog.AllocateCode(entity.CategoryPPE, codeSet()))
	assert.Equal(t, "CNS001", catalog.AllocateCode(entity.CategoryConsumable, codeSet()))
}

func TestAllocateCode_SiguienteLibre(t *testing.T) {
	got := catalog.AllocateCode(entity.CategoryPartTool, codeSet("PF001", "PF002"))
	assert.Equal(t, "PF003", got)
}

// TestAllocateCode_ReutilizaHuecos reproduce el escenario de borrado: con
// {PF001, PF002} se asigna PF003; al eliminar el ítem PF002, la siguiente
// asignación sobre {PF001, PF003} devuelve PF002 (el hueco se reutiliza).
func TestAllocateCode_ReutilizaHuecos(t *testing.T) {
	existing := codeSet("PF001", "PF002")
	require.Equal(t, "PF003", catalog.AllocateCode(entity.CategoryPartTool, existing))

	afterDelete := codeSet("PF001", "PF003")
	assert.Equal(t, "PF002", catalog.AllocateCode(entity.CategoryPartTool, afterDelete))
}

func TestAllocateCode_NoColisionaConOtrasCategorias(t *testing.T) {
	// Códigos de otras categorías no bloquean el contador de la propia.
	existing := codeSet("EPI001", "CNS001", "CNS002")
	assert.Equal(t, "PF001", catalog.AllocateCode(entity.CategoryPartTool, existing))
}

func TestAllocateCode_Determinista(t *testing.T) {
	existing := codeSet("EPI001", "EPI003")
	first := catalog.AllocateCode(entity.CategoryPPE, existing)
	second := catalog.AllocateCode(entity.CategoryPPE, existing)

	assert.Equal(t, first, second, "el mismo input siempre debe producir el mismo código")
	assert.Equal(t, "EPI002", first)
}

func TestAllocateCode_NuncaDevuelveCodigoExistente(t *testing.T) {
	existing := codeSet()
	for i := 1; i <= 50; i++ {
		code := catalog.AllocateCode(entity.CategoryConsumable, existing)
		_, taken := existing[code]
		require.False(t, taken, "código %s ya estaba en uso", code)
		existing[code] = struct{}{}
	}
	assert.Len(t, existing, 50)
}

// TestAllocateCode_MasDe999 verifica que el relleno de 3 dígitos es un ancho
// mínimo: al agotar PF001..PF999 el sufijo crece a 4 dígitos.
func TestAllocateCode_MasDe999(t *testing.T) {
	existing := make(map[string]struct{}, 999)
	for i := 1; i <= 999; i++ {
		existing[fmt.Sprintf("PF%03d", i)] = struct{}{}
	}
	assert.Equal(t, "PF1000", catalog.AllocateCode(entity.CategoryPartTool, existing))
}

func TestAllocateCode_CategoriaDesconocidaUsaPrefijoDeReserva(t *testing.T) {
	got := catalog.AllocateCode(entity.Category("Repuesto"), codeSet())
	assert.Equal(t, "ITM001", got)
}

func TestAllocateCode_NoMutaElConjunto(t *testing.T) {
	existing := codeSet("CNS001")
	_ = catalog.AllocateCode(entity.CategoryConsumable, existing)
	assert.Len(t, existing, 1, "AllocateCode no debe mutar su input")
}
