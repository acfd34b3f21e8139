package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone a NFD, elimina las marcas diacríticas y
// recompone, de modo que "Consumible" y "consumíble" comparen igual.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldForSearch normaliza un término para comparación: minúsculas y sin
// tildes. Si la transformación falla devuelve al menos la versión en
// minúsculas.
func foldForSearch(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, lower)
	if err != nil {
		return lower
	}
	return folded
}
