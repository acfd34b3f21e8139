package catalog

// Estados de stock derivados (solo presentación, no se almacenan).
const (
	StockStatusLow    = "low"    // bajo: stock actual <= mínimo
	StockStatusMedium = "medium" // medio: stock actual <= 2x mínimo
	StockStatusGood   = "good"   // bueno
)

// StockStatus clasifica el stock actual frente al umbral mínimo.
func StockStatus(currentStock, minStock int) string {
	if currentStock <= minStock {
		return StockStatusLow
	}
	if currentStock <= 2*minStock {
		return StockStatusMedium
	}
	return StockStatusGood
}
