package http

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/dcastano/almacen-api/internal/application/analytics"
	"github.com/dcastano/almacen-api/internal/application/catalog"
	"github.com/dcastano/almacen-api/internal/application/export"
	"github.com/dcastano/almacen-api/internal/application/inventory"
	"github.com/dcastano/almacen-api/internal/application/scanner"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC           *catalog.ItemUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ScannerUC        *scanner.ScannerUseCase
	DashboardUC      *analytics.DashboardUseCase
	ExportUC         *export.ExportUseCase

	// Límite por IP del endpoint del escáner (peticiones/segundo y ráfaga).
	ScannerRateLimit rate.Limit
	ScannerRateBurst int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de ítems
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Etiqueta imprimible de un ítem (código + QR)
	exportHandler := NewExportHandler(deps.ExportUC)
	items.Get("/:id/label.pdf", exportHandler.ItemLabel)

	// Movimientos de stock
	movements := api.Group("/movements")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	movements.Post("/", inventoryHandler.Register)
	movements.Get("/", inventoryHandler.List)

	// Escáner (con límite por IP)
	scannerGroup := api.Group("/scanner", RateLimit(deps.ScannerRateLimit, deps.ScannerRateBurst))
	scannerHandler := NewScannerHandler(deps.ScannerUC)
	scannerGroup.Post("/resolve", scannerHandler.Resolve)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Exportaciones del historial
	exportGroup := api.Group("/export")
	exportGroup.Get("/movements.csv", exportHandler.MovementsCSV)
	exportGroup.Get("/movements.pdf", exportHandler.MovementsPDF)
}
