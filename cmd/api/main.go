package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/time/rate"

	"github.com/dcastano/almacen-api/internal/application/analytics"
	"github.com/dcastano/almacen-api/internal/application/catalog"
	"github.com/dcastano/almacen-api/internal/application/export"
	"github.com/dcastano/almacen-api/internal/application/inventory"
	"github.com/dcastano/almacen-api/internal/application/scanner"
	"github.com/dcastano/almacen-api/internal/infrastructure/memory"
	infrapdf "github.com/dcastano/almacen-api/internal/infrastructure/pdf"
	httpRouter "github.com/dcastano/almacen-api/internal/interfaces/http"
	"github.com/dcastano/almacen-api/pkg/config"
	"github.com/dcastano/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store := memory.NewStore()

	if cfg.Catalog.Seed {
		n, err := memory.Seed(ctx, store)
		if err != nil {
			log.Fatal().Err(err).Msg("cargar catálogo inicial")
		}
		log.Info().Int("items", n).Msg("catálogo inicial cargado")
	}

	itemRepo := store.Items()
	movementRepo := store.Movements()

	itemUC := catalog.NewItemUseCase(store, itemRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(store, movementRepo)
	scannerUC := scanner.NewScannerUseCase(itemRepo)
	dashboardUC := analytics.NewDashboardUseCase(itemRepo, movementRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	exportUC := export.NewExportUseCase(itemRepo, movementRepo, pdfGenerator, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs. El middleware hace
	// panic si el fichero no existe, así que solo se registra cuando los docs
	// generados están presentes; sin ellos el servidor arranca igualmente.
	if docsFile := "./docs/swagger.json"; fileExists(docsFile) {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: docsFile,
			Path:     "docs",
			Title:    "Almacén API",
		}))
	} else {
		log.Warn().Str("file", docsFile).Msg("swagger.json no encontrado, UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		ScannerUC:        scannerUC,
		DashboardUC:      dashboardUC,
		ExportUC:         exportUC,
		ScannerRateLimit: rate.Limit(cfg.Scanner.RateLimit),
		ScannerRateBurst: cfg.Scanner.RateBurst,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// fileExists indica si path existe y es un fichero regular.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
