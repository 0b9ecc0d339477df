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

	"github.com/templeops/temple-stock-api/internal/application/registry"
	"github.com/templeops/temple-stock-api/internal/application/report"
	"github.com/templeops/temple-stock-api/internal/application/stock"
	infrapdf "github.com/templeops/temple-stock-api/internal/infrastructure/pdf"
	"github.com/templeops/temple-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/templeops/temple-stock-api/internal/interfaces/http"
	"github.com/templeops/temple-stock-api/pkg/config"
	"github.com/templeops/temple-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	adjRepo := postgres.NewAdjustmentRepository(pool)
	structureRepo := postgres.NewStructureRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	updateStockUC := stock.NewUpdateStockUseCase(txRunner)
	reconcileUC := stock.NewReconcileUseCase(txRunner, updateStockUC)
	ledgerUC := stock.NewLedgerUseCase(txRepo, adjRepo)
	itemUC := registry.NewItemUseCase(itemRepo)
	structureUC := registry.NewStructureUseCase(structureRepo)
	lowStockUC := report.NewLowStockUseCase(itemRepo)
	stockPDFUC := report.NewStockPDFUseCase(itemRepo, infrapdf.NewMarotoStockReport())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Temple Stock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		StructureUC: structureUC,
		UpdateStock: updateStockUC,
		Reconcile:   reconcileUC,
		Ledger:      ledgerUC,
		LowStock:    lowStockUC,
		StockPDF:    stockPDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
