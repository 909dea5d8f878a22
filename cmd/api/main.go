package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventory-ops/internal/application/analytics"
	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/application/operation"
	"github.com/jhoicas/inventory-ops/internal/application/usecase"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-ops/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-ops/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/inventory-ops/internal/interfaces/http"
	"github.com/jhoicas/inventory-ops/pkg/config"
	"github.com/jhoicas/inventory-ops/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer st.close()

	drafts := memory.NewDraftStore()
	janitor := scheduler.NewDraftJanitor(drafts, cfg.Drafts.SweepSpec, cfg.Drafts.TTL(), log.Component("drafts"))
	if err := janitor.Start(); err != nil {
		log.Fatal().Err(err).Msg("limpieza de borradores")
	}

	entryUC := operation.NewEntryUseCase(
		drafts,
		st.products, st.warehouses, st.packaging, st.history,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name),
		operation.EntryConfig{
			FallbackWarehouse: cfg.Operations.FallbackWarehouse,
			DateLayout:        cfg.Operations.DateLayout,
		},
		log.Component("operations"),
	)
	reportUC := analytics.NewReportUseCase(st.products, st.history, analytics.DefaultFormatter{})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Operations API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(st.products),
		WarehouseUC: usecase.NewWarehouseUseCase(st.warehouses),
		PackagingUC: usecase.NewPackagingUseCase(st.packaging),
		HistoryUC:   usecase.NewHistoryUseCase(st.history),
		EntryUC:     entryUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
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
	janitor.Stop()

	log.Info().Msg("aplicación detenida")
}
