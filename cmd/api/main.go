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

	"github.com/asmitlabs/gst-invoice-api/internal/application/invoicing"
	"github.com/asmitlabs/gst-invoice-api/internal/infrastructure/memory"
	infrapdf "github.com/asmitlabs/gst-invoice-api/internal/infrastructure/pdf"
	httpRouter "github.com/asmitlabs/gst-invoice-api/internal/interfaces/http"
	"github.com/asmitlabs/gst-invoice-api/pkg/config"
	"github.com/asmitlabs/gst-invoice-api/pkg/logger"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sessions live only in memory; the janitor bounds how long an abandoned
	// invoice can linger.
	store := memory.NewSessionStore(cfg.Session.TTL)
	go store.RunJanitor(ctx, time.Minute)

	sessionUC := invoicing.NewSessionUseCase(store)

	// PDF: printable tax invoice rendered with Maroto
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	exportUC := invoicing.NewExportUseCase(store, pdfGenerator, cfg.Export.Delay, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GST Invoice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions: sessionUC,
		Export:   exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("http server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
