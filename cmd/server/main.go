package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdugdh24/matchcore/internal/config"
	"github.com/gdugdh24/matchcore/internal/infrastructure/container"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Build(logger.Config{
		Level:       cfg.Logging.Level,
		Encoding:    cfg.Logging.Encoding,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	logger.ReplaceGlobal(log)
	defer log.Sync()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependency injection container
	app, err := container.NewContainer(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize application", logger.ErrorField(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "error closing application", logger.ErrorField(err))
		}
	}()

	// Blocks until SIGINT/SIGTERM cancels ctx
	if err := app.Server.Run(ctx); err != nil {
		logger.Error(ctx, "server error", logger.ErrorField(err))
		return
	}

	logger.Info(ctx, "server exited properly")
}
