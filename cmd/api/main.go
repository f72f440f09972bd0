package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inbox-planner/config"
	_ "inbox-planner/docs" // Swagger docs
	"inbox-planner/internal/app"
	"inbox-planner/internal/httpserver"
	"inbox-planner/pkg/log"
)

// @title       Inbox Planner API
// @description Turns recent email, meeting notes and calendar availability into a prioritised task list and proposed focus blocks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Inbox Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Planner
	planner, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize planner: ", err)
		return
	}
	defer func() {
		if err := planner.Close(); err != nil {
			logger.Warnf(ctx, "Failed to close cache: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		PipelineUC:      planner.UC,
		Window:          planner.Window,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
