package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"timesheet-assistant/config"
	_ "timesheet-assistant/docs" // Swagger docs
	"timesheet-assistant/internal/app"
	"timesheet-assistant/internal/httpserver"
	"timesheet-assistant/internal/middleware"
	timesheetHTTP "timesheet-assistant/internal/timesheet/delivery/http"
	"timesheet-assistant/pkg/log"
)

// @title       Timesheet Assistant API
// @description Turns free-text work descriptions into timesheet entries, spreadsheets and PDFs.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Timesheet Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Output dir: %s", cfg.Timesheet.OutputDir)

	// 3. Domain
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.RateLimit),
		TimesheetHandler: timesheetHTTP.New(logger, a.UseCase),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
