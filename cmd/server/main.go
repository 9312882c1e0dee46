// Package main implements the entry point for the task API server,
// an HTTP service that keeps task records in memory.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		app.logger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application's dependencies.
func initializeApp() (*application, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"shutdown_timeout_seconds", cfg.Server.ShutdownTimeoutSeconds)

	app, err := newApplication(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}
