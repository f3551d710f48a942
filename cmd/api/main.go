package main

import (
	"fmt"
	"os"

	"targetrack/internal/config"
	"targetrack/internal/database"
	"targetrack/internal/logger"
	"targetrack/internal/router"
	"targetrack/internal/validator"
)

// @title           Targetrack API
// @version         1.0
// @description     Monthly sales targets, achievements and performance analytics per employee and product.

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()
	engine := router.New(dbManager.DB(), cfg)

	log.Infof("Starting Targetrack API on port %s", cfg.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", cfg.Port)
	return engine.Run(":" + cfg.Port)
}
