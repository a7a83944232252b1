package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"

	"github.com/EdiBulb/CarRentalService/internal/config"
	"github.com/EdiBulb/CarRentalService/internal/console"
	"github.com/EdiBulb/CarRentalService/internal/logger"
	"github.com/EdiBulb/CarRentalService/internal/repository/postgres"
	"github.com/EdiBulb/CarRentalService/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Service...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	ctx := context.Background()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to provision schema", "error", err)
		log.Fatalf("Failed to provision schema: %v", err)
	}

	store := postgres.NewStore(db)

	authSvc := service.NewAuthService(store.UserRepository)
	carSvc := service.NewCarService(store.CarRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.CarRepository)

	menu := console.New(authSvc, carSvc, rentalSvc, os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		logger.Error("Console loop failed", "error", err)
		log.Fatalf("Console loop failed: %v", err)
	}
}
