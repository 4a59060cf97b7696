package main

import (
	"context"
	"rentals/internal/properties/repository"
	"rentals/internal/properties/service"
	"rentals/internal/properties/validator"
	"rentals/pkg/config"
	"time"
)

const ServiceName = "rentals-seed"

func main() {
	cfg := config.Load(ServiceName)
	defer cfg.GracefulShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := cfg.OpenStore()
	if err != nil {
		cfg.Log.Fatal("Failed to open store", "backend", cfg.StorageBackend, "error", err)
	}

	propertyService := service.NewPropertyService(
		repository.NewStorePropertyRepository(s),
		validator.NewPropertyValidator(cfg.Log),
		cfg,
	)
	defer propertyService.Close()

	if err := propertyService.EnsureSeeded(ctx); err != nil {
		cfg.Log.Fatal("Seeding failed", "error", err)
	}

	properties, err := propertyService.List(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to read back catalog", "error", err)
	}
	cfg.Log.Info("Property catalog ready", "backend", cfg.StorageBackend, "properties", len(properties))
}
