package main

import (
	"fmt"
	"log"
	"table_order/internal/config"
	"table_order/internal/database"
	"table_order/internal/migrations"
	"table_order/internal/redis"
	"table_order/internal/repository"
	"table_order/internal/services"
	"table_order/pkg/qrcode"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	if err := migrations.RunMigrations(db, true); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	seed := migrations.Seeder{
		Users:   services.NewUserService(repository.NewUserRepository(db), redisClient, cfg.SessionDuration()),
		Catalog: services.NewCatalogService(repository.NewCatalogRepository(db)),
		Tables:  services.NewTableService(repository.NewTableRepository(db), qrcode.NewGenerator(cfg.SiteURL, cfg.QRCodeDir)),
	}
	if err := migrations.CreateDefaultData(seed); err != nil {
		log.Fatal("Failed to create default data:", err)
	}

	fmt.Println("Database initialization completed successfully!")
}
