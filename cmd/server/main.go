package main

import (
	"log"
	"strings"
	"table_order/internal/config"
	"table_order/internal/database"
	"table_order/internal/handlers"
	"table_order/internal/migrations"
	"table_order/internal/redis"
	"table_order/internal/repository"
	"table_order/internal/services"
	"table_order/pkg/qrcode"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	qrGenerator := qrcode.NewGenerator(cfg.SiteURL, cfg.QRCodeDir)

	// Initialize repositories
	tableRepo := repository.NewTableRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	notificationService := services.NewNotificationService(notificationRepo, redisClient, cfg.MailboxDuration())
	orderService := services.NewOrderService(orderRepo, orderItemRepo, tableRepo, catalogRepo, notificationService, cfg.ServedGrace())
	kitchenService := services.NewKitchenService(orderRepo, orderItemRepo, notificationService)
	waiterService := services.NewWaiterService(orderRepo, orderItemRepo, notificationService)
	catalogService := services.NewCatalogService(catalogRepo)
	tableService := services.NewTableService(tableRepo, qrGenerator)
	userService := services.NewUserService(userRepo, redisClient, cfg.SessionDuration())
	reportService := services.NewReportService(reportRepo)

	// First start on an empty database gets staff accounts and a sample menu
	err = migrations.CreateDefaultData(migrations.Seeder{
		Users:   userService,
		Catalog: catalogService,
		Tables:  tableService,
	})
	if err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	// Initialize handlers
	router := handlers.NewRouter(&handlers.Handlers{
		Guest:   handlers.NewGuestHandler(orderService, catalogService, tableService, notificationService),
		Kitchen: handlers.NewKitchenHandler(kitchenService),
		Waiter:  handlers.NewWaiterHandler(waiterService),
		Staff:   handlers.NewStaffHandler(notificationService),
		Auth:    handlers.NewAuthHandler(userService),
		Admin:   handlers.NewAdminHandler(reportService, userService, tableService, catalogService, orderService),
	}, handlers.SessionOptions{
		Secret: cfg.SessionSecret,
		MaxAge: cfg.SessionTimeout,
		Secure: strings.HasPrefix(cfg.SiteURL, "https://"),
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
