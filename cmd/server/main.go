package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"back_office/internal/cache"
	"back_office/internal/config"
	"back_office/internal/database"
	"back_office/internal/handlers"
	"back_office/internal/migrations"
	"back_office/internal/models"
	"back_office/internal/repository"
	"back_office/internal/services"
	"back_office/internal/validation"
	"back_office/pkg/webhook"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := migrations.EnsureDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	// Initialize Redis cache
	cacheClient, err := cache.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer cacheClient.Close()

	// Initialize webhook notifier (disabled when WEBHOOK_URL is unset)
	notifier := webhook.NewNotifier(cfg.WebhookURL)
	defer notifier.Close()

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	customerService := services.NewCustomerService(customerRepo, cacheClient)
	categoryService := services.NewCategoryService(db, categoryRepo, cacheClient)
	productService := services.NewProductService(productRepo, categoryRepo, cacheClient)
	orderService := services.NewOrderService(db, orderRepo, cacheClient, notifier)
	inventoryService := services.NewInventoryService(db, inventoryRepo, cacheClient)
	mediaService := services.NewMediaService(mediaRepo, cacheClient, cfg.MediaDir, cfg.MediaBaseURL)
	userService := services.NewUserService(userRepo)

	// Initialize handlers
	validate := validation.New()
	customerHandler := handlers.NewCustomerHandler(customerService, validate)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)
	orderHandler := handlers.NewOrderHandler(orderService, validate)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validate)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	userHandler := handlers.NewUserHandler(userService, validate)
	configHandler := handlers.NewConfigHandler(models.AppConfig{DefaultCurrency: cfg.DefaultCurrency})

	// Setup routes
	router := gin.Default()
	router.Static(cfg.MediaBaseURL, cfg.MediaDir)

	api := router.Group("/api/v1")
	{
		customerHandler.Register(api)
		categoryHandler.Register(api)
		productHandler.Register(api)
		orderHandler.Register(api)
		inventoryHandler.Register(api)
		mediaHandler.Register(api)
		userHandler.Register(api)
		configHandler.Register(api)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
