package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/application/service"
	"github.com/majidkambarath/restaurant-pos/internal/config"
	"github.com/majidkambarath/restaurant-pos/internal/domain/cart"
	"github.com/majidkambarath/restaurant-pos/internal/infrastructure/database"
	"github.com/majidkambarath/restaurant-pos/internal/infrastructure/repository"
	"github.com/majidkambarath/restaurant-pos/internal/infrastructure/upstream"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/handler"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/routes"
	"github.com/majidkambarath/restaurant-pos/pkg/printer"
	"github.com/majidkambarath/restaurant-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the upstream POS backend client
	backend := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	// Discount policy comes from configuration
	var discount cart.DiscountPolicy
	if cfg.POS.DiscountMode == "fixed" {
		discount = cart.FixedDiscount(decimal.NewFromFloat(cfg.POS.DiscountAmount))
	}

	// Initialize services
	sessionService := service.NewSessionService(
		backend, backend, backend,
		decimal.NewFromFloat(cfg.POS.VATRate),
		discount,
		cfg.POS.OrderPrefix,
	)
	catalogService := service.NewCatalogService(backend, cfg.POS.SearchDebounce)
	lookupService := service.NewLookupService(backend, backend, cfg.POS.SearchDebounce)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, sessionService, settingsService, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:  handler.NewSessionHandler(sessionService),
		Catalog:  handler.NewCatalogHandler(catalogService, sessionService),
		Lookup:   handler.NewLookupHandler(lookupService, sessionService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Upstream backend: %s", cfg.Upstream.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
