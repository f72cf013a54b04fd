package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/majidkambarath/restaurant-pos/internal/config"
	domainRepo "github.com/majidkambarath/restaurant-pos/internal/domain/repository"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/handler"
	"github.com/majidkambarath/restaurant-pos/internal/presentation/http/middleware"
	"github.com/majidkambarath/restaurant-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session  *handler.SessionHandler
	Catalog  *handler.CatalogHandler
	Lookup   *handler.LookupHandler
	Settings *handler.SettingsHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// All routes require a terminal token
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-terminal rate limiter
		rateLimiter := middleware.NewTerminalRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerSessionRoutes(protected, h, deps)
		registerCatalogRoutes(protected, h)
		registerLookupRoutes(protected, h)
		registerSettingsRoutes(protected, h)
		registerPrinterRoutes(protected, h)
	}

	return router
}

func registerSessionRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	session := protected.Group("/session")
	{
		session.POST("/open", h.Session.Open)
		session.POST("/items", h.Session.AddItem)
		session.PUT("/items/:itemId", h.Session.UpdateQty)
		session.DELETE("/items/:itemId", h.Session.RemoveLine)
		session.DELETE("/cart", h.Session.ClearCart)
		session.PUT("/order-type", h.Session.SetOrderType)
		session.PUT("/customer", h.Session.SelectCustomer)
		session.PUT("/customer-info", h.Session.SetCustomerInfo)
		session.PUT("/delivery-boy", h.Session.SetDeliveryBoy)
		session.PUT("/remarks", h.Session.SetRemarks)
		session.PUT("/table", h.Session.ChooseTable)
		session.POST("/resume", h.Session.Resume)
		// Submission uses idempotency middleware so a retried save never
		// posts the same order twice
		session.POST("/submit", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Session.Submit)
		session.GET("/receipt", h.Session.Receipt)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	catalog := protected.Group("/catalog")
	{
		catalog.GET("/items", h.Catalog.List)
		catalog.GET("/categories", h.Catalog.Categories)
		catalog.GET("/search", h.Catalog.Search)
	}
}

func registerLookupRoutes(protected *gin.RouterGroup, h *Handlers) {
	lookup := protected.Group("/lookup")
	{
		lookup.GET("/employees", h.Lookup.Employees)
		lookup.GET("/customers", h.Lookup.Customers)
		lookup.GET("/tables", h.Lookup.Tables)
		lookup.GET("/pending", h.Lookup.Pending)
		lookup.GET("/token-counts", h.Lookup.TokenCounts)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/receipt", h.Printer.PrintReceipt)
	}
}
