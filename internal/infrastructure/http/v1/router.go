// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"grainpay/internal/core/apperror"
	"grainpay/internal/domain/expense"
	"grainpay/internal/domain/income"
	"grainpay/internal/infrastructure/http/v1/handlers"
	"grainpay/internal/infrastructure/http/v1/middleware"
	"grainpay/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Expenses serves /api/expenses
	Expenses expense.Service

	// Incomes serves /api/incomes
	Incomes income.Service

	// DB is checked by the readiness probe
	DB handlers.Pinger

	// Driver is reported by the readiness probe
	Driver string

	// Logger for request logging
	Logger *logger.Logger

	// Development switches gin to debug mode
	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware (order matters!)
	// Recovery sits inside ErrorHandler so recovered panics are rendered as JSON.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("Resource not found: " + c.Request.URL.Path))
		c.Abort()
	})
	router.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperror.NewInvalidArgument("Method " + c.Request.Method + " not supported"))
		c.Abort()
	})

	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.Driver)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	api := router.Group("/api")
	registerResourceRoutes(api, cfg)

	return router
}

// registerResourceRoutes registers the expense and income endpoints.
func registerResourceRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	// --- EXPENSES ---
	if cfg.Expenses != nil {
		handler := handlers.NewExpenseHandler(baseHandler, cfg.Expenses)
		RegisterResourceRoutes(rg.Group("/expenses"), handler)
	}

	// --- INCOMES ---
	if cfg.Incomes != nil {
		handler := handlers.NewIncomeHandler(baseHandler, cfg.Incomes)
		RegisterResourceRoutes(rg.Group("/incomes"), handler)
	}
}
