package main

import (
	"shop-service/internal/handler"
	mid "shop-service/internal/middleware"
	"shop-service/pkg/config"
	"shop-service/pkg/database"
	"shop-service/pkg/jwtutil"
	"shop-service/pkg/logger"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	logger.InitLogger(cfg)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting shop service...", cfg.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&cfg.JWT)
	log.Info("JWT utility initialized")

	// Initialize database
	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Initialize Echo framework
	e := echo.New()

	// Apply global middleware - order matters
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(mid.MetricsMiddleware)

	// Public routes - no authentication required
	e.GET("/", handler.Home)
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", handler.MetricsHandler)
	e.POST("/signup", handler.SignUp)
	e.POST("/login", handler.Login)

	// Category and product management - privileged callers only
	staff := e.Group("", mid.AuthMiddleware, mid.StaffOnly)
	staff.GET("/product-category", handler.ListCategories)
	staff.POST("/product-category", handler.CreateCategory)
	staff.POST("/product", handler.CreateProduct)
	staff.PUT("/product/:id", handler.UpdateProduct)
	staff.DELETE("/product/:id", handler.DeleteProduct)

	// Routes for any authenticated caller
	authed := e.Group("", mid.AuthMiddleware)
	authed.GET("/product-list", handler.ListProducts)
	authed.POST("/order", handler.PlaceOrder)
	authed.GET("/order", handler.ListOrders)

	// Start server
	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
