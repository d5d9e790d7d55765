package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/config"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/export"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/grouping"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	catalogService  catalog.Service
	groupingService grouping.Service
	exportService   export.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		catalogService:  catalog.NewCatalogService(),
		groupingService: grouping.NewService(logger),
		exportService:   export.NewService(logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
