package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Catalog endpoints
	app.router.GET("/teams", app.handleListTeams)
	app.router.GET("/teams/:team/models", app.handleListTeamModels)

	// Grouping endpoint
	app.router.GET("/point-groups", app.handleGetPointGroups)

	// Export endpoints
	app.router.POST("/exports/map", app.handleExportMap)
	app.router.POST("/exports/kml", app.handleExportKML)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
