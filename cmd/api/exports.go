package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/export"
)

// ExportInput defines the JSON body for the export endpoints.
// Latitude and longitude are pointers so a literal 0 still passes the
// required check.
type ExportInput struct {
	Asset     string   `json:"asset" binding:"required" example:"madrid-study"` // Output file name, extension appended when missing
	Team      string   `json:"team" example:"SIROCCO"`                          // Team identifier, empty selects the legacy catalog
	Latitude  *float64 `json:"latitude" binding:"required" example:"40.41"`     // Latitude in decimal degrees
	Longitude *float64 `json:"longitude" binding:"required" example:"-3.70"`    // Longitude in decimal degrees
	Models    []string `json:"models"`                                          // Model names, defaults to ECMWF and GFS_0.5
	Points    int      `json:"points" example:"4"`                              // Nearest points per model, defaults from config
	Label     string   `json:"label" example:"POINT"`                           // Query marker label, empty picks the format default
	Directory string   `json:"directory"`                                       // Output directory, defaults from config
	Overwrite bool     `json:"overwrite"`                                       // Replace an existing target file
}

// ExportResponse reports the written artifact
type ExportResponse struct {
	Path          string   `json:"path" example:"out/madrid-study.html"`
	Groups        int      `json:"groups" example:"7"`       // Distinct grid points rendered
	SkippedModels []string `json:"skipped_models,omitempty"` // Requested models absent from the team catalog
}

// handleExportMap godoc
// @Summary Export an HTML map
// @Description Compute point groups and write them as an interactive HTML scatter map
// @Tags export
// @Accept json
// @Produce json
// @Param request body ExportInput true "Export request"
// @Success 200 {object} ExportResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /exports/map [post]
func (app *App) handleExportMap(c *gin.Context) {
	app.handleExport(c, app.exportService.ExportHTML)
}

// handleExportKML godoc
// @Summary Export a KML file
// @Description Compute point groups and write them as KML placemarks
// @Tags export
// @Accept json
// @Produce json
// @Param request body ExportInput true "Export request"
// @Success 200 {object} ExportResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /exports/kml [post]
func (app *App) handleExportKML(c *gin.Context) {
	app.handleExport(c, app.exportService.ExportKML)
}

func (app *App) handleExport(c *gin.Context, write func(export.Request) (string, error)) {
	var input ExportInput

	// Bind and validate the JSON body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := app.groupingRequest(input.Team, *input.Latitude, *input.Longitude, input.Models, input.Points)
	result, err := app.groupingService.Compute(req)
	if err != nil {
		app.respondComputeError(c, err)
		return
	}

	dir := input.Directory
	if dir == "" {
		dir = app.cfg.Export.OutputDir
	}
	path, err := write(export.Request{
		Asset:      input.Asset,
		Dir:        dir,
		Query:      req.Query,
		Groups:     result.Groups,
		QueryLabel: input.Label,
		Confirm:    export.Allow(input.Overwrite),
	})
	if err != nil {
		switch {
		case errors.Is(err, export.ErrOverwriteDeclined):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, export.ErrEmptyAsset):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			app.logger.Error("failed to write export", "asset", input.Asset, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write export"})
		}
		return
	}

	c.JSON(http.StatusOK, ExportResponse{
		Path:          path,
		Groups:        len(result.Groups),
		SkippedModels: result.SkippedModels,
	})
}
