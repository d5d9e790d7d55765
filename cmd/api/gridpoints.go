package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/grouping"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/selection"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

// TeamsResponse lists the advertised team profiles
type TeamsResponse struct {
	Teams []string `json:"teams" example:"SIROCCO,NEBBO"` // Team identifiers
}

// TeamModelsResponse lists a team's models with their grid profiles
type TeamModelsResponse struct {
	Team   string                `json:"team" example:"SIROCCO"`
	Models []catalog.GridProfile `json:"models"`
}

// PointGroupsInput defines the query parameters for the point-groups endpoint.
// Latitude and longitude are pointers so a literal 0 still passes the
// required check.
type PointGroupsInput struct {
	Team      string   `form:"team"`                         // Team identifier, empty selects the legacy catalog
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
	Models    []string `form:"models"`                       // Model names, defaults to ECMWF and GFS_0.5
	Points    int      `form:"points"`                       // Nearest points per model, defaults from config
}

// PointGroupsResponse carries the computed groups
type PointGroupsResponse struct {
	Team          string             `json:"team"`
	Query         types.Coords       `json:"query"`
	Points        int                `json:"points" example:"4"`
	Groups        []types.PointGroup `json:"groups"`
	SkippedModels []string           `json:"skipped_models,omitempty"` // Requested models absent from the team catalog
}

// handleListTeams godoc
// @Summary List teams
// @Description List the team profiles the grid catalog advertises
// @Tags catalog
// @Produce json
// @Success 200 {object} TeamsResponse
// @Router /teams [get]
func (app *App) handleListTeams(c *gin.Context) {
	teams := app.catalogService.Teams()
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = string(t)
	}
	c.JSON(http.StatusOK, TeamsResponse{Teams: names})
}

// handleListTeamModels godoc
// @Summary List a team's models
// @Description List the models available to a team together with their grid profiles
// @Tags catalog
// @Produce json
// @Param team path string true "Team identifier" example(SIROCCO)
// @Success 200 {object} TeamModelsResponse
// @Failure 404 {object} map[string]string
// @Router /teams/{team}/models [get]
func (app *App) handleListTeamModels(c *gin.Context) {
	team := catalog.Team(strings.ToUpper(c.Param("team")))

	models, err := app.catalogService.ModelsFor(team)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	profiles, err := app.catalogService.ProfilesFor(team)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	resp := TeamModelsResponse{Team: string(team), Models: make([]catalog.GridProfile, 0, len(models))}
	for _, model := range models {
		profile, ok := profiles.GetForModel(model)
		if !ok {
			continue
		}
		resp.Models = append(resp.Models, profile)
	}
	c.JSON(http.StatusOK, resp)
}

// handleGetPointGroups godoc
// @Summary Compute point groups
// @Description Select the nearest grid points per model and group the shared ones
// @Tags grouping
// @Produce json
// @Param team query string false "Team identifier" example(SIROCCO)
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(40.41)
// @Param longitude query number true "Longitude in decimal degrees" example(-3.70)
// @Param models query []string false "Model names" collectionFormat(multi)
// @Param points query integer false "Nearest points per model" minimum(1) example(4)
// @Success 200 {object} PointGroupsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /point-groups [get]
func (app *App) handleGetPointGroups(c *gin.Context) {
	var input PointGroupsInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := app.groupingRequest(input.Team, *input.Latitude, *input.Longitude, input.Models, input.Points)
	result, err := app.groupingService.Compute(req)
	if err != nil {
		app.respondComputeError(c, err)
		return
	}

	c.JSON(http.StatusOK, PointGroupsResponse{
		Team:          string(req.Team),
		Query:         req.Query,
		Points:        req.NPoints,
		Groups:        result.Groups,
		SkippedModels: result.SkippedModels,
	})
}

// groupingRequest applies the catalog and config defaults to raw inputs
func (app *App) groupingRequest(team string, lat, lon float64, models []string, points int) grouping.Request {
	if len(models) == 0 {
		models = catalog.DefaultModels
	}
	if points <= 0 {
		points = app.cfg.Export.DefaultPoints
	}
	return grouping.Request{
		Team:    catalog.Team(strings.ToUpper(team)),
		Query:   types.NewCoords(lat, lon),
		Models:  models,
		NPoints: points,
	}
}

func (app *App) respondComputeError(c *gin.Context, err error) {
	// Check if it's a validation error from business layer
	if errors.Is(err, catalog.ErrUnknownTeam) ||
		errors.Is(err, catalog.ErrInvalidCoordinate) ||
		errors.Is(err, selection.ErrInvalidPointCount) ||
		errors.Is(err, grouping.ErrNoValidModels) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Other errors are internal server errors
	app.logger.Error("failed to compute point groups", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute point groups"})
}
