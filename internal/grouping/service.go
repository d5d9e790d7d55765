// Package grouping runs per-model nearest-neighbor selection and merges
// the results into cross-model point groups.
package grouping

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/selection"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

var ErrNoValidModels = errors.New("no valid models requested")

// Request describes one grouping computation.
type Request struct {
	// Team picks the grid catalog. The zero value selects the legacy
	// team-less profile.
	Team catalog.Team
	// Query is the coordinate the grid nodes are ranked against.
	Query types.Coords
	// Models restricts the computation to these catalog models.
	// Duplicates are ignored, unknown names are skipped and reported.
	Models []string
	// NPoints is the number of nearest nodes taken per model.
	NPoints int
}

// Result carries the merged groups plus the raw per-model selections.
type Result struct {
	// Groups holds each distinct grid point with the models that
	// selected it, in first-seen order.
	Groups []types.PointGroup
	// Selections preserves the per-model ranked points.
	Selections map[string][]types.GridPoint
	// SkippedModels lists requested names absent from the team catalog.
	SkippedModels []string
}

// Service computes cross-model point groups.
type Service interface {
	Compute(req Request) (*Result, error)
	// ComputeLegacy keeps the old two-flag entry point alive for
	// existing callers. It maps ecmwf/gfs to the matching model names
	// on the team-less catalog.
	ComputeLegacy(query types.Coords, ecmwf, gfs bool, nPoints int) (*Result, error)
}

type groupingService struct {
	catalog  catalog.Service
	selector selection.Selector
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) Service {
	return NewServiceWith(catalog.NewCatalogService(), selection.NewSelector(logger), logger)
}

// NewServiceWith wires explicit dependencies, mainly for tests.
func NewServiceWith(cat catalog.Service, sel selection.Selector, logger *slog.Logger) Service {
	return &groupingService{
		catalog:  cat,
		selector: sel,
		logger:   logger.With("component", "grouping"),
	}
}

func (s *groupingService) Compute(req Request) (*Result, error) {
	if err := s.catalog.ValidateQuery(req.Team, req.Query); err != nil {
		return nil, err
	}
	profiles, err := s.catalog.ProfilesFor(req.Team)
	if err != nil {
		return nil, err
	}

	models := dedupe(req.Models)
	result := &Result{
		Selections: make(map[string][]types.GridPoint, len(models)),
	}

	// groupIndex maps a grid point to its slot in Groups so each model's
	// hit list appends in encounter order.
	groupIndex := make(map[types.GridPoint]int)
	valid := 0
	for _, model := range models {
		profile, ok := profiles.GetForModel(model)
		if !ok {
			s.logger.Warn("skipping unknown model", "model", model, "team", string(req.Team))
			result.SkippedModels = append(result.SkippedModels, model)
			continue
		}
		points, err := s.selector.Select(profile, req.Query, req.NPoints)
		if err != nil {
			return nil, fmt.Errorf("selecting points for %s: %w", model, err)
		}
		valid++
		result.Selections[model] = points
		for _, p := range points {
			idx, ok := groupIndex[p]
			if !ok {
				idx = len(result.Groups)
				groupIndex[p] = idx
				result.Groups = append(result.Groups, types.PointGroup{Point: p})
			}
			result.Groups[idx].Models = append(result.Groups[idx].Models, model)
		}
	}
	if valid == 0 {
		return nil, ErrNoValidModels
	}

	s.logger.Info("computed point groups",
		"team", string(req.Team),
		"models", valid,
		"skipped", len(result.SkippedModels),
		"groups", len(result.Groups),
	)
	return result, nil
}

func (s *groupingService) ComputeLegacy(query types.Coords, ecmwf, gfs bool, nPoints int) (*Result, error) {
	var models []string
	if ecmwf {
		models = append(models, catalog.ModelECMWF)
	}
	if gfs {
		models = append(models, catalog.ModelGFS05)
	}
	return s.Compute(Request{
		Team:    catalog.TeamDefault,
		Query:   query,
		Models:  models,
		NPoints: nPoints,
	})
}

func dedupe(models []string) []string {
	seen := make(map[string]struct{}, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}
