// Package selection finds the grid nodes closest to a query coordinate
// on a regular lat/lon lattice.
package selection

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

var (
	ErrInvalidPointCount = errors.New("invalid point count")
	ErrEmptyGrid         = errors.New("empty grid")
)

// Selector ranks a grid profile's nodes by distance to a query point.
type Selector interface {
	// Select returns the n grid nodes nearest to query, ordered by
	// ascending distance. Fewer than n nodes are returned when the grid
	// is smaller than n.
	Select(profile catalog.GridProfile, query types.Coords, n int) ([]types.GridPoint, error)
}

type selector struct {
	logger *slog.Logger
}

func NewSelector(logger *slog.Logger) Selector {
	return &selector{logger: logger.With("component", "selection")}
}

type candidate struct {
	point types.GridPoint
	dist  float64
}

func (s *selector) Select(profile catalog.GridProfile, query types.Coords, n int) ([]types.GridPoint, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPointCount, n)
	}

	lats := axisValues(profile.LatMin, profile.LatMax, profile.Step)
	lons := axisValues(profile.LonMin, profile.LonMax, profile.Step)
	if len(lats) == 0 || len(lons) == 0 {
		return nil, fmt.Errorf("%w: model %s", ErrEmptyGrid, profile.Model)
	}

	candidates := make([]candidate, 0, len(lats)*len(lons))
	for _, lat := range lats {
		for _, lon := range lons {
			dlat := lat - query.Latitude
			dlon := lon - query.Longitude
			candidates = append(candidates, candidate{
				point: types.GridPoint{Lat: lat, Lon: lon},
				dist:  math.Sqrt(dlat*dlat + dlon*dlon),
			})
		}
	}

	// Stable sort keeps row-major enumeration order among equidistant
	// nodes, so reruns always pick the same points.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	points := make([]types.GridPoint, n)
	for i := range points {
		points[i] = candidates[i].point
	}

	s.logger.Debug("selected grid points",
		"model", profile.Model,
		"grid_size", len(candidates),
		"requested", n,
		"nearest", points[0].Label(),
	)
	return points, nil
}

// axisValues enumerates min + i*step for 0 <= i < ceil((max-min)/step).
// The count is computed in float64 first so axes whose span is not an
// exact step multiple keep their historical length.
func axisValues(min, max, step float64) []float64 {
	if step <= 0 || max <= min {
		return nil
	}
	count := int(math.Ceil((max - min) / step))
	values := make([]float64, count)
	for i := range values {
		values[i] = min + float64(i)*step
	}
	return values
}
