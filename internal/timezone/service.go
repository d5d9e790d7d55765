// Package timezone resolves the IANA zone of a query coordinate so
// exports can annotate where the selected grid points live.
package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

// Service looks up the IANA timezone name for a coordinate.
type Service interface {
	// Lookup returns a zone name like "Europe/Madrid". Longitudes on
	// the 0-360 convention are accepted.
	Lookup(query types.Coords) (string, error)
}

type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	once     sync.Once
)

// NewService creates or returns the singleton lookup service. The tzf
// finder loads its polygon data into memory (~50MB), so it is built once
// per process.
func NewService() (Service, error) {
	var err error
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			err = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func (s *service) Lookup(query types.Coords) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// tzf wants longitudes in [-180, 180]; fold the 0-360 convention
	// first so NEBBO queries resolve too.
	lon := query.Longitude
	if lon > 180 {
		lon -= 360
	}
	zone := s.finder.GetTimezoneName(lon, query.Latitude)
	if zone == "" {
		return "", fmt.Errorf("could not determine timezone for lat=%f, lon=%f", query.Latitude, query.Longitude)
	}

	return zone, nil
}
