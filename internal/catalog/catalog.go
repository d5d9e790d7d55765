package catalog

import (
	"errors"
	"fmt"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

// Team selects which model grids are available and which longitude
// convention applies to query coordinates.
type Team string

const (
	TeamSirocco Team = "SIROCCO"
	TeamNebbo   Team = "NEBBO"

	// TeamDefault is the legacy team-less profile kept for the oldest
	// callers. It is not advertised by Teams.
	TeamDefault Team = ""
)

var (
	ErrUnknownTeam       = errors.New("unknown team")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// GridProfile defines one model's regular lat/lon lattice. Ranges are
// half-open: an axis holds min + i*step for every integer i >= 0 with the
// value strictly below max.
type GridProfile struct {
	Model  string  `json:"model" example:"ECMWF"`
	LatMin float64 `json:"lat_min" example:"-90"`
	LatMax float64 `json:"lat_max" example:"90"`
	LonMin float64 `json:"lon_min" example:"-180"`
	LonMax float64 `json:"lon_max" example:"180"`
	Step   float64 `json:"step" example:"0.1"`
}

// Service supplies the per-team grid profiles and query validation.
type Service interface {
	// ProfilesFor returns the team's model grids. The returned map is
	// shared static data and must not be mutated.
	ProfilesFor(team Team) (ModelValues[GridProfile], error)
	// ModelsFor returns the team's model names in catalog order.
	ModelsFor(team Team) ([]string, error)
	// Teams lists the advertised team profiles.
	Teams() []Team
	// ValidateQuery checks a query coordinate against the team's
	// longitude convention. Latitude is always bounded to [-90, 90].
	ValidateQuery(team Team, query types.Coords) error
}

type catalogService struct {
	profiles map[Team]ModelValues[GridProfile]
	order    map[Team][]string
}

// NewCatalogService returns the static grid catalog. Profiles never
// change after construction, so the service is safe for concurrent use.
func NewCatalogService() Service {
	return &catalogService{
		profiles: teamProfiles,
		order:    teamModelOrder,
	}
}

func (s *catalogService) ProfilesFor(team Team) (ModelValues[GridProfile], error) {
	set, ok := s.profiles[team]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	return set, nil
}

func (s *catalogService) ModelsFor(team Team) ([]string, error) {
	order, ok := s.order[team]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	models := make([]string, len(order))
	copy(models, order)
	return models, nil
}

func (s *catalogService) Teams() []Team {
	return []Team{TeamSirocco, TeamNebbo}
}

func (s *catalogService) ValidateQuery(team Team, query types.Coords) error {
	if _, ok := s.profiles[team]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTeam, team)
	}
	if !query.IsFinite() {
		return fmt.Errorf("%w: latitude and longitude must be finite", ErrInvalidCoordinate)
	}
	if query.Latitude < -90 || query.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, query.Latitude)
	}
	switch team {
	case TeamSirocco:
		if query.Longitude < -180 || query.Longitude > 180 {
			return fmt.Errorf("%w: longitude %v out of range [-180, 180] for team %s", ErrInvalidCoordinate, query.Longitude, team)
		}
	case TeamNebbo:
		if query.Longitude < 0 || query.Longitude > 360 {
			return fmt.Errorf("%w: longitude %v out of range [0, 360] for team %s", ErrInvalidCoordinate, query.Longitude, team)
		}
	}
	return nil
}

// teamModelOrder fixes the catalog order per team, matching the order the
// request form historically listed the models.
var teamModelOrder = map[Team][]string{
	TeamDefault: {ModelECMWF, ModelGFS05, ModelGFS025, ModelUKMET, ModelNCEP, ModelDWD, ModelMeteoFrance, ModelCMCC, ModelJMA},
	TeamSirocco: {ModelECMWF, ModelGFS05, ModelGFS025, ModelUKMET, ModelNCEP, ModelDWD, ModelMeteoFrance, ModelCMCC, ModelJMA, ModelICON},
	TeamNebbo:   {ModelECMWF, ModelGFS05, ModelGFS025, ModelUKMET, ModelNCEP, ModelDWD, ModelMeteoFrance, ModelCMCC, ModelJMA, ModelECCC},
}

// modelSteps holds each model's native publication step in degrees.
var modelSteps = map[string]float64{
	ModelECMWF:       0.1,
	ModelGFS05:       0.5,
	ModelGFS025:      0.25,
	ModelUKMET:       0.2,
	ModelNCEP:        0.25,
	ModelDWD:         0.1,
	ModelMeteoFrance: 0.1,
	ModelCMCC:        0.25,
	ModelJMA:         0.2,
	ModelICON:        0.1,
	ModelECCC:        0.25,
}

var teamProfiles = buildTeamProfiles()

func buildTeamProfiles() map[Team]ModelValues[GridProfile] {
	profiles := make(map[Team]ModelValues[GridProfile], len(teamModelOrder))
	for team, models := range teamModelOrder {
		set := make(ModelValues[GridProfile], len(models))
		for _, model := range models {
			set[model] = profileFor(team, model)
		}
		profiles[team] = set
	}
	return profiles
}

func profileFor(team Team, model string) GridProfile {
	p := GridProfile{
		Model:  model,
		LatMin: -90,
		LatMax: 90,
		LonMin: -180,
		LonMax: 180,
		Step:   modelSteps[model],
	}
	if team == TeamNebbo {
		p.LonMin, p.LonMax = 0, 360
		if model == ModelECMWF {
			// ECMWF's 0-360 publication is a 1-degree grid on half-degree nodes.
			p.LonMin, p.LonMax, p.Step = 0.5, 359.5, 1.0
		}
	}
	return p
}
