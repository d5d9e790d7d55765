package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

func containsModel(models []string, want string) bool {
	for _, m := range models {
		if m == want {
			return true
		}
	}
	return false
}

func TestCatalogService_Teams(t *testing.T) {
	got := NewCatalogService().Teams()
	if len(got) != 2 || got[0] != TeamSirocco || got[1] != TeamNebbo {
		t.Errorf("Teams() = %v, want [SIROCCO NEBBO]", got)
	}
}

func TestCatalogService_ModelsFor(t *testing.T) {
	svc := NewCatalogService()

	tests := []struct {
		name        string
		team        Team
		wantLen     int
		wantHas     []string
		wantMissing []string
		wantErr     bool
	}{
		{
			name:        "sirocco carries icon",
			team:        TeamSirocco,
			wantLen:     10,
			wantHas:     []string{ModelECMWF, ModelJMA, ModelICON},
			wantMissing: []string{ModelECCC},
		},
		{
			name:        "nebbo carries eccc",
			team:        TeamNebbo,
			wantLen:     10,
			wantHas:     []string{ModelECMWF, ModelJMA, ModelECCC},
			wantMissing: []string{ModelICON},
		},
		{
			name:        "legacy catalog lists the base nine",
			team:        TeamDefault,
			wantLen:     9,
			wantHas:     []string{ModelECMWF, ModelGFS05, ModelGFS025, ModelUKMET, ModelNCEP, ModelDWD, ModelMeteoFrance, ModelCMCC, ModelJMA},
			wantMissing: []string{ModelICON, ModelECCC},
		},
		{
			name:    "unknown team",
			team:    Team("JUPITER"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ModelsFor(tt.team)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTeam) {
					t.Errorf("error = %v, want %v", err, ErrUnknownTeam)
				}
				return
			}
			if err != nil {
				t.Fatalf("ModelsFor() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			for _, m := range tt.wantHas {
				if !containsModel(got, m) {
					t.Errorf("models missing %s", m)
				}
			}
			for _, m := range tt.wantMissing {
				if containsModel(got, m) {
					t.Errorf("models unexpectedly contain %s", m)
				}
			}
		})
	}
}

func TestCatalogService_ProfilesFor(t *testing.T) {
	svc := NewCatalogService()

	tests := []struct {
		name     string
		team     Team
		model    string
		wantStep float64
		wantLon  [2]float64
	}{
		{name: "sirocco ECMWF", team: TeamSirocco, model: ModelECMWF, wantStep: 0.1, wantLon: [2]float64{-180, 180}},
		{name: "sirocco ICON", team: TeamSirocco, model: ModelICON, wantStep: 0.1, wantLon: [2]float64{-180, 180}},
		{name: "legacy UKMET", team: TeamDefault, model: ModelUKMET, wantStep: 0.2, wantLon: [2]float64{-180, 180}},
		{name: "nebbo shifts to 0-360", team: TeamNebbo, model: ModelGFS05, wantStep: 0.5, wantLon: [2]float64{0, 360}},
		{name: "nebbo ECCC", team: TeamNebbo, model: ModelECCC, wantStep: 0.25, wantLon: [2]float64{0, 360}},
		{name: "nebbo ECMWF is one degree on half-degree nodes", team: TeamNebbo, model: ModelECMWF, wantStep: 1.0, wantLon: [2]float64{0.5, 359.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles, err := svc.ProfilesFor(tt.team)
			if err != nil {
				t.Fatalf("ProfilesFor() error = %v", err)
			}
			profile, ok := profiles.GetForModel(tt.model)
			if !ok {
				t.Fatalf("no profile for %s", tt.model)
			}
			if profile.Step != tt.wantStep {
				t.Errorf("Step = %v, want %v", profile.Step, tt.wantStep)
			}
			if profile.LonMin != tt.wantLon[0] || profile.LonMax != tt.wantLon[1] {
				t.Errorf("lon range = (%v, %v), want (%v, %v)", profile.LonMin, profile.LonMax, tt.wantLon[0], tt.wantLon[1])
			}
			if profile.LatMin != -90 || profile.LatMax != 90 {
				t.Errorf("lat range = (%v, %v), want (-90, 90)", profile.LatMin, profile.LatMax)
			}
		})
	}

	if _, err := svc.ProfilesFor(Team("JUPITER")); !errors.Is(err, ErrUnknownTeam) {
		t.Errorf("error = %v, want %v", err, ErrUnknownTeam)
	}
}

func TestCatalogService_ValidateQuery(t *testing.T) {
	svc := NewCatalogService()

	tests := []struct {
		name      string
		team      Team
		lat       float64
		lon       float64
		wantErrIs error
	}{
		{name: "sirocco accepts Madrid", team: TeamSirocco, lat: 40.41, lon: -3.70},
		{name: "sirocco accepts the latitude boundary", team: TeamSirocco, lat: -90, lon: 0},
		{name: "sirocco accepts the longitude boundaries", team: TeamSirocco, lat: 0, lon: 180},
		{name: "sirocco rejects 0-360 longitudes", team: TeamSirocco, lat: 40.41, lon: 356.3, wantErrIs: ErrInvalidCoordinate},
		{name: "sirocco rejects out-of-range latitude", team: TeamSirocco, lat: 90.01, lon: 0, wantErrIs: ErrInvalidCoordinate},
		{name: "nebbo accepts 0-360 longitudes", team: TeamNebbo, lat: 40.41, lon: 356.3},
		{name: "nebbo accepts the longitude boundary", team: TeamNebbo, lat: 0, lon: 360},
		{name: "nebbo rejects negative longitudes", team: TeamNebbo, lat: 40.41, lon: -3.70, wantErrIs: ErrInvalidCoordinate},
		{name: "legacy leaves longitude unrestricted", team: TeamDefault, lat: 0, lon: 400},
		{name: "legacy still bounds latitude", team: TeamDefault, lat: 91, lon: 0, wantErrIs: ErrInvalidCoordinate},
		{name: "NaN latitude", team: TeamSirocco, lat: math.NaN(), lon: 0, wantErrIs: ErrInvalidCoordinate},
		{name: "infinite longitude", team: TeamNebbo, lat: 0, lon: math.Inf(1), wantErrIs: ErrInvalidCoordinate},
		{name: "unknown team", team: Team("JUPITER"), lat: 0, lon: 0, wantErrIs: ErrUnknownTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateQuery(tt.team, types.NewCoords(tt.lat, tt.lon))
			if tt.wantErrIs == nil {
				if err != nil {
					t.Errorf("ValidateQuery() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErrIs) {
				t.Errorf("error = %v, want %v", err, tt.wantErrIs)
			}
		})
	}
}

func TestColors(t *testing.T) {
	// Every cataloged model needs a marker color.
	for team, models := range teamModelOrder {
		for _, model := range models {
			if _, ok := ColorFor(model); !ok {
				t.Errorf("no color for %s (team %q)", model, team)
			}
		}
	}

	if got := MultiModelColor.Hex(); got != "#800080" {
		t.Errorf("MultiModelColor.Hex() = %s, want #800080", got)
	}
	if got := ObjectiveColor.Hex(); got != "#000000" {
		t.Errorf("ObjectiveColor.Hex() = %s, want #000000", got)
	}
}

func TestGroupColor(t *testing.T) {
	tests := []struct {
		name   string
		models []string
		want   Color
	}{
		{name: "single model keeps its color", models: []string{ModelUKMET}, want: Color{Name: "blue", B: 255}},
		{name: "shared points turn purple", models: []string{ModelECMWF, ModelUKMET}, want: MultiModelColor},
		{name: "unknown model falls back to purple", models: []string{"BOGUS"}, want: MultiModelColor},
		{name: "empty group falls back to purple", models: nil, want: MultiModelColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GroupColor(tt.models); got != tt.want {
				t.Errorf("GroupColor(%v) = %v, want %v", tt.models, got, tt.want)
			}
		})
	}
}
