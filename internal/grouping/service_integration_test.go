//go:build integration

package grouping

import (
	"testing"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/catalog"
	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

// Enumerates the full global tenth-degree lattice (6.5M nodes per call),
// so it stays behind the integration tag.
func TestGroupingService_FullResolutionECMWF_Integration(t *testing.T) {
	svc := NewService(testLogger())

	t.Logf("Selecting over the global 0.1 degree ECMWF lattice...")
	result, err := svc.Compute(Request{
		Team:    catalog.TeamDefault,
		Query:   types.NewCoords(40.41, -3.70),
		Models:  []string{catalog.ModelECMWF},
		NPoints: 4,
	})
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if len(result.Groups) != 4 {
		t.Fatalf("groups = %d, want 4", len(result.Groups))
	}
	if got := result.Groups[0].Point.Label(); got != "(40.40, -3.70)" {
		t.Errorf("nearest = %s, want (40.40, -3.70)", got)
	}
}
