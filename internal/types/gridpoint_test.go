package types

import (
	"math"
	"testing"
)

func TestGridPoint_Label(t *testing.T) {
	tests := []struct {
		name  string
		point GridPoint
		want  string
	}{
		{name: "two decimals", point: GridPoint{Lat: 40.4, Lon: -3.7}, want: "(40.40, -3.70)"},
		{name: "origin", point: GridPoint{}, want: "(0.00, 0.00)"},
		{name: "rounds to the nearest hundredth", point: GridPoint{Lat: 40.444, Lon: -3.699}, want: "(40.44, -3.70)"},
		{name: "lattice noise disappears", point: GridPoint{Lat: 40.400000000000006, Lon: -3.7000000000000005}, want: "(40.40, -3.70)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.point.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoords_IsFinite(t *testing.T) {
	tests := []struct {
		name   string
		coords Coords
		want   bool
	}{
		{name: "ordinary coordinates", coords: NewCoords(40.41, -3.70), want: true},
		{name: "zero is finite", coords: NewCoords(0, 0), want: true},
		{name: "NaN latitude", coords: NewCoords(math.NaN(), 0), want: false},
		{name: "infinite longitude", coords: NewCoords(0, math.Inf(-1)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coords.IsFinite(); got != tt.want {
				t.Errorf("IsFinite() = %v, want %v", got, tt.want)
			}
		})
	}
}
