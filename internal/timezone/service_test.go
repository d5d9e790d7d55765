package timezone

import (
	"testing"

	"github.com/LuisTellezSirocco/GeoAtmoPlot/internal/types"
)

func TestService_Lookup(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "Madrid",
			latitude:  40.41,
			longitude: -3.70,
			want:      "Europe/Madrid",
		},
		{
			name:      "Madrid on the 0-360 convention",
			latitude:  40.41,
			longitude: 356.30,
			want:      "Europe/Madrid",
		},
		{
			name:      "London, UK",
			latitude:  51.5074,
			longitude: -0.1278,
			want:      "Europe/London",
		},
		{
			name:      "Tokyo, Japan",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Lookup(types.NewCoords(tt.latitude, tt.longitude))
			if err != nil {
				t.Errorf("Lookup() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}
