package types

import "math"

// Coords is a geographic coordinate pair in decimal degrees.
type Coords struct {
	Latitude  float64 `json:"latitude" example:"40.41"`
	Longitude float64 `json:"longitude" example:"-3.70"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// IsFinite reports whether both components are finite numbers.
func (c Coords) IsFinite() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}
