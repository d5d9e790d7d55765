package types

import "fmt"

// GridPoint is a single node of a model's regular lat/lon lattice.
// Points are values: equality is exact float64 equality on both
// components, so points computed under different grid origins or steps
// must not be compared without tolerance.
type GridPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Label renders the point the way exports display it, two decimals.
func (p GridPoint) Label() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.Lat, p.Lon)
}

// PointGroup is a distinct grid point together with the models that
// selected it as one of their nearest neighbors. Every selected point
// belongs to exactly one group.
type PointGroup struct {
	Point  GridPoint `json:"point"`
	Models []string  `json:"models"`
}
