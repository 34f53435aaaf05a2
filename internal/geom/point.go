// Package geom provides the small planar-geometry primitives used by the
// course model: a JSON-friendly point type and polygon simplification.
//
// All functions are pure. Inputs are never mutated; any slice returned to
// a caller is either freshly allocated or, where documented, the input
// slice itself.
package geom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point is a 2D coordinate. For course geometry the axes are geographic
// (Lat/Lon); planar {x,y} documents are accepted on decode and mapped to
// the same fields (y -> Lat, x -> Lon).
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// pointWire mirrors the two accepted wire shapes.
type pointWire struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
	X   *float64 `json:"x"`
	Y   *float64 `json:"y"`
}

// UnmarshalJSON accepts {"lat":..,"lon":..} or {"x":..,"y":..}.
func (p *Point) UnmarshalJSON(data []byte) error {
	var w pointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.Lat != nil && w.Lon != nil:
		p.Lat, p.Lon = *w.Lat, *w.Lon
	case w.X != nil && w.Y != nil:
		p.Lat, p.Lon = *w.Y, *w.X
	default:
		return fmt.Errorf("point requires lat/lon or x/y")
	}
	return nil
}

// Valid reports whether both coordinates are finite numbers.
func (p Point) Valid() bool {
	return isFinite(p.Lat) && isFinite(p.Lon)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// distSq returns the squared euclidean distance between two points.
func distSq(a, b Point) float64 {
	dx := a.Lon - b.Lon
	dy := a.Lat - b.Lat
	return dx*dx + dy*dy
}

// perpDistSq returns the squared perpendicular distance from p to the
// segment (a, b). Degenerate segments (a == b) fall back to point distance.
func perpDistSq(p, a, b Point) float64 {
	dx := b.Lon - a.Lon
	dy := b.Lat - a.Lat
	segSq := dx*dx + dy*dy
	if segSq == 0 {
		return distSq(p, a)
	}
	// Cross product magnitude squared over segment length squared.
	cross := dx*(p.Lat-a.Lat) - dy*(p.Lon-a.Lon)
	return cross * cross / segSq
}
