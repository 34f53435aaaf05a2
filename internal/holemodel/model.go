// Package holemodel defines the course-geometry exchange document and its
// validating JSON codec.
//
// A hole model describes one hole's ground features (fairways, greens,
// bunkers) as polygon rings plus an optional pin position, bounded by a
// bounding box. Documents arrive from untrusted producers; Parse validates
// the whole document before returning anything, so code past the boundary
// never sees a partially-valid model.
package holemodel

import (
	"github.com/fairwaylabs/greenside/internal/geom"
)

// BoundingBox frames a hole model. Invariant: MinLat <= MaxLat and
// MinLon <= MaxLon.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// HoleModel is the parsed course-geometry document. Polygon rings contain
// at least three points each.
type HoleModel struct {
	ID       string         `json:"id"`
	BBox     BoundingBox    `json:"bbox"`
	Fairways [][]geom.Point `json:"fairways"`
	Greens   [][]geom.Point `json:"greens"`
	Bunkers  [][]geom.Point `json:"bunkers"`
	Pin      *geom.Point    `json:"pin,omitempty"`
}

// SimplifyModel returns a structurally new model with every feature ring
// reduced at the given tolerance. The input model is never mutated; rings
// the simplifier leaves alone are still re-sliced into the copy.
func SimplifyModel(m *HoleModel, tolerance float64) *HoleModel {
	out := &HoleModel{
		ID:       m.ID,
		BBox:     m.BBox,
		Fairways: simplifyRings(m.Fairways, tolerance),
		Greens:   simplifyRings(m.Greens, tolerance),
		Bunkers:  simplifyRings(m.Bunkers, tolerance),
	}
	if m.Pin != nil {
		pin := *m.Pin
		out.Pin = &pin
	}
	return out
}

func simplifyRings(rings [][]geom.Point, tolerance float64) [][]geom.Point {
	if rings == nil {
		return nil
	}
	out := make([][]geom.Point, len(rings))
	for i, ring := range rings {
		simplified := geom.Simplify(ring, tolerance)
		copied := make([]geom.Point, len(simplified))
		copy(copied, simplified)
		out[i] = copied
	}
	return out
}
