package holemodel

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fairwaylabs/greenside/internal/geom"
)

// ValidationError reports a malformed hole-model document. Path names the
// offending location in the document ("bbox", "fairways[2]", ...).
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(path, message string) error {
	return &ValidationError{Path: path, Message: message}
}

// wireModel is the loosely-typed decode target. Pointer fields distinguish
// absent from zero so validation can name what is missing.
type wireModel struct {
	ID       *string         `json:"id"`
	BBox     json.RawMessage `json:"bbox"`
	Fairways json.RawMessage `json:"fairways"`
	Greens   json.RawMessage `json:"greens"`
	Bunkers  json.RawMessage `json:"bunkers"`
	Pin      json.RawMessage `json:"pin"`
}

type wireBBox struct {
	MinLat *float64 `json:"minLat"`
	MinLon *float64 `json:"minLon"`
	MaxLat *float64 `json:"maxLat"`
	MaxLon *float64 `json:"maxLon"`
}

// Parse decodes and validates a hole-model document. Validation is
// all-or-nothing: either a fully valid model is returned or a
// *ValidationError naming the offending path, never a partial result.
func Parse(data []byte) (*HoleModel, error) {
	var w wireModel
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, invalid("", fmt.Sprintf("malformed JSON: %v", err))
	}
	return validate(&w)
}

// ParseString is Parse for callers holding the document as a string.
func ParseString(data string) (*HoleModel, error) {
	return Parse([]byte(data))
}

// Serialize encodes a model as JSON. Numeric fields round-trip losslessly
// through Parse.
func Serialize(m *HoleModel) ([]byte, error) {
	return json.Marshal(m)
}

func validate(w *wireModel) (*HoleModel, error) {
	if w.ID == nil || *w.ID == "" {
		return nil, invalid("id", "missing or empty")
	}
	bbox, err := validateBBox(w.BBox)
	if err != nil {
		return nil, err
	}
	m := &HoleModel{ID: *w.ID, BBox: bbox}
	if m.Fairways, err = validateRings("fairways", w.Fairways); err != nil {
		return nil, err
	}
	if m.Greens, err = validateRings("greens", w.Greens); err != nil {
		return nil, err
	}
	if m.Bunkers, err = validateRings("bunkers", w.Bunkers); err != nil {
		return nil, err
	}
	if len(w.Pin) > 0 && string(w.Pin) != "null" {
		var pin geom.Point
		if err := json.Unmarshal(w.Pin, &pin); err != nil || !pin.Valid() {
			return nil, invalid("pin", "invalid point")
		}
		m.Pin = &pin
	}
	return m, nil
}

func validateBBox(raw json.RawMessage) (BoundingBox, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return BoundingBox{}, invalid("bbox", "missing")
	}
	var w wireBBox
	if err := json.Unmarshal(raw, &w); err != nil {
		return BoundingBox{}, invalid("bbox", "not an object")
	}
	if w.MinLat == nil || w.MinLon == nil || w.MaxLat == nil || w.MaxLon == nil {
		return BoundingBox{}, invalid("bbox", "missing coordinate")
	}
	b := BoundingBox{MinLat: *w.MinLat, MinLon: *w.MinLon, MaxLat: *w.MaxLat, MaxLon: *w.MaxLon}
	for _, v := range []float64{b.MinLat, b.MinLon, b.MaxLat, b.MaxLon} {
		if !(geom.Point{Lat: v, Lon: v}).Valid() {
			return BoundingBox{}, invalid("bbox", "non-finite coordinate")
		}
	}
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return BoundingBox{}, invalid("bbox", "min exceeds max")
	}
	return b, nil
}

func validateRings(field string, raw json.RawMessage) ([][]geom.Point, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid(field, "not an array")
	}
	rings := make([][]geom.Point, len(items))
	for i, r := range items {
		path := fmt.Sprintf("%s[%d]", field, i)
		var ring []geom.Point
		if err := json.Unmarshal(r, &ring); err != nil {
			return nil, invalid(path, "invalid polygon")
		}
		if len(ring) < 3 {
			return nil, invalid(path, "invalid polygon")
		}
		for _, p := range ring {
			if !p.Valid() {
				return nil, invalid(path, "invalid polygon")
			}
		}
		rings[i] = ring
	}
	return rings, nil
}
