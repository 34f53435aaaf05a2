// Package leaderboard aggregates raw per-hole score rows into a
// deterministically ordered, format-aware event leaderboard.
//
// Aggregation is tolerant of sparse feeds: rows may omit net, stableford,
// par and playing handicap, and the output flags whether net totals are
// authoritative from the data or need a handicap-based fallback.
// Input rows are never mutated.
package leaderboard

import (
	"math"
	"time"
)

// Format selects the scoring discipline a leaderboard is ranked by.
type Format string

const (
	// FormatStroke ranks by total net strokes ascending.
	FormatStroke Format = "stroke"
	// FormatStableford ranks by total points descending.
	FormatStableford Format = "stableford"
)

// ScoreRow is one hole's raw result for one player in one event, exactly
// as the backend feed delivers it. Optional fields are pointers so absent
// and zero stay distinguishable.
type ScoreRow struct {
	EventID         string   `json:"event_id"`
	UserID          string   `json:"user_id"`
	HoleNo          int      `json:"hole_no"`
	Gross           float64  `json:"gross"`
	Net             *float64 `json:"net,omitempty"`
	ToPar           float64  `json:"to_par"`
	Stableford      *float64 `json:"stableford,omitempty"`
	Par             *int     `json:"par,omitempty"`
	PlayingHandicap *int     `json:"playing_handicap,omitempty"`
	TS              string   `json:"ts"`
}

// timestamp parses the row timestamp; malformed timestamps sort last.
func (r ScoreRow) timestamp() (time.Time, bool) {
	if r.TS == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, r.TS)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// explicitNet reports the row's net value when it is present, finite and
// distinct from gross - the only case in which row net is authoritative.
func (r ScoreRow) explicitNet() (float64, bool) {
	if r.Net == nil || math.IsNaN(*r.Net) || math.IsInf(*r.Net, 0) {
		return 0, false
	}
	if *r.Net == r.Gross {
		return *r.Net, false
	}
	return *r.Net, true
}

// PlayerAggregate is the per-player projection produced by Aggregate.
type PlayerAggregate struct {
	UserID          string
	Gross           float64
	Net             float64
	Holes           int
	Stableford      float64
	HasStableford   bool
	PlayingHandicap *int
	// NetFromRows is true the moment any row carries an explicit net
	// distinct from its gross; false means net needs a handicap fallback.
	NetFromRows bool

	// firstUnderParAt is the earliest row timestamp with to_par < 0.
	firstUnderParAt time.Time
	hasUnderPar     bool
	// lastRowAt is the latest row timestamp seen for the player.
	lastRowAt    time.Time
	hasTimestamp bool
	// handicapAt tracks the timestamp of the playing handicap carried.
	handicapAt time.Time
}

// Aggregate groups rows by user and sums gross, net, stableford and hole
// counts. Sparse data never fails aggregation; missing values simply do
// not contribute. The returned map is freshly allocated.
func Aggregate(rows []ScoreRow) map[string]*PlayerAggregate {
	out := make(map[string]*PlayerAggregate)
	for _, row := range rows {
		agg := out[row.UserID]
		if agg == nil {
			agg = &PlayerAggregate{UserID: row.UserID}
			out[row.UserID] = agg
		}
		agg.Holes++
		agg.Gross += row.Gross

		if net, explicit := row.explicitNet(); explicit {
			agg.Net += net
			agg.NetFromRows = true
		} else {
			// Row net absent or equal to gross: gross stands in so the
			// running net total stays comparable either way.
			agg.Net += row.Gross
		}

		if row.Stableford != nil && !math.IsNaN(*row.Stableford) {
			agg.Stableford += *row.Stableford
			agg.HasStableford = true
		}

		ts, ok := row.timestamp()
		if ok {
			if !agg.hasTimestamp || ts.After(agg.lastRowAt) {
				agg.lastRowAt = ts
			}
			agg.hasTimestamp = true
			if row.ToPar < 0 && (!agg.hasUnderPar || ts.Before(agg.firstUnderParAt)) {
				agg.firstUnderParAt = ts
				agg.hasUnderPar = true
			}
		}
		if row.PlayingHandicap != nil {
			// Most recent wins; untimestamped rows only fill an empty slot.
			replace := agg.PlayingHandicap == nil ||
				(ok && !ts.Before(agg.handicapAt))
			if replace {
				hcp := *row.PlayingHandicap
				agg.PlayingHandicap = &hcp
				if ok {
					agg.handicapAt = ts
				}
			}
		}
	}
	return out
}
