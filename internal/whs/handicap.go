// Package whs implements the World Handicap System arithmetic shared by
// the mobile and web clients: course and playing handicap, per-hole
// stroke allocation, net scoring and Stableford points.
//
// All functions are pure. Rounding is half-away-from-zero everywhere an
// integer is produced (math.Round).
package whs

import (
	"math"
	"sort"
)

// standardSlope is the neutral slope rating in the WHS formula.
const standardSlope = 113

// TeeRating describes the tee a round is played from. StrokeIndex, when
// present, is a permutation of 1..N ranking hole difficulty (1 hardest);
// when nil, stroke allocation falls back to sequential hole order.
type TeeRating struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Slope       float64 `json:"slope" yaml:"slope"`
	Rating      float64 `json:"rating" yaml:"rating"`
	Par         int     `json:"par" yaml:"par"`
	StrokeIndex []int   `json:"strokeIndex,omitempty" yaml:"strokeIndex,omitempty"`
}

// Setup binds a player's handicap index to a tee and competition
// allowance for a round.
type Setup struct {
	HandicapIndex float64   `json:"handicapIndex" yaml:"handicapIndex"`
	AllowancePct  float64   `json:"allowancePct" yaml:"allowancePct"`
	Tee           TeeRating `json:"tee" yaml:"tee"`
}

// CourseHandicap scales a handicap index to a tee:
// round(index * slope/113 + (rating - par)).
func CourseHandicap(index float64, tee TeeRating) int {
	return int(math.Round(index*tee.Slope/standardSlope + (tee.Rating - float64(tee.Par))))
}

// PlayingHandicap applies a competition allowance percentage.
func PlayingHandicap(courseHandicap int, allowancePct float64) int {
	return int(math.Round(float64(courseHandicap) * allowancePct / 100))
}

// AllocateStrokes distributes playingHandicap strokes over holes holes.
//
// Positive handicaps hand strokes to the hardest holes first (stroke
// index ascending), wrapping for handicaps above the hole count so a
// 20-handicap on 18 holes gets a second stroke on index 1 and 2.
// Plus handicaps give strokes back (-1) starting at the easiest holes
// (stroke index descending).
//
// strokeIndex may be nil, in which case holes are ranked sequentially.
func AllocateStrokes(playingHandicap int, strokeIndex []int, holes int) []int {
	if holes <= 0 {
		return nil
	}
	rank := allocationRank(strokeIndex, holes)
	strokes := make([]int, holes)
	if playingHandicap == 0 {
		return strokes
	}

	count := playingHandicap
	sign := 1
	if count < 0 {
		count = -count
		sign = -1
	}
	base := count / holes
	rem := count % holes
	for i := 0; i < holes; i++ {
		s := base
		if sign > 0 {
			// Hardest holes (lowest rank) absorb the remainder.
			if rank[i] <= rem {
				s++
			}
		} else {
			// Easiest holes (highest rank) give back first.
			if rank[i] > holes-rem {
				s++
			}
		}
		strokes[i] = sign * s
	}
	return strokes
}

// allocationRank returns each hole's 1-based difficulty rank. A supplied
// stroke index is used as-is when it covers every hole; otherwise holes
// rank in card order.
func allocationRank(strokeIndex []int, holes int) []int {
	if len(strokeIndex) < holes {
		rank := make([]int, holes)
		for i := range rank {
			rank[i] = i + 1
		}
		return rank
	}

	// Rank by ascending stroke index, ties by card order, so malformed
	// (non-permutation) inputs still allocate deterministically.
	idx := make([]int, holes)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return strokeIndex[idx[a]] < strokeIndex[idx[b]]
	})
	rank := make([]int, holes)
	for pos, hole := range idx {
		rank[hole] = pos + 1
	}
	return rank
}

// NetStrokes is the hole's net score, floored at 1.
func NetStrokes(gross, strokesReceived int) int {
	net := gross - strokesReceived
	if net < 1 {
		return 1
	}
	return net
}

// StablefordPoints scores a hole: net par is worth 2 points, each stroke
// better adds one, net double bogey or worse scores 0.
func StablefordPoints(gross, par, strokesReceived int) int {
	points := 2 - ((gross - strokesReceived) - par)
	if points < 0 {
		return 0
	}
	return points
}
