package whs

// HoleScore is one hole's raw input to the round calculator.
type HoleScore struct {
	Hole  int `json:"hole" yaml:"hole"`
	Par   int `json:"par" yaml:"par"`
	Gross int `json:"gross" yaml:"gross"`
}

// HoleResult is one hole's computed net outcome.
type HoleResult struct {
	Hole   int `json:"hole"`
	Gross  int `json:"gross"`
	Net    int `json:"net"`
	Points int `json:"points"`
}

// NetRoundResult is the full-round output of ComputeNetForRound.
// Recomputed per request, never stored.
type NetRoundResult struct {
	CourseHandicap  int          `json:"courseHandicap"`
	PlayingHandicap int          `json:"playingHandicap"`
	StrokesPerHole  []int        `json:"strokesPerHole"`
	Holes           []HoleResult `json:"holes"`
	TotalNet        int          `json:"totalNet"`
	TotalPoints     int          `json:"totalPoints"`
}

// ComputeNetForRound composes the handicap pipeline over a full round:
// course handicap, playing handicap, per-hole stroke allocation, then
// net and Stableford scoring per hole. Works for 9- and 18-hole rounds,
// with or without a stroke index on the tee.
func ComputeNetForRound(setup Setup, holes []HoleScore) NetRoundResult {
	course := CourseHandicap(setup.HandicapIndex, setup.Tee)
	playing := PlayingHandicap(course, setup.AllowancePct)
	strokes := AllocateStrokes(playing, setup.Tee.StrokeIndex, len(holes))

	result := NetRoundResult{
		CourseHandicap:  course,
		PlayingHandicap: playing,
		StrokesPerHole:  strokes,
		Holes:           make([]HoleResult, len(holes)),
	}
	for i, h := range holes {
		net := NetStrokes(h.Gross, strokes[i])
		points := StablefordPoints(h.Gross, h.Par, strokes[i])
		result.Holes[i] = HoleResult{Hole: h.Hole, Gross: h.Gross, Net: net, Points: points}
		result.TotalNet += net
		result.TotalPoints += points
	}
	return result
}
