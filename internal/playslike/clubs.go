package playslike

// Club is one entry in a player's bag with its carry profile.
type Club struct {
	ID string `json:"id" yaml:"id"`
	// CarryM is the baseline or auto-calibrated carry distance in meters.
	CarryM float64 `json:"carryM" yaml:"carryM"`
	// ManualCarryM is a player-entered carry, honored only when Source is
	// "manual".
	ManualCarryM float64 `json:"manualCarryM,omitempty" yaml:"manualCarryM,omitempty"`
	// Source is "auto" or "manual".
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// EffectiveCarry returns the carry the suggestion logic should trust:
// the manual value when the player pinned one, the calibrated value
// otherwise.
func (c Club) EffectiveCarry() float64 {
	if c.Source == "manual" && c.ManualCarryM > 0 {
		return c.ManualCarryM
	}
	return c.CarryM
}

// Recommend picks the club for a raw target distance from a carry map.
// order lists club IDs from shortest to longest carry priority; IDs
// missing from carries are skipped. The shortest club reaching the target
// wins; if none reaches it, the longest-carrying club is returned. Only
// an empty profile yields "".
func Recommend(targetM float64, carries map[string]float64, order []string) string {
	best := ""
	bestCarry := 0.0
	longest := ""
	longestCarry := 0.0
	for _, id := range order {
		carry, ok := carries[id]
		if !ok {
			continue
		}
		if carry >= longestCarry || longest == "" {
			longest, longestCarry = id, carry
		}
		if carry >= targetM && (best == "" || carry < bestCarry) {
			best, bestCarry = id, carry
		}
	}
	if best != "" {
		return best
	}
	return longest
}

// SuggestClub picks the club whose effective carry covers the plays-like
// adjusted target under the given conditions. Falls back to the
// longest-carrying club when no club reaches the adjusted target. The
// second return is false only for an empty bag.
func SuggestClub(clubs []Club, targetM float64, cond Conditions, cfg Config) (Club, bool) {
	if len(clubs) == 0 {
		return Club{}, false
	}
	adjusted := Compute(targetM, cond, cfg).DistanceEff

	var best, longest *Club
	for i := range clubs {
		c := &clubs[i]
		carry := c.EffectiveCarry()
		if longest == nil || carry > longest.EffectiveCarry() {
			longest = c
		}
		if carry >= adjusted && (best == nil || carry < best.EffectiveCarry()) {
			best = c
		}
	}
	if best != nil {
		return *best, true
	}
	return *longest, true
}
