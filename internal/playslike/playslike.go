package playslike

import "math"

// msToMph converts wind speed from meters per second to miles per hour,
// the unit the wind coefficients are calibrated in.
const msToMph = 2.23694

// refDistanceM is the shot length the temperature coefficient is
// normalized against.
const refDistanceM = 150

// Conditions describes the shot environment. WindMS is the head/tail
// component of the wind in m/s, positive into the player's face. SlopeM
// is the elevation change to the target in meters, positive uphill.
type Conditions struct {
	SlopeM    float64
	WindMS    float64
	TempC     float64
	AltitudeM float64
}

// Components itemizes each adjustment in meters.
type Components struct {
	SlopeM float64 `json:"slopeM"`
	WindM  float64 `json:"windM"`
	TempM  float64 `json:"tempM"`
	AltM   float64 `json:"altM"`
}

// Result is the effective distance with its breakdown.
type Result struct {
	DistanceEff float64    `json:"distanceEff"`
	Components  Components `json:"components"`
}

// Compute returns the plays-like distance for a shot of distanceM meters.
// Adjustments sum linearly: base + slope + wind (+ temp) (+ altitude).
func Compute(distanceM float64, cond Conditions, cfg Config) Result {
	c := Components{
		SlopeM: sanitize(cond.SlopeM),
		WindM:  windAdjust(distanceM, cond.WindMS, cfg),
	}
	if cfg.TemperatureEnabled {
		c.TempM = tempAdjust(distanceM, cond.TempC, cfg)
	}
	if cfg.AltitudeEnabled {
		c.AltM = altitudeAdjust(distanceM, cond.AltitudeM, cfg)
	}
	return Result{
		DistanceEff: distanceM + c.SlopeM + c.WindM + c.TempM + c.AltM,
		Components:  c,
	}
}

// windAdjust applies the asymmetric wind model: headwind costs 1% of base
// distance per mph, tailwind gives back only half that. Both directions
// are capped at WindCapPct of the base distance.
func windAdjust(distanceM, windMS float64, cfg Config) float64 {
	if !finite(windMS) || windMS == 0 {
		return 0
	}
	mph := windMS * msToMph
	var frac float64
	if mph > 0 {
		frac = 0.01 * mph
	} else {
		frac = 0.005 * mph
	}
	cap := cfg.WindCapPct / 100
	if frac > cap {
		frac = cap
	} else if frac < -cap {
		frac = -cap
	}
	return distanceM * frac
}

// TempAdjust returns the temperature component in meters for a shot of
// distanceM at tempC, using the default tuning. Colder air plays longer.
func TempAdjust(distanceM, tempC float64) float64 {
	return tempAdjust(distanceM, tempC, DefaultConfig())
}

func tempAdjust(distanceM, tempC float64, cfg Config) float64 {
	if !finite(tempC) {
		return 0
	}
	return (cfg.TempRefC - tempC) * cfg.TempCoeffPerDegC * (distanceM / refDistanceM)
}

// AltitudeAdjust returns the altitude component in meters for a shot of
// distanceM at altitudeM above sea level, using the default tuning.
func AltitudeAdjust(distanceM, altitudeM float64) float64 {
	return altitudeAdjust(distanceM, altitudeM, DefaultConfig())
}

func altitudeAdjust(distanceM, altitudeM float64, cfg Config) float64 {
	if !finite(altitudeM) {
		return 0
	}
	return distanceM * (cfg.AltCoeffPer1000m / 100) * (altitudeM / 1000)
}

// sanitize maps NaN/Inf environmental readings to zero effect.
func sanitize(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
