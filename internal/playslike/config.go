// Package playslike computes the effective ("plays-like") distance of an
// aerial golf shot under slope, wind, temperature and altitude, plus club
// recommendation heuristics built on top of it.
//
// Every function is pure and deterministic. Degenerate inputs (NaN/Inf
// wind, temperature, altitude) degrade to a zero adjustment for that
// component rather than poisoning the result.
package playslike

// Config controls which adjustments apply and their coefficients.
// Slope and wind are always on; temperature and altitude are opt-in.
type Config struct {
	// TemperatureEnabled gates the air-temperature adjustment.
	TemperatureEnabled bool
	// AltitudeEnabled gates the elevation-above-sea-level adjustment.
	AltitudeEnabled bool
	// WindCapPct caps the wind adjustment at this percentage of the base
	// distance, in either direction.
	WindCapPct float64
	// TempCoeffPerDegC is meters of adjustment per degree Celsius away
	// from TempRefC, normalized to a 150 m shot.
	TempCoeffPerDegC float64
	// TempRefC is the reference temperature producing zero adjustment.
	TempRefC float64
	// AltCoeffPer1000m is the percentage of base distance gained per
	// 1000 m of elevation.
	AltCoeffPer1000m float64
}

// Overrides carries optional per-field overrides for Merge. Nil fields
// keep the default.
type Overrides struct {
	TemperatureEnabled *bool
	AltitudeEnabled    *bool
	WindCapPct         *float64
	TempCoeffPerDegC   *float64
	TempRefC           *float64
	AltCoeffPer1000m   *float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TemperatureEnabled: false,
		AltitudeEnabled:    false,
		WindCapPct:         20,
		TempCoeffPerDegC:   0.27,
		TempRefC:           20,
		AltCoeffPer1000m:   6.5,
	}
}

// Merge applies overrides on top of the defaults. This is the single
// entry point for building a non-default configuration.
func Merge(o Overrides) Config {
	cfg := DefaultConfig()
	if o.TemperatureEnabled != nil {
		cfg.TemperatureEnabled = *o.TemperatureEnabled
	}
	if o.AltitudeEnabled != nil {
		cfg.AltitudeEnabled = *o.AltitudeEnabled
	}
	if o.WindCapPct != nil {
		cfg.WindCapPct = *o.WindCapPct
	}
	if o.TempCoeffPerDegC != nil {
		cfg.TempCoeffPerDegC = *o.TempCoeffPerDegC
	}
	if o.TempRefC != nil {
		cfg.TempRefC = *o.TempRefC
	}
	if o.AltCoeffPer1000m != nil {
		cfg.AltCoeffPer1000m = *o.AltCoeffPer1000m
	}
	return cfg
}
