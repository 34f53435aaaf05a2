package playslike

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_SlopeIsOneToOne(t *testing.T) {
	got := Compute(150, Conditions{SlopeM: 5}, DefaultConfig())

	assert.InDelta(t, 155, got.DistanceEff, 0.001)
	assert.InDelta(t, 5, got.Components.SlopeM, 0.001)
	assert.Zero(t, got.Components.WindM)

	down := Compute(150, Conditions{SlopeM: -5}, DefaultConfig())
	assert.InDelta(t, 145, down.DistanceEff, 0.001)
}

func TestCompute_WindAsymmetry(t *testing.T) {
	head := Compute(150, Conditions{WindMS: 5}, DefaultConfig())
	assert.InDelta(t, 166.8, head.DistanceEff, 0.1, "headwind +1%%/mph")

	tail := Compute(150, Conditions{WindMS: -5}, DefaultConfig())
	assert.InDelta(t, 141.6, tail.DistanceEff, 0.1, "tailwind -0.5%%/mph")

	calm := Compute(150, Conditions{}, DefaultConfig())
	assert.Equal(t, 150.0, calm.DistanceEff)
	assert.Zero(t, calm.Components.WindM)
}

func TestCompute_WindCap(t *testing.T) {
	// 40 m/s is ~89 mph; uncapped that would be +89% of base.
	gale := Compute(150, Conditions{WindMS: 40}, DefaultConfig())
	assert.InDelta(t, 180, gale.DistanceEff, 0.001, "capped at 20%% of base")
}

func TestCompute_ComponentsSumLinearly(t *testing.T) {
	slopeOnly := Compute(150, Conditions{SlopeM: 5}, DefaultConfig())
	windOnly := Compute(150, Conditions{WindMS: 5}, DefaultConfig())
	both := Compute(150, Conditions{SlopeM: 5, WindMS: 5}, DefaultConfig())

	want := slopeOnly.Components.SlopeM + windOnly.Components.WindM
	assert.InDelta(t, 150+want, both.DistanceEff, 1)
}

func TestTempAdjust_Bounds(t *testing.T) {
	cold := TempAdjust(150, 10)
	assert.GreaterOrEqual(t, cold, 2.2)
	assert.LessOrEqual(t, cold, 3.2)

	warm := TempAdjust(150, 30)
	assert.GreaterOrEqual(t, warm, -3.2)
	assert.LessOrEqual(t, warm, -2.2)

	assert.Zero(t, TempAdjust(150, 20), "reference temperature")
}

func TestAltitudeAdjust_Bounds(t *testing.T) {
	adj := AltitudeAdjust(150, 1500)
	assert.GreaterOrEqual(t, adj, 13.1)
	assert.LessOrEqual(t, adj, 16.1)

	assert.Zero(t, AltitudeAdjust(150, 0))
}

func TestCompute_OptionalComponentsAreGated(t *testing.T) {
	cond := Conditions{TempC: 0, AltitudeM: 2000}

	off := Compute(150, cond, DefaultConfig())
	assert.Equal(t, 150.0, off.DistanceEff, "temp/alt default off")

	on := Merge(Overrides{
		TemperatureEnabled: boolPtr(true),
		AltitudeEnabled:    boolPtr(true),
	})
	got := Compute(150, cond, on)
	assert.Greater(t, got.DistanceEff, 150.0)
	assert.InDelta(t, got.Components.TempM, TempAdjust(150, 0), 0.001)
	assert.InDelta(t, got.Components.AltM, AltitudeAdjust(150, 2000), 0.001)
}

func TestCompute_DegenerateInputsDegradeToZero(t *testing.T) {
	cfg := Merge(Overrides{
		TemperatureEnabled: boolPtr(true),
		AltitudeEnabled:    boolPtr(true),
	})
	cond := Conditions{
		SlopeM:    math.NaN(),
		WindMS:    math.Inf(1),
		TempC:     math.NaN(),
		AltitudeM: math.NaN(),
	}

	got := Compute(150, cond, cfg)

	assert.False(t, math.IsNaN(got.DistanceEff))
	assert.Equal(t, 150.0, got.DistanceEff)
}

func TestMerge_Defaults(t *testing.T) {
	cfg := Merge(Overrides{})
	assert.Equal(t, DefaultConfig(), cfg)

	cap := 10.0
	custom := Merge(Overrides{WindCapPct: &cap})
	assert.Equal(t, 10.0, custom.WindCapPct)
	assert.Equal(t, DefaultConfig().TempCoeffPerDegC, custom.TempCoeffPerDegC)
}

func boolPtr(b bool) *bool { return &b }
