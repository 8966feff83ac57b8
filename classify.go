package genhexmap

import "math"

// Thresholds holds the elevation/moisture cut points that map a noise
// sample to a biome. All values live on the normalized [0, 1] sample
// range.
type Thresholds struct {
	SeaLevel      float64 // below: water
	MountainLevel float64 // above: mountain
	DryLevel      float64 // land with moisture below: desert
	WetLevel      float64 // land with moisture above: forest
}

// NewThresholds returns the default cut points. They are tuned so that an
// unbiased map keeps every band reachable: fractal samples cluster around
// 0.5, so the water and mountain bands sit just outside the one-sigma
// range and the dry/wet bands split the land roughly in thirds.
func NewThresholds() Thresholds {
	return Thresholds{
		SeaLevel:      0.42,
		MountainLevel: 0.62,
		DryLevel:      0.44,
		WetLevel:      0.56,
	}
}

// Classify maps an (elevation, moisture) sample to a biome. Elevation
// decides first; moisture only differentiates the land band between the
// sea and mountain levels.
func (t Thresholds) Classify(elev, moist float64) Biome {
	switch {
	case elev < t.SeaLevel:
		return BiomeWater
	case elev > t.MountainLevel:
		return BiomeMountain
	case moist < t.DryLevel:
		return BiomeDesert
	case moist > t.WetLevel:
		return BiomeForest
	}
	return BiomePlains
}

// applyBias shifts a sample toward the value range of the configured bias
// biome before thresholding. Strength 0 leaves the sample untouched;
// strength 1 applies the full BiasShift, enough to push a mid-range
// sample across any band. Water, forest, desert and mountain shift a
// single axis in a fixed direction. Plains instead pulls both axes
// toward the middle of the plains band with deliberately weak 0.2/0.1
// weights, so even a full-strength plains bias nudges the board rather
// than flattening it.
func (cfg *BiomeConfig) applyBias(elev, moist float64) (float64, float64) {
	if cfg.Bias == BiomeNone || cfg.BiasStrength == 0 {
		return elev, moist
	}
	shift := cfg.BiasStrength * cfg.BiasShift
	switch cfg.Bias {
	case BiomeWater:
		elev -= shift
	case BiomeMountain:
		elev += shift
	case BiomeDesert:
		moist -= shift
	case BiomeForest:
		moist += shift
	case BiomePlains:
		t := cfg.Thresholds
		elev = pullToward(elev, (t.SeaLevel+t.MountainLevel)/2, 0.2*shift)
		moist = pullToward(moist, (t.DryLevel+t.WetLevel)/2, 0.1*shift)
	}
	return clamp01(elev), clamp01(moist)
}

// pullToward moves v by at most step toward target without overshooting.
func pullToward(v, target, step float64) float64 {
	if v > target {
		return math.Max(target, v-step)
	}
	return math.Min(target, v+step)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
