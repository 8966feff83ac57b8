package genhexmap

import (
	"fmt"

	"github.com/Flokey82/genhexmap/noise"
)

// Config is a struct that holds all configuration options for the hex map
// generation.
type Config struct {
	*GridConfig
	*NoiseConfig
	*BiomeConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GridConfig:  NewGridConfig(),
		NoiseConfig: NewNoiseConfig(),
		BiomeConfig: NewBiomeConfig(),
	}
}

// Validate checks the configuration before any sampling happens and
// names the offending field in the returned error.
func (cfg *Config) Validate() error {
	if cfg.Width < 1 {
		return fmt.Errorf("config: width must be positive, got %d", cfg.Width)
	}
	if cfg.Height < 1 {
		return fmt.Errorf("config: height must be positive, got %d", cfg.Height)
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("config: max attempts must be positive, got %d", cfg.MaxAttempts)
	}
	if cfg.MinBiomes < 1 || cfg.MinBiomes > NumBiomes {
		return fmt.Errorf("config: min biomes must be in [1, %d], got %d", NumBiomes, cfg.MinBiomes)
	}
	switch cfg.Backend {
	case "", noise.BackendOpenSimplex, noise.BackendPerlin:
	default:
		return fmt.Errorf("config: unknown noise backend %q", cfg.Backend)
	}
	if cfg.Octaves < 1 {
		return fmt.Errorf("config: octaves must be positive, got %d", cfg.Octaves)
	}
	if cfg.ElevationScale <= 0 {
		return fmt.Errorf("config: elevation scale must be positive, got %f", cfg.ElevationScale)
	}
	if cfg.MoistureScale <= 0 {
		return fmt.Errorf("config: moisture scale must be positive, got %f", cfg.MoistureScale)
	}
	if cfg.Bias < BiomeNone || cfg.Bias >= NumBiomes {
		return fmt.Errorf("config: unknown bias biome %d", cfg.Bias)
	}
	if cfg.BiasStrength < 0 || cfg.BiasStrength > 1 {
		return fmt.Errorf("config: bias strength must be in [0, 1], got %f", cfg.BiasStrength)
	}
	t := cfg.Thresholds
	if t.SeaLevel >= t.MountainLevel {
		return fmt.Errorf("config: sea level %f must be below mountain level %f", t.SeaLevel, t.MountainLevel)
	}
	if t.DryLevel > t.WetLevel {
		return fmt.Errorf("config: dry level %f must not exceed wet level %f", t.DryLevel, t.WetLevel)
	}
	return nil
}

// GridConfig holds the grid dimensions and the diversity budget.
type GridConfig struct {
	Width       int // number of columns
	Height      int // number of rows
	MinBiomes   int // distinct biomes required to accept an attempt
	MaxAttempts int // generation attempts before settling for the last grid
}

// NewGridConfig returns a new config for the grid and diversity budget.
// The default dimensions match what fits on a US-Letter page with the
// default render geometry.
func NewGridConfig() *GridConfig {
	return &GridConfig{
		Width:       14,
		Height:      15,
		MinBiomes:   3,
		MaxAttempts: 5,
	}
}

// NoiseConfig holds the parameters of the two noise fields. Coordinates
// are normalized by the grid dimensions before sampling, so the scales
// control feature size independent of grid resolution.
type NoiseConfig struct {
	Backend        string  // noise.BackendOpenSimplex or noise.BackendPerlin
	Octaves        int     // fractal octaves (OpenSimplex backend)
	Persistence    float64 // octave amplitude falloff
	ElevationScale float64 // frequency of the elevation field
	MoistureScale  float64 // frequency of the moisture field
	MoistureShift  float64 // coordinate offset decorrelating the moisture field
}

// NewNoiseConfig returns a new config for the noise fields.
func NewNoiseConfig() *NoiseConfig {
	return &NoiseConfig{
		Backend:        noise.BackendOpenSimplex,
		Octaves:        4,
		Persistence:    0.5,
		ElevationScale: 1.5,
		MoistureScale:  1.5,
		MoistureShift:  100,
	}
}

// BiomeConfig holds the classification thresholds and the optional bias.
type BiomeConfig struct {
	Thresholds   Thresholds
	Bias         Biome   // biome to skew classification toward, BiomeNone for no bias
	BiasStrength float64 // in [0, 1]
	BiasShift    float64 // sample shift applied at full strength
}

// NewBiomeConfig returns a new config for biome classification.
func NewBiomeConfig() *BiomeConfig {
	return &BiomeConfig{
		Thresholds:   NewThresholds(),
		Bias:         BiomeNone,
		BiasStrength: 0.35,
		BiasShift:    0.5,
	}
}
