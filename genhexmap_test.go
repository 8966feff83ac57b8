package genhexmap

import (
	"testing"

	"github.com/Flokey82/genhexmap/noise"
)

func scenarioConfig() *Config {
	cfg := NewConfig()
	cfg.Width = 10
	cfg.Height = 10
	cfg.MinBiomes = 3
	cfg.MaxAttempts = 5
	return cfg
}

func sameGrid(a, b *Grid) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for i := range a.Biomes {
		if a.Biomes[i] != b.Biomes[i] || a.Elevation[i] != b.Elevation[i] || a.Moisture[i] != b.Moisture[i] {
			return false
		}
	}
	return true
}

func TestGenerateDeterminism(t *testing.T) {
	m1, err := NewMapFromConfig(12345, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	m2, err := NewMapFromConfig(12345, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !sameGrid(m1.Grid, m2.Grid) {
		t.Error("same seed produced different grids")
	}
	if m1.Meta != m2.Meta {
		t.Errorf("same seed produced different metadata: %+v vs %+v", m1.Meta, m2.Meta)
	}
}

func TestCellCoverage(t *testing.T) {
	m, err := NewMapFromConfig(99, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Biomes) != m.Width*m.Height {
		t.Fatalf("grid has %d cells, want %d", len(m.Biomes), m.Width*m.Height)
	}
	for i, b := range m.Biomes {
		if b < 0 || b >= NumBiomes {
			t.Errorf("cell %d has out-of-domain biome %d", i, b)
		}
	}
}

// Regression baseline: a 10x10 unbiased board with default thresholds
// reaches three distinct biomes within the five-attempt budget.
func TestDefaultScenario(t *testing.T) {
	m, err := NewMapFromConfig(12345, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !m.Meta.DiversityMet {
		t.Errorf("diversity not met: %d biomes after %d attempts",
			m.Meta.DistinctBiomes, m.Meta.Attempts)
	}
	if m.Meta.DistinctBiomes < 3 {
		t.Errorf("DistinctBiomes = %d, want >= 3", m.Meta.DistinctBiomes)
	}
	if m.Meta.Attempts > 5 {
		t.Errorf("Attempts = %d, want <= 5", m.Meta.Attempts)
	}
	if m.Meta.DistinctBiomes != m.DistinctBiomes() {
		t.Error("metadata biome count disagrees with grid")
	}
}

// An unreachable diversity target is reported, not treated as an error.
func TestDiversityShortfallReported(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 2
	cfg.Height = 2
	cfg.MinBiomes = 5
	cfg.MaxAttempts = 1
	m, err := NewMapFromConfig(7, cfg)
	if err != nil {
		t.Fatalf("shortfall returned error: %v", err)
	}
	if m.Meta.DiversityMet {
		t.Error("four cells cannot carry five biomes")
	}
	if m.Meta.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1 (exhausted budget)", m.Meta.Attempts)
	}
	if m.Grid == nil || len(m.Biomes) != 4 {
		t.Error("best-effort grid missing after shortfall")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }},
		{"min biomes low", func(c *Config) { c.MinBiomes = 0 }},
		{"min biomes high", func(c *Config) { c.MinBiomes = 6 }},
		{"strength low", func(c *Config) { c.BiasStrength = -0.1 }},
		{"strength high", func(c *Config) { c.BiasStrength = 1.1 }},
		{"bad bias", func(c *Config) { c.Bias = Biome(9) }},
		{"bad backend", func(c *Config) { c.Backend = "white" }},
		{"zero octaves", func(c *Config) { c.Octaves = 0 }},
		{"inverted sea", func(c *Config) { c.Thresholds.SeaLevel = 0.9 }},
		{"inverted dry", func(c *Config) { c.Thresholds.DryLevel = 0.9 }},
	}
	for _, tt := range tests {
		cfg := NewConfig()
		tt.mutate(cfg)
		if _, err := NewMapFromConfig(1, cfg); err == nil {
			t.Errorf("%s: expected configuration error", tt.name)
		}
	}
}

// A zero seed draws a fresh one, and the recorded seed replays the map.
func TestZeroSeedRecordedAndReproducible(t *testing.T) {
	m1, err := NewMapFromConfig(0, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	if m1.Meta.SeedUsed == 0 {
		t.Fatal("seed was not recorded")
	}
	m2, err := NewMapFromConfig(m1.Meta.SeedUsed, scenarioConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !sameGrid(m1.Grid, m2.Grid) {
		t.Error("recorded seed did not reproduce the grid")
	}
}

func TestPerlinBackend(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Backend = noise.BackendPerlin
	m1, err := NewMapFromConfig(12345, cfg)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := NewMapFromConfig(12345, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !sameGrid(m1.Grid, m2.Grid) {
		t.Error("perlin backend not deterministic")
	}
	for i, b := range m1.Biomes {
		if b < 0 || b >= NumBiomes {
			t.Errorf("cell %d has out-of-domain biome %d", i, b)
		}
	}
}

func TestNilConfigUsesDefaults(t *testing.T) {
	m, err := NewMapFromConfig(3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 14 || m.Height != 15 {
		t.Errorf("default grid is %dx%d, want 14x15", m.Width, m.Height)
	}
}

// Raising the bias strength must not shrink the biased biome's share in
// expectation; compare the extremes aggregated over several seeds.
func TestBiasIncreasesShare(t *testing.T) {
	count := func(strength float64) int {
		var n int
		for seed := int64(1); seed <= 5; seed++ {
			cfg := NewConfig()
			cfg.Width = 16
			cfg.Height = 16
			cfg.Bias = BiomeForest
			cfg.BiasStrength = strength
			m, err := NewMapFromConfig(seed, cfg)
			if err != nil {
				t.Fatal(err)
			}
			for _, b := range m.Biomes {
				if b == BiomeForest {
					n++
				}
			}
		}
		return n
	}
	if unbiased, full := count(0), count(1); full < unbiased {
		t.Errorf("forest share fell from %d to %d under full bias", unbiased, full)
	}
}
