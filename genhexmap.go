// Package genhexmap procedurally generates hex tile maps. Two
// independently seeded noise fields drive a five-biome threshold
// classification, an adjacency pass removes implausible neighbor
// pairings and isolated tiles, and generation retries with fresh
// sub-seeds until the board carries enough distinct biomes.
package genhexmap

import (
	"log"
	"math/rand"
)

// GenMeta records how a map was generated.
type GenMeta struct {
	SeedUsed       int64 // top-level seed, reported for reproduction
	Attempts       int   // attempts consumed, including the accepted one
	DiversityMet   bool  // distinct biome count reached MinBiomes
	DistinctBiomes int   // distinct biomes on the final grid
}

// Map is a generated hex map.
type Map struct {
	*Grid
	Meta GenMeta
	Cfg  *Config
}

// NewMap returns a map of the given dimensions generated with default
// configuration.
func NewMap(seed int64, width, height int) (*Map, error) {
	cfg := NewConfig()
	cfg.Width = width
	cfg.Height = height
	return NewMapFromConfig(seed, cfg)
}

// NewMapFromConfig generates a map from cfg. A zero seed draws a fresh
// one; the seed actually used is always recorded in the returned
// metadata. Missing the MinBiomes diversity target within MaxAttempts is
// not an error: the last grid is returned with DiversityMet unset.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	m := &Map{
		Cfg:  cfg,
		Meta: GenMeta{SeedUsed: seed},
	}
	if err := m.generate(); err != nil {
		return nil, err
	}
	return m, nil
}

// generate runs the attempt loop. The first attempt samples with the
// top-level seed itself; later attempts draw sub-seeds from a generator
// seeded with it, so the whole sequence replays from a single number and
// every retry explores a different noise domain.
func (m *Map) generate() error {
	rng := rand.New(rand.NewSource(m.Meta.SeedUsed))
	seed := m.Meta.SeedUsed
	for attempt := 1; ; attempt++ {
		grid, err := m.Cfg.generateAttempt(seed)
		if err != nil {
			return err
		}
		m.Grid = grid
		m.Meta.Attempts = attempt
		m.Meta.DistinctBiomes = grid.DistinctBiomes()
		m.Meta.DiversityMet = m.Meta.DistinctBiomes >= m.Cfg.MinBiomes
		if m.Meta.DiversityMet || attempt == m.Cfg.MaxAttempts {
			break
		}
		seed = rng.Int63()
	}
	if !m.Meta.DiversityMet {
		log.Printf("diversity target missed: %d of %d biomes after %d attempts",
			m.Meta.DistinctBiomes, m.Cfg.MinBiomes, m.Meta.Attempts)
	}
	return nil
}

// generateAttempt samples, classifies and smooths one full grid.
func (cfg *Config) generateAttempt(seed int64) (*Grid, error) {
	s, err := newSampler(seed, cfg.Width, cfg.Height, cfg.NoiseConfig)
	if err != nil {
		return nil, err
	}
	g := newGrid(cfg.Width, cfg.Height)
	for r := 0; r < cfg.Height; r++ {
		for q := 0; q < cfg.Width; q++ {
			elev, moist := s.sample(q, r)
			i := g.Idx(q, r)
			g.Elevation[i] = elev
			g.Moisture[i] = moist
			be, bm := cfg.applyBias(elev, moist)
			g.Biomes[i] = cfg.Thresholds.Classify(be, bm)
		}
	}
	g.smooth()
	return g, nil
}
