// Package noise provides the continuous scalar fields that drive the
// terrain generation. Two backends are available: normalized OpenSimplex
// noise with fractal octaves (the default) and classic Perlin noise.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Backend names accepted by New.
const (
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// Field is a two-dimensional scalar noise field with values in [0, 1].
type Field interface {
	Eval2(x, y float64) float64
}

// New returns a Field using the given backend, seeded with seed. An empty
// backend name selects OpenSimplex. Octaves and persistence only apply to
// the OpenSimplex backend.
func New(backend string, octaves int, persistence float64, seed int64) (Field, error) {
	switch backend {
	case BackendOpenSimplex, "":
		return NewNoise(octaves, persistence, seed), nil
	case BackendPerlin:
		return NewPerlin(seed), nil
	}
	return nil, fmt.Errorf("unknown noise backend %q", backend)
}

// Noise is a wrapper for opensimplex.Noise, initialized with
// a given seed, persistence, and number of octaves.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise.
func NewNoise(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}

	return n
}

// Eval2 returns the noise value at the given point.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := 1 << octave
		fFreq := float64(frequency)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*fFreq, y*fFreq)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// Parameters for the Perlin backend. The values give good terrain-like
// noise at the scales used for board generation.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// Perlin wraps perlin.Perlin, rescaling its roughly [-1, 1] output
// to the [0, 1] range shared by all fields.
type Perlin struct {
	Seed int64
	P    *perlin.Perlin
}

// NewPerlin returns a new Perlin field for the given seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		Seed: seed,
		P:    perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
	}
}

// Eval2 returns the noise value at the given point.
func (p *Perlin) Eval2(x, y float64) float64 {
	v := (p.P.Noise2D(x, y) + 1) / 2
	return math.Max(0, math.Min(1, v))
}
