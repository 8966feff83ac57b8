package genhexmap

import "github.com/Flokey82/genhexmap/noise"

// moistureSeedOffset derives the moisture field seed from the elevation
// seed. Both fields stay reproducible from one number while sampling
// decorrelated noise domains; perfectly correlated fields would collapse
// the biome diversity.
const moistureSeedOffset = 100

// sampler produces the per-cell (elevation, moisture) samples for one
// generation attempt. It is a pure function of its construction
// parameters and the queried coordinate.
type sampler struct {
	elev   noise.Field
	moist  noise.Field
	cfg    *NoiseConfig
	width  int
	height int
}

func newSampler(seed int64, width, height int, cfg *NoiseConfig) (*sampler, error) {
	elev, err := noise.New(cfg.Backend, cfg.Octaves, cfg.Persistence, seed)
	if err != nil {
		return nil, err
	}
	moist, err := noise.New(cfg.Backend, cfg.Octaves, cfg.Persistence, seed+moistureSeedOffset)
	if err != nil {
		return nil, err
	}
	return &sampler{
		elev:   elev,
		moist:  moist,
		cfg:    cfg,
		width:  width,
		height: height,
	}, nil
}

// sample returns the noise sample for the cell at (q, r). Coordinates are
// normalized by the grid dimensions so feature size follows the scale
// settings, not the grid resolution. The moisture field is additionally
// sampled at shifted coordinates.
func (s *sampler) sample(q, r int) (elev, moist float64) {
	nx := float64(q) / float64(s.width)
	ny := float64(r) / float64(s.height)
	elev = s.elev.Eval2(nx*s.cfg.ElevationScale, ny*s.cfg.ElevationScale)
	moist = s.moist.Eval2(
		nx*s.cfg.MoistureScale+s.cfg.MoistureShift,
		ny*s.cfg.MoistureScale+s.cfg.MoistureShift,
	)
	return elev, moist
}
