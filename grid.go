package genhexmap

// hexDirs is the fixed axial direction set for the six hex neighbors.
var hexDirs = [6][2]int{{1, 0}, {-1, 0}, {1, -1}, {-1, 1}, {0, 1}, {0, -1}}

// Grid holds the per-hex terrain of a generated map. Cells are addressed
// by axial column/row and stored row-major. The raw noise samples are
// kept alongside the biome labels so renderers can shade by elevation.
type Grid struct {
	Width     int
	Height    int
	Biomes    []Biome
	Elevation []float64
	Moisture  []float64
}

func newGrid(width, height int) *Grid {
	return &Grid{
		Width:     width,
		Height:    height,
		Biomes:    make([]Biome, width*height),
		Elevation: make([]float64, width*height),
		Moisture:  make([]float64, width*height),
	}
}

// Idx returns the slice index of the cell at (q, r).
func (g *Grid) Idx(q, r int) int {
	return r*g.Width + q
}

// Contains reports whether (q, r) lies within the grid bounds.
func (g *Grid) Contains(q, r int) bool {
	return q >= 0 && q < g.Width && r >= 0 && r < g.Height
}

// BiomeAt returns the biome of the cell at (q, r).
func (g *Grid) BiomeAt(q, r int) Biome {
	return g.Biomes[g.Idx(q, r)]
}

// Neighbors appends the indices of all in-bounds neighbors of (q, r) to
// out and returns it. Interior cells have six, border cells fewer.
func (g *Grid) Neighbors(out []int, q, r int) []int {
	for _, d := range hexDirs {
		if nq, nr := q+d[0], r+d[1]; g.Contains(nq, nr) {
			out = append(out, g.Idx(nq, nr))
		}
	}
	return out
}

// DistinctBiomes returns the number of distinct biomes present on the grid.
func (g *Grid) DistinctBiomes() int {
	var seen [NumBiomes]bool
	for _, b := range g.Biomes {
		seen[b] = true
	}
	var count int
	for _, s := range seen {
		if s {
			count++
		}
	}
	return count
}
