package genhexmap

// disallowedPairs lists the direct-neighbor pairings that never appear on
// an accepted map. The desert side of a conflicting edge is replaced with
// plains, which pairs with everything.
var disallowedPairs = [...][2]Biome{
	{BiomeDesert, BiomeForest},
	{BiomeDesert, BiomeWater},
}

// conflicts reports whether a and b form a disallowed neighbor pair.
func conflicts(a, b Biome) bool {
	for _, p := range disallowedPairs {
		if (a == p[0] && b == p[1]) || (a == p[1] && b == p[0]) {
			return true
		}
	}
	return false
}

// smooth corrects the classified grid in exactly two bounded passes:
// first the pair pass (replacing the desert side with plains cannot
// introduce new conflicts, so a single sweep converges), then the
// singleton pass, which re-checks the pair table before each
// reassignment so the adjacency invariant survives. No fixpoint
// iteration.
func (g *Grid) smooth() {
	g.resolvePairs()
	g.absorbSingletons()
}

// resolvePairs turns every desert hex that touches a forest or water hex
// into plains.
func (g *Grid) resolvePairs() {
	nbs := make([]int, 0, 6)
	for r := 0; r < g.Height; r++ {
		for q := 0; q < g.Width; q++ {
			i := g.Idx(q, r)
			if g.Biomes[i] != BiomeDesert {
				continue
			}
			nbs = g.Neighbors(nbs[:0], q, r)
			for _, n := range nbs {
				if conflicts(BiomeDesert, g.Biomes[n]) {
					g.Biomes[i] = BiomePlains
					break
				}
			}
		}
	}
}

// absorbSingletons reassigns every hex whose biome matches none of its
// neighbors to the majority biome among them, ties broken by the fixed
// biome order (water first). A majority choice that would itself form a
// disallowed pairing falls back to plains. Cells are visited in scan
// order against the live grid, so each reassignment sees the ones before
// it.
func (g *Grid) absorbSingletons() {
	nbs := make([]int, 0, 6)
	for r := 0; r < g.Height; r++ {
		for q := 0; q < g.Width; q++ {
			i := g.Idx(q, r)
			nbs = g.Neighbors(nbs[:0], q, r)
			if len(nbs) == 0 {
				continue
			}
			isolated := true
			for _, n := range nbs {
				if g.Biomes[n] == g.Biomes[i] {
					isolated = false
					break
				}
			}
			if !isolated {
				continue
			}
			var counts [NumBiomes]int
			for _, n := range nbs {
				counts[g.Biomes[n]]++
			}
			best := BiomeWater
			for b := BiomePlains; b < NumBiomes; b++ {
				if counts[b] > counts[best] {
					best = b
				}
			}
			for _, n := range nbs {
				if conflicts(best, g.Biomes[n]) {
					best = BiomePlains
					break
				}
			}
			g.Biomes[i] = best
		}
	}
}
