package genhexmap

import "testing"

func gridFromBiomes(width, height int, biomes []Biome) *Grid {
	g := newGrid(width, height)
	copy(g.Biomes, biomes)
	return g
}

func TestResolvePairsDesertForest(t *testing.T) {
	g := gridFromBiomes(2, 1, []Biome{BiomeDesert, BiomeForest})
	g.resolvePairs()
	if g.BiomeAt(0, 0) != BiomePlains {
		t.Errorf("desert next to forest = %s, want plains", g.BiomeAt(0, 0))
	}
	if g.BiomeAt(1, 0) != BiomeForest {
		t.Errorf("forest side changed to %s", g.BiomeAt(1, 0))
	}
}

func TestResolvePairsDesertWater(t *testing.T) {
	g := gridFromBiomes(2, 1, []Biome{BiomeWater, BiomeDesert})
	g.resolvePairs()
	if g.BiomeAt(1, 0) != BiomePlains {
		t.Errorf("desert next to water = %s, want plains", g.BiomeAt(1, 0))
	}
}

func TestResolvePairsLeavesLegalNeighbors(t *testing.T) {
	g := gridFromBiomes(3, 1, []Biome{BiomeMountain, BiomeDesert, BiomePlains})
	g.resolvePairs()
	if g.BiomeAt(1, 0) != BiomeDesert {
		t.Errorf("desert with legal neighbors changed to %s", g.BiomeAt(1, 0))
	}
}

func TestAbsorbSingletonMajority(t *testing.T) {
	biomes := make([]Biome, 9)
	for i := range biomes {
		biomes[i] = BiomePlains
	}
	g := gridFromBiomes(3, 3, biomes)
	g.Biomes[g.Idx(1, 1)] = BiomeMountain
	g.absorbSingletons()
	if got := g.BiomeAt(1, 1); got != BiomePlains {
		t.Errorf("isolated mountain = %s, want plains", got)
	}
}

func TestAbsorbSingletonTieFallsBackToPlains(t *testing.T) {
	// The center is a water singleton with three desert and three forest
	// neighbors. The tie resolves to forest (lower biome order), but
	// forest next to desert is disallowed, so plains wins. Every ring
	// cell has a same-biome neighbor and must stay untouched.
	g := newGrid(3, 3)
	for _, c := range [][3]int{
		{0, 0, int(BiomeDesert)}, {1, 0, int(BiomeDesert)},
		{0, 1, int(BiomeDesert)}, {0, 2, int(BiomeDesert)},
		{2, 0, int(BiomeForest)}, {2, 1, int(BiomeForest)},
		{1, 2, int(BiomeForest)}, {2, 2, int(BiomeForest)},
	} {
		g.Biomes[g.Idx(c[0], c[1])] = Biome(c[2])
	}
	g.Biomes[g.Idx(1, 1)] = BiomeWater

	g.absorbSingletons()

	if got := g.BiomeAt(1, 1); got != BiomePlains {
		t.Errorf("tied singleton = %s, want plains", got)
	}
	if g.BiomeAt(0, 0) != BiomeDesert || g.BiomeAt(2, 2) != BiomeForest {
		t.Error("non-singleton ring cells were modified")
	}
}

func TestSmoothOneByOneGrid(t *testing.T) {
	g := gridFromBiomes(1, 1, []Biome{BiomeDesert})
	g.smooth()
	if g.BiomeAt(0, 0) != BiomeDesert {
		t.Errorf("1x1 grid changed to %s", g.BiomeAt(0, 0))
	}
}

// No disallowed pairing may survive smoothing on generated maps.
func TestAdjacencyInvariant(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		m, err := NewMap(seed, 12, 12)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		nbs := make([]int, 0, 6)
		for r := 0; r < m.Height; r++ {
			for q := 0; q < m.Width; q++ {
				b := m.BiomeAt(q, r)
				for _, n := range m.Neighbors(nbs[:0], q, r) {
					if conflicts(b, m.Biomes[n]) {
						t.Fatalf("seed %d: disallowed pair %s/%s at (%d, %d)",
							seed, b, m.Biomes[n], q, r)
					}
				}
			}
		}
	}
}
