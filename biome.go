package genhexmap

import "fmt"

// Biome is a discrete terrain category assigned to a single hex.
type Biome int

const (
	BiomeWater Biome = iota
	BiomePlains
	BiomeForest
	BiomeDesert
	BiomeMountain
)

// NumBiomes is the number of distinct biome categories.
const NumBiomes = 5

// BiomeNone marks the absence of a biome, e.g. no bias configured.
const BiomeNone Biome = -1

// String returns the lowercase name of the biome.
func (b Biome) String() string {
	switch b {
	case BiomeNone:
		return "none"
	case BiomeWater:
		return "water"
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeDesert:
		return "desert"
	case BiomeMountain:
		return "mountain"
	}
	return "unknown"
}

// ParseBiome returns the biome with the given name. The empty string
// parses to BiomeNone so an unset flag means "no bias".
func ParseBiome(s string) (Biome, error) {
	switch s {
	case "", "none":
		return BiomeNone, nil
	case "water":
		return BiomeWater, nil
	case "plains":
		return BiomePlains, nil
	case "forest":
		return BiomeForest, nil
	case "desert":
		return BiomeDesert, nil
	case "mountain":
		return BiomeMountain, nil
	}
	return BiomeNone, fmt.Errorf("unknown biome %q", s)
}
