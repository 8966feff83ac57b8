package genhexmap

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// GeoJSON returns the map as a marshaled FeatureCollection with one
// polygon feature per hex, carrying biome, elevation and moisture
// properties. Coordinates are the unit-radius cartesian hex outlines,
// not geographic lat/lon.
func (m *Map) GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for r := 0; r < m.Height; r++ {
		for q := 0; q < m.Width; q++ {
			cx, cy := HexCenter(q, r, 1)
			corners := HexCorners(cx, cy, 1)

			// Close the ring by repeating the first corner.
			ring := make([][]float64, 0, len(corners)+1)
			for _, c := range corners {
				ring = append(ring, []float64{c[0], c[1]})
			}
			ring = append(ring, []float64{corners[0][0], corners[0][1]})

			i := m.Idx(q, r)
			f := geojson.NewPolygonFeature([][][]float64{ring})
			f.SetProperty("q", q)
			f.SetProperty("r", r)
			f.SetProperty("biome", m.Biomes[i].String())
			f.SetProperty("elevation", m.Elevation[i])
			f.SetProperty("moisture", m.Moisture[i])
			fc.AddFeature(f)
		}
	}
	return fc.MarshalJSON()
}

// ExportGeoJSON writes the GeoJSON rendition of the map to the given file.
func (m *Map) ExportGeoJSON(name string) error {
	data, err := m.GeoJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}
