package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/Flokey82/genhexmap"
	"github.com/Flokey82/genhexmap/render"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed         = flag.Int64("seed", 0, "force seed for reproducibility (0 draws one)")
	bias         = flag.String("bias", "", "primary biome bias (water|plains|forest|desert|mountain)")
	biasStrength = flag.Float64("bias_strength", 0.35, "bias strength in [0, 1]")
	minBiomes    = flag.Int("min_biomes", 3, "minimum distinct biomes")
	attempts     = flag.Int("attempts", 5, "max regeneration attempts")
	backend      = flag.String("noise", "opensimplex", "noise backend (opensimplex|perlin)")
	hexSize      = flag.Float64("hex_size", 25, "hex radius (pt)")
	margin       = flag.Float64("margin", 36, "page margin (pt)")
	legendSize   = flag.Float64("legend_size", 12, "legend square size (pt)")
	shaded       = flag.Bool("shaded", false, "shade tiles by elevation")
	format       = flag.String("format", "pdf", "output format (pdf|png|geojson)")
	out          = flag.String("out", "", "output file (default hex_map_<timestamp>_<seed>.<format>)")
)

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	pc := render.NewPageConfig()
	pc.HexSize = *hexSize
	pc.Margin = *margin
	pc.LegendSize = *legendSize
	pc.Shaded = *shaded
	l := pc.Fit()

	cfg := genhexmap.NewConfig()
	cfg.Width = l.Cols
	cfg.Height = l.Rows
	cfg.MinBiomes = *minBiomes
	cfg.MaxAttempts = *attempts
	cfg.BiasStrength = *biasStrength
	cfg.Backend = *backend

	b, err := genhexmap.ParseBiome(*bias)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Bias = b

	m, err := genhexmap.NewMapFromConfig(*seed, cfg)
	if err != nil {
		log.Fatal(err)
	}

	name := *out
	if name == "" {
		ts := time.Now().Format("20060102_150405")
		name = fmt.Sprintf("hex_map_%s_%d.%s", ts, m.Meta.SeedUsed, *format)
	}

	switch *format {
	case "pdf":
		err = render.ToPDF(m, pc, l, name)
	case "png":
		err = render.ToPNG(m, pc, l, name)
	case "geojson":
		err = m.ExportGeoJSON(name)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("generated %s (%d distinct biomes, attempt %d of %d)",
		name, m.Meta.DistinctBiomes, m.Meta.Attempts, cfg.MaxAttempts)
	log.Printf("re-run with: -seed %d", m.Meta.SeedUsed)

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
