// Command server serves generated hex maps over HTTP for quick
// previewing: /map.png renders the board, /map.json returns the GeoJSON
// rendition. Generation parameters come from query parameters.
package main

import (
	"bytes"
	"flag"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Flokey82/genhexmap"
	"github.com/Flokey82/genhexmap/render"
)

var addr = flag.String("addr", ":8080", "listen address")

func main() {
	flag.Parse()

	router := mux.NewRouter()
	router.HandleFunc("/map.png", pngHandler)
	router.HandleFunc("/map.json", jsonHandler)

	log.Println("listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}

// mapFromQuery builds a map from the request's query parameters. Missing
// parameters fall back to the page-fitted defaults.
func mapFromQuery(r *http.Request) (*genhexmap.Map, *render.PageConfig, render.Layout, error) {
	pc := render.NewPageConfig()
	l := pc.Fit()

	cfg := genhexmap.NewConfig()
	cfg.Width = l.Cols
	cfg.Height = l.Rows

	var seed int64
	q := r.URL.Query()
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, nil, l, err
		}
		seed = s
	}
	if v := q.Get("w"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, l, err
		}
		cfg.Width = w
	}
	if v := q.Get("h"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, l, err
		}
		cfg.Height = h
	}
	if v := q.Get("bias"); v != "" {
		b, err := genhexmap.ParseBiome(v)
		if err != nil {
			return nil, nil, l, err
		}
		cfg.Bias = b
	}
	if v := q.Get("strength"); v != "" {
		s, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, l, err
		}
		cfg.BiasStrength = s
	}
	if v := q.Get("min_biomes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, nil, l, err
		}
		cfg.MinBiomes = n
	}
	if q.Get("shaded") == "1" {
		pc.Shaded = true
	}

	m, err := genhexmap.NewMapFromConfig(seed, cfg)
	return m, pc, l, err
}

func pngHandler(w http.ResponseWriter, r *http.Request) {
	m, pc, l, err := mapFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	img, err := render.Image(m, pc, l)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func jsonHandler(w http.ResponseWriter, r *http.Request) {
	m, _, _, err := mapFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := m.GeoJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(data)
}
