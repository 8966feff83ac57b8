package render

import "math"

// US-Letter page dimensions in points.
const (
	PageWidth  = 612.0
	PageHeight = 792.0
)

// PageConfig holds the page geometry options for a printable board.
type PageConfig struct {
	HexSize    float64 // hex radius in points
	Margin     float64 // page margin in points
	LegendSize float64 // legend swatch edge length in points
	Shaded     bool    // shade tiles by elevation
}

// NewPageConfig returns the default US-Letter page setup.
func NewPageConfig() *PageConfig {
	return &PageConfig{
		HexSize:    25,
		Margin:     36,
		LegendSize: 12,
	}
}

// Layout places a hex grid on the page: the column/row counts that fit
// the printable area and the offsets that center the grid's bounding box
// inside the margins.
type Layout struct {
	Cols, Rows   int
	OffX, OffY   float64
	GridW, GridH float64
}

// Fit computes the largest grid whose outer hex edges stay inside the
// margins. The bottom margin is doubled so the legend row never collides
// with the board.
func (pc *PageConfig) Fit() Layout {
	s := pc.HexSize
	h := 1.5 * s          // center-to-center horizontal step
	v := math.Sqrt(3) * s // center-to-center vertical step

	availW := PageWidth - 2*pc.Margin
	availH := PageHeight - 3*pc.Margin

	// Largest counts whose full bounding box (step*(n-1) + hex diameter)
	// still fits the available rectangle. Odd columns hang half a vertical
	// step lower, so the height budget reserves v/2 beyond the last row.
	l := Layout{
		Cols: int((availW-2*s)/h) + 1,
		Rows: int((availH-2*s-v/2)/v) + 1,
	}
	l.GridW = h*float64(l.Cols-1) + 2*s
	l.GridH = v*float64(l.Rows-1) + 2*s + v/2
	l.OffX = pc.Margin + s + (availW-l.GridW)/2
	l.OffY = pc.Margin + s + (availH-l.GridH)/2
	return l
}
