// Package render lays a generated hex map onto a printable page and
// draws it as PDF or PNG: filled hex tiles, a centered legend row at the
// bottom and a footer line with the reproduction parameters.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/mazznoer/colorgrad"

	"github.com/Flokey82/genhexmap"
)

// biomeColors is the print palette, one entry per biome.
var biomeColors = [genhexmap.NumBiomes]color.RGBA{
	genhexmap.BiomeWater:    {R: 74, G: 120, B: 199, A: 255},
	genhexmap.BiomePlains:   {R: 140, G: 189, B: 117, A: 255},
	genhexmap.BiomeForest:   {R: 28, G: 87, B: 51, A: 255},
	genhexmap.BiomeDesert:   {R: 237, G: 212, B: 120, A: 255},
	genhexmap.BiomeMountain: {R: 102, G: 87, B: 69, A: 255},
}

// ToPDF renders the map to a single-page PDF at the given path. The PDF
// backend ships the Helvetica core font, so the legend labels and footer
// are included.
func ToPDF(m *genhexmap.Map, pc *PageConfig, l Layout, name string) error {
	pdf := draw2dpdf.NewPdf("P", "pt", "Letter")
	gc := draw2dpdf.NewGraphicContext(pdf)
	if err := drawPage(gc, m, pc, l, true); err != nil {
		return err
	}
	return draw2dpdf.SaveToPdfFile(name, pdf)
}

// Image renders the map onto a new RGBA image at the page dimensions.
// The image backend has no font loaded, so text is skipped and only the
// board and the legend swatches are drawn.
func Image(m *genhexmap.Map, pc *PageConfig, l Layout) (image.Image, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(PageWidth), int(PageHeight)))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()
	if err := drawPage(gc, m, pc, l, false); err != nil {
		return nil, err
	}
	return img, nil
}

// ToPNG renders the map to a PNG at the given path.
func ToPNG(m *genhexmap.Map, pc *PageConfig, l Layout, name string) error {
	img, err := Image(m, pc, l)
	if err != nil {
		return err
	}
	return draw2dimg.SaveToPngFile(name, img)
}

// drawPage draws the board, legend and footer. Page coordinates run
// y-down from the top-left corner.
func drawPage(gc draw2d.GraphicContext, m *genhexmap.Map, pc *PageConfig, l Layout, withText bool) error {
	tileColor := func(i int) color.Color {
		return biomeColors[m.Biomes[i]]
	}
	if pc.Shaded {
		grads, err := shadeGradients()
		if err != nil {
			return err
		}
		tileColor = func(i int) color.Color {
			return grads[m.Biomes[i]].At(m.Elevation[i])
		}
	}

	for r := 0; r < m.Height; r++ {
		for q := 0; q < m.Width; q++ {
			i := m.Idx(q, r)
			col := tileColor(i)
			cx, cy := genhexmap.HexCenter(q, r, pc.HexSize)
			pts := genhexmap.HexCorners(cx+l.OffX, cy+l.OffY, pc.HexSize)

			gc.SetFillColor(col)
			gc.SetStrokeColor(color.Black)
			gc.SetLineWidth(0.3)
			gc.BeginPath()
			gc.MoveTo(pts[0][0], pts[0][1])
			for _, p := range pts[1:] {
				gc.LineTo(p[0], p[1])
			}
			gc.Close()
			gc.FillStroke()
		}
	}

	drawLegend(gc, pc, withText)
	if withText {
		drawFooter(gc, m, pc)
	}
	return nil
}

// shadeGradients builds one dark-to-light gradient per biome, indexed by
// elevation.
func shadeGradients() ([genhexmap.NumBiomes]colorgrad.Gradient, error) {
	var grads [genhexmap.NumBiomes]colorgrad.Gradient
	for b, base := range biomeColors {
		dark := color.RGBA{R: base.R / 2, G: base.G / 2, B: base.B / 2, A: 255}
		light := color.RGBA{
			R: uint8((int(base.R) + 255) / 2),
			G: uint8((int(base.G) + 255) / 2),
			B: uint8((int(base.B) + 255) / 2),
			A: 255,
		}
		grad, err := colorgrad.NewGradient().Colors(dark, base, light).Build()
		if err != nil {
			return grads, err
		}
		grads[b] = grad
	}
	return grads, nil
}

// drawLegend draws the horizontally centered swatch row at the bottom of
// the page.
func drawLegend(gc draw2d.GraphicContext, pc *PageConfig, withText bool) {
	gc.SetFontSize(9)

	names := make([]string, genhexmap.NumBiomes)
	widths := make([]float64, genhexmap.NumBiomes)
	total := -12.0
	for b := 0; b < genhexmap.NumBiomes; b++ {
		n := genhexmap.Biome(b).String()
		names[b] = strings.ToUpper(n[:1]) + n[1:]
		if withText {
			_, _, right, _ := gc.GetStringBounds(names[b])
			widths[b] = right
		} else {
			// Rough width so the swatch row still centers without font metrics.
			widths[b] = float64(len(names[b])) * 5
		}
		total += pc.LegendSize + 14 + widths[b] + 12
	}

	x := (PageWidth - total) / 2
	y := PageHeight - pc.Margin/2 - pc.LegendSize
	for b := 0; b < genhexmap.NumBiomes; b++ {
		fillRect(gc, x, y, pc.LegendSize, pc.LegendSize, biomeColors[b])
		if withText {
			gc.SetFillColor(color.Black)
			gc.FillStringAt(names[b], x+pc.LegendSize+14, y+pc.LegendSize-2)
		}
		x += pc.LegendSize + 14 + widths[b] + 12
	}
}

// drawFooter prints the reproduction line along the bottom edge.
func drawFooter(gc draw2d.GraphicContext, m *genhexmap.Map, pc *PageConfig) {
	gc.SetFontSize(6)
	gc.SetFillColor(color.Black)
	info := strings.Join([]string{
		fmt.Sprintf("Seed:%d", m.Meta.SeedUsed),
		fmt.Sprintf("Bias:%s(%.2f)", m.Cfg.Bias, m.Cfg.BiasStrength),
		fmt.Sprintf("ElevScale:%.2f", m.Cfg.ElevationScale),
		fmt.Sprintf("MoistScale:%.2f", m.Cfg.MoistureScale),
		fmt.Sprintf("Hex:%.0fpt", pc.HexSize),
		fmt.Sprintf("Grid:%dx%d", m.Width, m.Height),
		fmt.Sprintf("MinBiomes:%d", m.Cfg.MinBiomes),
		fmt.Sprintf("Attempts:%d", m.Meta.Attempts),
	}, " | ")
	gc.FillStringAt(info, pc.Margin, PageHeight-pc.Margin/4)
}

func fillRect(gc draw2d.GraphicContext, x, y, w, h float64, col color.Color) {
	gc.SetFillColor(col)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(0.5)
	gc.BeginPath()
	gc.MoveTo(x, y)
	gc.LineTo(x+w, y)
	gc.LineTo(x+w, y+h)
	gc.LineTo(x, y+h)
	gc.Close()
	gc.FillStroke()
}
