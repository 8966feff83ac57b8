package genhexmap

import "math"

// HexCenter returns the cartesian center of the hex at axial (q, r) for
// hexes of the given radius. Flat-top orientation, odd columns shifted
// half a step down.
func HexCenter(q, r int, size float64) (x, y float64) {
	x = size * 1.5 * float64(q)
	y = size * math.Sqrt(3) * (float64(r) + 0.5*float64(q&1))
	return x, y
}

// HexCorners returns the six corner points of a hex centered at (cx, cy).
func HexCorners(cx, cy, size float64) [6][2]float64 {
	var pts [6][2]float64
	for i := range pts {
		a := math.Pi / 3 * float64(i)
		pts[i] = [2]float64{cx + size*math.Cos(a), cy + size*math.Sin(a)}
	}
	return pts
}
