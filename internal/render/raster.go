package render

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// dashLength is the run length, in pixels, of each dash segment.
const dashLength = 4

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.Set(px, py, col)
			}
		}
	}
}

// plotLine walks the Bresenham line from (x0, y0) to (x1, y1) inclusive.
func plotLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// pen plots solid or alternating dashed pixels. The dash phase carries
// across segments so a closed outline keeps a regular pattern.
type pen struct {
	img   *image.RGBA
	thick int
	on    color.Color
	off   color.Color // nil for a solid stroke
	n     int
}

func (p *pen) plot(x, y int) {
	col := p.on
	if p.off != nil && (p.n/dashLength)%2 == 1 {
		col = p.off
	}
	p.n++
	setThickPixel(p.img, x, y, p.thick, col)
}

func (p *pen) line(x0, y0, x1, y1 float64) {
	if !finite(x0, y0, x1, y1) {
		return
	}
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, p.view())
	if !ok {
		return
	}
	plotLine(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)), p.plot)
}

// view is the image bounds grown by the stroke so pixels just off the edge
// still reach the visible area.
func (p *pen) view() rect {
	b := p.img.Bounds()
	g := float64(p.thick + 1)
	return rect{float64(b.Min.X) - g, float64(b.Min.Y) - g, float64(b.Max.X) + g, float64(b.Max.Y) + g}
}

func (p *pen) rect(x0, y0, x1, y1 float64) {
	p.line(x0, y0, x1, y0)
	p.line(x1, y0, x1, y1)
	p.line(x1, y1, x0, y1)
	p.line(x0, y1, x0, y0)
}

// maxArcSteps bounds the polyline of one visible arc.
const maxArcSteps = 1 << 16

// ellipse approximates the outline with polylines, one per arc that crosses
// the visible area, at roughly one pixel per segment.
func (p *pen) ellipse(cx, cy, rx, ry float64) {
	if !finite(cx, cy, rx, ry) {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	r := math.Max(rx, ry)
	if r < 0.5 {
		p.line(cx, cy, cx, cy)
		return
	}
	at := func(t float64) (float64, float64) {
		return cx + math.Cos(t)*rx, cy + math.Sin(t)*ry
	}
	for _, arc := range visibleArcs(cx, cy, rx, ry, p.view()) {
		n := int(math.Ceil((arc[1] - arc[0]) * r))
		n = max(1, min(n, maxArcSteps))
		px, py := at(arc[0])
		for i := 1; i <= n; i++ {
			x, y := at(arc[0] + (arc[1]-arc[0])*float64(i)/float64(n))
			p.line(px, py, x, y)
			px, py = x, y
		}
	}
}

// drawCheckerboard fills rect of dst with a checkerboard pattern of the given
// colors. size controls the checker square size.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}

type point struct{ x, y float64 }

type rect struct{ minX, minY, maxX, maxY float64 }

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipSegment clips a segment to r (Liang-Barsky). Segments already inside
// come back unchanged.
func clipSegment(x0, y0, x1, y1 float64, r rect) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, x0 - r.minX},
		{dx, r.maxX - x0},
		{-dy, y0 - r.minY},
		{dy, r.maxY - y0},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	nx0, ny0 := x0+t0*dx, y0+t0*dy
	if t1 < 1 {
		x1, y1 = x0+t1*dx, y0+t1*dy
	}
	return nx0, ny0, x1, y1, true
}

// visibleArcs returns the parameter intervals, within [0, 2pi], where the
// ellipse (cx + rx cos t, cy + ry sin t) lies inside r. Adjacent intervals
// are merged.
func visibleArcs(cx, cy, rx, ry float64, r rect) [][2]float64 {
	full := [][2]float64{{0, 2 * math.Pi}}
	xs, ys := full, full
	if rx > 0 {
		xs = cosRange((r.minX-cx)/rx, (r.maxX-cx)/rx)
	} else if cx < r.minX || cx > r.maxX {
		return nil
	}
	if ry > 0 {
		ys = sinRange((r.minY-cy)/ry, (r.maxY-cy)/ry)
	} else if cy < r.minY || cy > r.maxY {
		return nil
	}

	var out [][2]float64
	for _, a := range xs {
		for _, b := range ys {
			lo, hi := math.Max(a[0], b[0]), math.Min(a[1], b[1])
			if lo <= hi {
				out = append(out, [2]float64{lo, hi})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	merged := out[:0]
	for _, iv := range out {
		if n := len(merged); n > 0 && iv[0] <= merged[n-1][1]+1e-9 {
			merged[n-1][1] = math.Max(merged[n-1][1], iv[1])
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// cosRange returns the t in [0, 2pi] with lo <= cos t <= hi.
func cosRange(lo, hi float64) [][2]float64 {
	if lo > 1 || hi < -1 || lo > hi {
		return nil
	}
	a := math.Acos(math.Min(hi, 1))
	b := math.Acos(math.Max(lo, -1))
	return [][2]float64{{a, b}, {2*math.Pi - b, 2*math.Pi - a}}
}

// sinRange returns the t in [0, 2pi] with lo <= sin t <= hi.
func sinRange(lo, hi float64) [][2]float64 {
	if lo > 1 || hi < -1 || lo > hi {
		return nil
	}
	a := math.Asin(math.Max(lo, -1))
	b := math.Asin(math.Min(hi, 1))
	out := [][2]float64{{math.Pi - b, math.Pi - a}}
	switch {
	case b < 0:
		out = append(out, [2]float64{a + 2*math.Pi, b + 2*math.Pi})
	case a < 0:
		out = append(out, [2]float64{a + 2*math.Pi, 2 * math.Pi}, [2]float64{0, b})
	default:
		out = append(out, [2]float64{a, b})
	}
	return out
}
