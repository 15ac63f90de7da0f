// Package render rasterizes shapes onto RGBA layers and composites them.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/example/shapedit/internal/shape"
	"github.com/example/shapedit/internal/theme"
	"github.com/example/shapedit/internal/tool"
	"golang.org/x/image/vector"
)

// Canvas is a transparent layer that shapes paint themselves onto.
type Canvas struct {
	img    *image.RGBA
	theme  *theme.Theme
	cursor shape.Direction
}

var (
	_ shape.Painter      = (*Canvas)(nil)
	_ tool.Surface       = (*Canvas)(nil)
	_ tool.CursorSurface = (*Canvas)(nil)
)

// NewCanvas returns a cleared w by h layer. A nil theme uses theme.Default.
func NewCanvas(w, h int, th *theme.Theme) *Canvas {
	if th == nil {
		th = theme.Default()
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), theme: th}
}

// Image exposes the backing pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() image.Rectangle { return c.img.Bounds() }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// Render paints s. Filled marks the selected style.
func (c *Canvas) Render(s shape.Shape, filled bool) {
	s.Draw(c, filled)
}

func (c *Canvas) SetCursor(d shape.Direction) { c.cursor = d }

// Cursor reports the last affordance set by a controller.
func (c *Canvas) Cursor() shape.Direction { return c.cursor }

func (c *Canvas) pen(dashed bool) *pen {
	thick := c.theme.StrokeWidth
	if thick < 1 {
		thick = 1
	}
	if dashed {
		return &pen{img: c.img, thick: thick, on: nrgba(c.theme.SelectedStroke), off: nrgba(c.theme.DashAlternate)}
	}
	return &pen{img: c.img, thick: thick, on: nrgba(c.theme.Stroke)}
}

func (c *Canvas) StrokeRect(b shape.Box, dashed bool) {
	if !finite(b.X, b.Y, b.W, b.H) {
		return
	}
	c.pen(dashed).rect(snap(b))
}

func (c *Canvas) FillRect(b shape.Box) {
	if !finite(b.X, b.Y, b.W, b.H) {
		return
	}
	x0, y0, x1, y1 := snap(b)
	bb := c.img.Bounds()
	r := image.Rect(
		clampInt(x0, bb.Min.X, bb.Max.X), clampInt(y0, bb.Min.Y, bb.Max.Y),
		clampInt(x1+1, bb.Min.X, bb.Max.X), clampInt(y1+1, bb.Min.Y, bb.Max.Y),
	)
	if r.Empty() {
		return
	}
	c.fill([]point{
		{float64(r.Min.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Min.Y)},
		{float64(r.Max.X), float64(r.Max.Y)},
		{float64(r.Min.X), float64(r.Max.Y)},
	})
}

func (c *Canvas) StrokeEllipse(cx, cy, rx, ry float64, dashed bool) {
	c.pen(dashed).ellipse(cx, cy, rx, ry)
}

// FillEllipse fills the part of the ellipse inside the canvas. The outline
// is sampled per row (finer for flat ellipses) with x clamped to the canvas,
// so the work depends on the canvas height, not the radii.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64) {
	if !finite(cx, cy, rx, ry) {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return
	}
	b := c.img.Bounds()
	minX, maxX := float64(b.Min.X), float64(b.Max.X)
	top := math.Max(cy-ry, float64(b.Min.Y))
	bottom := math.Min(cy+ry, float64(b.Max.Y))
	if top >= bottom {
		return
	}
	step := 1.0
	if rx > ry {
		step = math.Max(ry/rx, 1.0/16)
	}

	var left, right []point
	span := func(y float64) {
		d := (y - cy) / ry
		w := rx * math.Sqrt(math.Max(0, 1-d*d))
		left = append(left, point{math.Max(minX, math.Min(maxX, cx-w)), y})
		right = append(right, point{math.Max(minX, math.Min(maxX, cx+w)), y})
	}
	for y := top; y < bottom; y += step {
		span(y)
	}
	span(bottom)
	for i := len(right) - 1; i >= 0; i-- {
		left = append(left, right[i])
	}
	c.fill(left)
}

// fill rasterizes the closed polygon with the selected fill color. The
// polygon must already lie inside the canvas.
func (c *Canvas) fill(poly []point) {
	if len(poly) < 3 {
		return
	}
	b := c.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(poly[0].x-float64(b.Min.X)), float32(poly[0].y-float64(b.Min.Y)))
	for _, p := range poly[1:] {
		z.LineTo(float32(p.x-float64(b.Min.X)), float32(p.y-float64(b.Min.Y)))
	}
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(nrgba(c.theme.SelectedFill)), image.Point{})
}

// snap rounds a box to whole-pixel corners, min first.
func snap(b shape.Box) (x0, y0, x1, y1 float64) {
	x0, x1 = math.Round(b.X), math.Round(b.X+b.W)
	y0, y1 = math.Round(b.Y), math.Round(b.Y+b.H)
	return math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)
}

func clampInt(v float64, lo, hi int) int {
	return int(math.Max(float64(lo), math.Min(float64(hi), v)))
}

// nrgba reinterprets a theme color as non-premultiplied so translucent
// values written as #RRGGBBAA blend as expected.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
