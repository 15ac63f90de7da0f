package render

import (
	"image"

	"github.com/example/shapedit/internal/store"
	"github.com/example/shapedit/internal/theme"
	xdraw "golang.org/x/image/draw"
)

// checkerSize is the edge of one backdrop square.
const checkerSize = 8

// MainLayer keeps a canvas in sync with the committed shapes of a store.
type MainLayer struct {
	store  *store.Store
	canvas *Canvas
	sub    *store.Subscription
}

// NewMainLayer paints the current elements and repaints on every change.
func NewMainLayer(st *store.Store, c *Canvas) *MainLayer {
	l := &MainLayer{store: st, canvas: c}
	l.sub = st.Subscribe(store.KeyElements, l.Redraw)
	l.Redraw()
	return l
}

func (l *MainLayer) Canvas() *Canvas { return l.canvas }

// Redraw repaints all committed shapes in insertion order.
func (l *MainLayer) Redraw() {
	l.canvas.Clear()
	for _, s := range l.store.Elements() {
		l.canvas.Render(s, false)
	}
}

// Close stops listening for store changes.
func (l *MainLayer) Close() { l.sub.Remove() }

// Composite flattens layers over a checkerboard backdrop into dst. Layers
// are drawn in order so later ones appear on top.
func Composite(dst *image.RGBA, th *theme.Theme, layers ...*Canvas) {
	if th == nil {
		th = theme.Default()
	}
	drawCheckerboard(dst, dst.Bounds(), checkerSize, th.CheckerLight, th.CheckerDark)
	for _, l := range layers {
		src := l.Image()
		xdraw.Copy(dst, dst.Bounds().Min, src, src.Bounds(), xdraw.Over, nil)
	}
}

// Flatten returns a new image of the layers without the backdrop, suitable
// for export.
func Flatten(layers ...*Canvas) *image.RGBA {
	var r image.Rectangle
	for _, l := range layers {
		r = r.Union(l.Bounds())
	}
	out := image.NewRGBA(r)
	for _, l := range layers {
		src := l.Image()
		xdraw.Copy(out, src.Bounds().Min, src, src.Bounds(), xdraw.Over, nil)
	}
	return out
}
