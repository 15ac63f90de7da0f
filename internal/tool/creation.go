package tool

import (
	"github.com/example/shapedit/internal/shape"
	"github.com/example/shapedit/internal/store"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// Creation builds a new shape from a drag gesture and commits it on release.
type Creation struct {
	kind    shape.Kind
	store   *store.Store
	surface Surface
	draft   shape.Shape
}

var _ Controller = (*Creation)(nil)

// NewCreation returns a controller that draws shapes of kind.
func NewCreation(kind shape.Kind, st *store.Store, surface Surface) (*Creation, error) {
	if surface == nil {
		return nil, ErrNoRenderingContext
	}
	return &Creation{kind: kind, store: st, surface: surface}, nil
}

func (c *Creation) Kind() shape.Kind { return c.kind }

// Drafting reports whether a shape is being dragged out.
func (c *Creation) Drafting() bool { return c.draft != nil }

// Draft returns the in-progress shape, or nil.
func (c *Creation) Draft() shape.Shape { return c.draft }

func (c *Creation) PointerDown(x, y float64, button mouse.Button) {
	if button != mouse.ButtonLeft {
		return
	}
	s, err := shape.New(c.kind)
	if err != nil {
		return
	}
	s.SetStartPoint(x, y)
	c.draft = s
}

func (c *Creation) PointerMove(x, y float64, held bool) {
	if !held || c.draft == nil {
		return
	}
	_ = c.draft.SetEndPoint(x, y, false)
	c.surface.Clear()
	c.surface.Render(c.draft, false)
}

// PointerUp finalizes the draft. Degenerate drafts are dropped without error.
func (c *Creation) PointerUp(x, y float64) {
	if c.draft == nil {
		return
	}
	d := c.draft
	c.draft = nil
	if err := d.SetEndPoint(x, y, true); err == nil && d.Valid() {
		commitShape(c.store, d)
	}
	c.surface.Clear()
}

func (c *Creation) KeyPress(key.Code) {}

func (c *Creation) Close() {
	c.draft = nil
}
