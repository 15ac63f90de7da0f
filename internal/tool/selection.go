package tool

import (
	"fmt"

	"github.com/example/shapedit/internal/shape"
	"github.com/example/shapedit/internal/store"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

type State int

const (
	StateIdle State = iota
	StateFocused
	StatePendingTransform
	StateTransforming
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFocused:
		return "focused"
	case StatePendingTransform:
		return "pending-transform"
	case StateTransforming:
		return "transforming"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// transform tracks a resize or move between press and release.
type transform struct {
	direction shape.Direction
	anchorX   float64
	anchorY   float64
	moved     bool
}

// Selection checks a committed shape out of the store for live editing. A
// focused shape is never present in the store at the same time.
type Selection struct {
	store     *store.Store
	surface   Surface
	tolerance float64
	onContext func(s shape.Shape, x, y float64)

	focused shape.Shape
	session *transform
	cursor  shape.Direction
}

var _ Controller = (*Selection)(nil)

// SelectionOption modifies a Selection during creation.
type SelectionOption func(*Selection)

// WithTolerance sets the border hover band used for resize handles.
func WithTolerance(tol float64) SelectionOption {
	return func(s *Selection) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

// WithContextAction registers fn for secondary presses inside the focused shape.
func WithContextAction(fn func(s shape.Shape, x, y float64)) SelectionOption {
	return func(s *Selection) { s.onContext = fn }
}

// NewSelection returns the cursor tool controller.
func NewSelection(st *store.Store, surface Surface, opts ...SelectionOption) (*Selection, error) {
	if surface == nil {
		return nil, ErrNoRenderingContext
	}
	s := &Selection{store: st, surface: surface, tolerance: shape.DefaultTolerance}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Focused returns the checked out shape, or nil.
func (s *Selection) Focused() shape.Shape { return s.focused }

func (s *Selection) State() State {
	switch {
	case s.focused == nil:
		return StateIdle
	case s.session == nil:
		return StateFocused
	case s.session.moved:
		return StateTransforming
	default:
		return StatePendingTransform
	}
}

// Cursor returns the affordance last computed for the pointer position.
func (s *Selection) Cursor() shape.Direction { return s.cursor }

func (s *Selection) PointerDown(x, y float64, button mouse.Button) {
	if s.focused == nil || s.session != nil {
		return
	}
	if button == mouse.ButtonRight {
		if s.focused.Contains(x, y) && s.onContext != nil {
			s.onContext(s.focused, x, y)
		}
		return
	}
	if button != mouse.ButtonLeft {
		return
	}
	d := s.focused.CursorDirection(x, y, s.tolerance)
	if d == shape.DirNone {
		return
	}
	s.session = &transform{direction: d, anchorX: x, anchorY: y}
	s.setCursor(d)
}

func (s *Selection) PointerMove(x, y float64, held bool) {
	if s.focused == nil {
		return
	}
	if s.session == nil {
		s.setCursor(s.focused.CursorDirection(x, y, s.tolerance))
		return
	}
	if !held {
		return
	}
	s.apply(x, y)
	s.session.moved = true
	s.redraw()
}

func (s *Selection) PointerUp(x, y float64) {
	if s.session != nil {
		s.apply(x, y)
		s.session = nil
		s.redraw()
		s.setCursor(s.focused.CursorDirection(x, y, s.tolerance))
		return
	}
	if s.focused != nil {
		s.commit()
	}
	s.selectAt(x, y)
}

func (s *Selection) KeyPress(code key.Code) {
	if !isDeleteKey(code) || s.focused == nil {
		return
	}
	s.focused = nil
	s.session = nil
	s.surface.Clear()
	s.setCursor(shape.DirNone)
}

func (s *Selection) Close() {
	s.session = nil
	if s.focused != nil {
		s.commit()
	}
	s.setCursor(shape.DirNone)
}

// apply transforms the focused shape by the motion since the last anchor.
func (s *Selection) apply(x, y float64) {
	t := s.session
	dx := x - t.anchorX
	dy := y - t.anchorY
	if dx == 0 && dy == 0 {
		return
	}
	switch {
	case t.direction == shape.DirCenter:
		s.focused.Move(dx, dy)
	case t.direction.Vertical():
		s.focused.Resize(t.direction, dy)
	case t.direction.Horizontal():
		s.focused.Resize(t.direction, dx)
	}
	t.anchorX = x
	t.anchorY = y
}

func (s *Selection) selectAt(x, y float64) {
	hit, ok := s.store.TopmostAt(x, y)
	if !ok {
		return
	}
	s.store.RemoveElement(hit.ID())
	s.focused = hit
	s.redraw()
}

// commit returns the focused shape to the store. Focus is released before
// the store notifies so the shape is never observable in both places.
func (s *Selection) commit() {
	f := s.focused
	s.focused = nil
	s.surface.Clear()
	f.Normalize()
	commitShape(s.store, f)
}

func (s *Selection) redraw() {
	s.surface.Clear()
	if s.focused != nil {
		s.surface.Render(s.focused, true)
	}
}

func (s *Selection) setCursor(d shape.Direction) {
	s.cursor = d
	if cs, ok := s.surface.(CursorSurface); ok {
		cs.SetCursor(d)
	}
}
