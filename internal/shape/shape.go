package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrInvalidExtent is returned when a drag is finalized with zero width or height.
var ErrInvalidExtent = errors.New("shape: invalid extent")

// DefaultTolerance is the border hover band, in pixels, used to detect resize handles.
const DefaultTolerance = 5.0

type Kind int

const (
	KindRectangle Kind = iota
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindRectangle:
		return "rectangle"
	case KindEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Box is an axis aligned box with its anchor at the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// Center returns the middle of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Painter receives the primitives a shape draws itself with.
type Painter interface {
	StrokeRect(b Box, dashed bool)
	FillRect(b Box)
	StrokeEllipse(cx, cy, rx, ry float64, dashed bool)
	FillEllipse(cx, cy, rx, ry float64)
}

// Shape is the capability set shared by every drawable element.
type Shape interface {
	ID() string
	Kind() Kind
	Bounds() Box
	SetStartPoint(x, y float64)
	SetEndPoint(x, y float64, finalize bool) error
	Normalize()
	Valid() bool
	Contains(x, y float64) bool
	CursorDirection(x, y, tolerance float64) Direction
	Resize(d Direction, delta float64)
	Move(dx, dy float64)
	Draw(p Painter, filled bool)
}

// New returns an uncommitted shape of the given kind with zero extent.
func New(k Kind) (Shape, error) {
	switch k {
	case KindRectangle:
		return NewRectangle(), nil
	case KindEllipse:
		return NewEllipse(), nil
	}
	return nil, fmt.Errorf("shape: unknown kind %v", k)
}

// element holds the geometry common to every variant.
type element struct {
	id   string
	x, y float64
	w, h float64
}

func newElement() element {
	return element{id: uuid.NewString()}
}

func (e *element) ID() string { return e.id }

func (e *element) Bounds() Box { return Box{X: e.x, Y: e.y, W: e.w, H: e.h} }

func (e *element) SetStartPoint(x, y float64) {
	e.x = x
	e.y = y
}

// SetEndPoint stretches the shape towards (x, y). A live preview keeps the
// raw signed extent; finalizing rejects a zero extent and moves the anchor
// to the true top-left corner.
func (e *element) SetEndPoint(x, y float64, finalize bool) error {
	w := x - e.x
	h := y - e.y
	if !finalize {
		e.w = w
		e.h = h
		return nil
	}
	if w == 0 || h == 0 {
		return ErrInvalidExtent
	}
	e.w = w
	e.h = h
	e.Normalize()
	return nil
}

func (e *element) Normalize() {
	if e.w < 0 {
		e.x += e.w
		e.w = -e.w
	}
	if e.h < 0 {
		e.y += e.h
		e.h = -e.h
	}
}

func (e *element) Valid() bool {
	return e.w > 0 && e.h > 0
}

// CursorDirection classifies (x, y) against the border. Edges are checked
// in the order N, S, W, E so corners resolve to the horizontal edges.
func (e *element) CursorDirection(x, y, tol float64) Direction {
	insideX := x > e.x && x < e.x+e.w
	insideY := y > e.y && y < e.y+e.h
	switch {
	case insideX && within(y, e.y, tol):
		return DirN
	case insideX && within(y, e.y+e.h, tol):
		return DirS
	case insideY && within(x, e.x, tol):
		return DirW
	case insideY && within(x, e.x+e.w, tol):
		return DirE
	case x > e.x+tol && x < e.x+e.w-tol && y > e.y+tol && y < e.y+e.h-tol:
		return DirCenter
	}
	return DirNone
}

func within(v, edge, tol float64) bool {
	return v > edge-tol && v < edge+tol
}

// Resize drags one edge by delta. Extents are not clamped.
func (e *element) Resize(d Direction, delta float64) {
	switch d {
	case DirN:
		e.y += delta
		e.h -= delta
	case DirS:
		e.h += delta
	case DirW:
		e.x += delta
		e.w -= delta
	case DirE:
		e.w += delta
	}
}

func (e *element) Move(dx, dy float64) {
	e.x += dx
	e.y += dy
}

func (e *element) String() string {
	return fmt.Sprintf("%s x=%g y=%g w=%g h=%g", e.id, e.x, e.y, e.w, e.h)
}

// Rectangle hit-tests against its closed bounding box.
type Rectangle struct {
	element
}

var _ Shape = (*Rectangle)(nil)

func NewRectangle() *Rectangle {
	return &Rectangle{element: newElement()}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Contains(x, y float64) bool {
	return x >= r.x && x <= r.x+r.w && y >= r.y && y <= r.y+r.h
}

func (r *Rectangle) Draw(p Painter, filled bool) {
	b := r.Bounds()
	if filled {
		p.FillRect(b)
	}
	p.StrokeRect(b, filled)
}

// Ellipse is inscribed in its bounding box.
type Ellipse struct {
	element
}

var _ Shape = (*Ellipse)(nil)

func NewEllipse() *Ellipse {
	return &Ellipse{element: newElement()}
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

// Radii returns the horizontal and vertical radius.
func (e *Ellipse) Radii() (float64, float64) {
	return e.w / 2, e.h / 2
}

func (e *Ellipse) Contains(x, y float64) bool {
	rx, ry := e.Radii()
	if rx == 0 || ry == 0 {
		return false
	}
	cx, cy := e.Bounds().Center()
	dx := (x - cx) / rx
	dy := (y - cy) / ry
	return dx*dx+dy*dy <= 1
}

func (e *Ellipse) Draw(p Painter, filled bool) {
	cx, cy := e.Bounds().Center()
	rx, ry := e.Radii()
	rx, ry = math.Abs(rx), math.Abs(ry)
	if filled {
		p.FillEllipse(cx, cy, rx, ry)
	}
	p.StrokeEllipse(cx, cy, rx, ry, filled)
}
