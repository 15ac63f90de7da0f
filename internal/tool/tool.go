// Package tool turns pointer and keyboard events into shape creation,
// selection and transformation.
package tool

import (
	"errors"
	"log"

	"github.com/example/shapedit/internal/shape"
	"github.com/example/shapedit/internal/store"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"
)

// ErrNoRenderingContext is returned when a controller is built without a surface.
var ErrNoRenderingContext = errors.New("tool: no rendering context")

// Surface is the preview layer a controller draws in-progress shapes onto.
type Surface interface {
	Render(s shape.Shape, filled bool)
	Clear()
}

// CursorSurface is implemented by surfaces that can show a pointer affordance.
type CursorSurface interface {
	SetCursor(d shape.Direction)
}

// Controller is the event sink for the active tool.
type Controller interface {
	PointerDown(x, y float64, button mouse.Button)
	PointerMove(x, y float64, held bool)
	PointerUp(x, y float64)
	KeyPress(code key.Code)
	// Close releases the controller. Any checked out shape is committed back.
	Close()
}

func isDeleteKey(code key.Code) bool {
	return code == key.CodeDeleteForward || code == key.CodeDeleteBackspace
}

// commitShape adds s to st. A rejection is logged and s is dropped.
func commitShape(st *store.Store, s shape.Shape) bool {
	if err := st.AddElement(s); err != nil {
		log.Printf("commit shape %s: %v", s.ID(), err)
		return false
	}
	return true
}
