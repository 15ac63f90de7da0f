package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/shapedit/internal/shape"
	"github.com/google/uuid"
)

var (
	// ErrInvalidShape is returned when a shape without positive extent is committed.
	ErrInvalidShape = errors.New("store: shape is not valid")
	// ErrDuplicateID is returned when a shape with an already committed id is added.
	ErrDuplicateID = errors.New("store: duplicate shape id")
)

type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolEllipse
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rect"
	case ToolEllipse:
		return "ellipse"
	default:
		return fmt.Sprintf("Tool(%d)", int(t))
	}
}

// ParseTool accepts the names printed by Tool.String plus a few aliases.
func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "select", "cursor":
		return ToolSelect, nil
	case "rect", "rectangle":
		return ToolRectangle, nil
	case "ellipse", "circle":
		return ToolEllipse, nil
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Key names an observable field of the store.
type Key string

const (
	KeyTool     Key = "tool"
	KeyElements Key = "elements"
)

type subscription struct {
	id  string
	key Key
	fn  func()
}

// Store holds the committed shapes and the active tool. It is owned by a
// single event loop and performs no locking.
type Store struct {
	tool     Tool
	elements []shape.Shape
	subs     []subscription
}

// Option modifies a Store during creation.
type Option func(*Store)

// WithTool sets the initial tool.
func WithTool(t Tool) Option { return func(s *Store) { s.tool = t } }

// New creates an empty Store. The default tool is ToolSelect.
func New(opts ...Option) *Store {
	s := &Store{tool: ToolSelect}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Tool() Tool { return s.tool }

// SetTool changes the tool and notifies KeyTool subscribers, even when the
// value is unchanged.
func (s *Store) SetTool(t Tool) {
	s.tool = t
	s.notify(KeyTool)
}

// Elements returns a copy of the committed shapes in insertion order.
func (s *Store) Elements() []shape.Shape {
	out := make([]shape.Shape, len(s.elements))
	copy(out, s.elements)
	return out
}

func (s *Store) Len() int { return len(s.elements) }

// Contains reports whether a shape with id is committed.
func (s *Store) Contains(id string) bool {
	return s.index(id) >= 0
}

// AddElement commits sh and notifies KeyElements subscribers.
func (s *Store) AddElement(sh shape.Shape) error {
	if sh == nil || !sh.Valid() {
		return ErrInvalidShape
	}
	if s.index(sh.ID()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, sh.ID())
	}
	s.elements = append(s.elements, sh)
	s.notify(KeyElements)
	return nil
}

// RemoveElement drops the shape with id. Subscribers are notified even if
// nothing matched.
func (s *Store) RemoveElement(id string) {
	if i := s.index(id); i >= 0 {
		s.elements = append(s.elements[:i:i], s.elements[i+1:]...)
	}
	s.notify(KeyElements)
}

// TopmostAt returns the most recently committed shape containing (x, y).
func (s *Store) TopmostAt(x, y float64) (shape.Shape, bool) {
	for i := len(s.elements) - 1; i >= 0; i-- {
		if s.elements[i].Contains(x, y) {
			return s.elements[i], true
		}
	}
	return nil, false
}

func (s *Store) index(id string) int {
	for i, e := range s.elements {
		if e.ID() == id {
			return i
		}
	}
	return -1
}

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	store *Store
	id    string
}

// Subscribe registers fn to run synchronously after every mutation of key.
// Callbacks run in registration order.
func (s *Store) Subscribe(key Key, fn func()) *Subscription {
	id := uuid.NewString()
	s.subs = append(s.subs, subscription{id: id, key: key, fn: fn})
	return &Subscription{store: s, id: id}
}

// Remove deregisters the callback. It is safe to call more than once.
func (h *Subscription) Remove() {
	if h == nil || h.store == nil {
		return
	}
	s := h.store
	for i, sub := range s.subs {
		if sub.id == h.id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			break
		}
	}
	h.store = nil
}

func (s *Store) notify(key Key) {
	subs := s.subs
	for _, sub := range subs {
		if sub.key != key || !s.subscribed(sub.id) {
			continue
		}
		sub.fn()
	}
}

func (s *Store) subscribed(id string) bool {
	for _, sub := range s.subs {
		if sub.id == id {
			return true
		}
	}
	return false
}
