package store

import (
	"errors"
	"testing"

	"github.com/example/shapedit/internal/shape"
)

func rect(t *testing.T, x0, y0, x1, y1 float64) *shape.Rectangle {
	t.Helper()
	r := shape.NewRectangle()
	r.SetStartPoint(x0, y0)
	if err := r.SetEndPoint(x1, y1, true); err != nil {
		t.Fatalf("SetEndPoint: %v", err)
	}
	return r
}

func TestDefaultToolIsSelect(t *testing.T) {
	if got := New().Tool(); got != ToolSelect {
		t.Fatalf("got %v", got)
	}
	if got := New(WithTool(ToolEllipse)).Tool(); got != ToolEllipse {
		t.Fatalf("WithTool: got %v", got)
	}
}

func TestAddAndRemoveElement(t *testing.T) {
	s := New()
	r := rect(t, 0, 0, 10, 10)
	if err := s.AddElement(r); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	if s.Len() != 1 || !s.Contains(r.ID()) {
		t.Fatalf("expected one element")
	}
	s.RemoveElement(r.ID())
	if s.Len() != 0 {
		t.Fatalf("expected empty store, got %d", s.Len())
	}
	s.RemoveElement("missing")
	if s.Len() != 0 {
		t.Fatalf("removing a missing id should be a no-op")
	}
}

func TestAddElementRejectsInvalidAndDuplicate(t *testing.T) {
	s := New()
	calls := 0
	s.Subscribe(KeyElements, func() { calls++ })

	if err := s.AddElement(shape.NewRectangle()); !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("expected ErrInvalidShape, got %v", err)
	}
	r := rect(t, 0, 0, 5, 5)
	if err := s.AddElement(r); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	if err := s.AddElement(r); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if s.Len() != 1 || calls != 1 {
		t.Fatalf("len=%d calls=%d", s.Len(), calls)
	}
}

func TestElementsReturnsCopy(t *testing.T) {
	s := New()
	if err := s.AddElement(rect(t, 0, 0, 5, 5)); err != nil {
		t.Fatal(err)
	}
	els := s.Elements()
	els[0] = nil
	if s.Elements()[0] == nil {
		t.Fatalf("mutating the returned slice changed the store")
	}
}

func TestSubscribeTool(t *testing.T) {
	s := New()
	calls := 0
	sub := s.Subscribe(KeyTool, func() { calls++ })
	s.SetTool(ToolRectangle)
	if calls != 1 {
		t.Fatalf("expected one call, got %d", calls)
	}
	s.SetTool(ToolRectangle)
	if calls != 2 {
		t.Fatalf("setting the same tool should still notify, got %d", calls)
	}
	sub.Remove()
	sub.Remove()
	s.SetTool(ToolSelect)
	if calls != 2 {
		t.Fatalf("removed subscription was called, got %d", calls)
	}
}

func TestSubscriptionsAreKeyScopedAndOrdered(t *testing.T) {
	s := New()
	var order []string
	s.Subscribe(KeyElements, func() { order = append(order, "a") })
	s.Subscribe(KeyTool, func() { order = append(order, "tool") })
	s.Subscribe(KeyElements, func() { order = append(order, "b") })

	if err := s.AddElement(rect(t, 0, 0, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestSubscriptionCanRemoveItself(t *testing.T) {
	s := New()
	calls := 0
	var sub *Subscription
	sub = s.Subscribe(KeyTool, func() {
		calls++
		sub.Remove()
	})
	other := 0
	s.Subscribe(KeyTool, func() { other++ })
	s.SetTool(ToolEllipse)
	s.SetTool(ToolSelect)
	if calls != 1 || other != 2 {
		t.Fatalf("calls=%d other=%d", calls, other)
	}
}

func TestTopmostAtPrefersNewest(t *testing.T) {
	s := New()
	older := rect(t, 0, 0, 20, 20)
	newer := rect(t, 10, 10, 30, 30)
	for _, r := range []*shape.Rectangle{older, newer} {
		if err := s.AddElement(r); err != nil {
			t.Fatal(err)
		}
	}
	got, ok := s.TopmostAt(15, 15)
	if !ok || got.ID() != newer.ID() {
		t.Fatalf("expected newer shape on top")
	}
	got, ok = s.TopmostAt(5, 5)
	if !ok || got.ID() != older.ID() {
		t.Fatalf("expected older shape")
	}
	if _, ok := s.TopmostAt(100, 100); ok {
		t.Fatalf("expected no hit")
	}
}

func TestParseTool(t *testing.T) {
	for _, tool := range []Tool{ToolSelect, ToolRectangle, ToolEllipse} {
		got, err := ParseTool(tool.String())
		if err != nil || got != tool {
			t.Fatalf("%v: got %v err %v", tool, got, err)
		}
	}
	if _, err := ParseTool("polygon"); err == nil {
		t.Fatalf("expected error")
	}
}
