package shape

import (
	"errors"
	"testing"
)

func finalized(t *testing.T, s Shape, x0, y0, x1, y1 float64) {
	t.Helper()
	s.SetStartPoint(x0, y0)
	if err := s.SetEndPoint(x1, y1, true); err != nil {
		t.Fatalf("SetEndPoint: %v", err)
	}
}

func TestSetEndPointPreviewKeepsSign(t *testing.T) {
	r := NewRectangle()
	r.SetStartPoint(10, 10)
	if err := r.SetEndPoint(4, 2, false); err != nil {
		t.Fatalf("preview: %v", err)
	}
	b := r.Bounds()
	if b.X != 10 || b.Y != 10 || b.W != -6 || b.H != -8 {
		t.Fatalf("unexpected preview bounds %+v", b)
	}
	if r.Valid() {
		t.Fatalf("negative extent should not be valid")
	}
}

func TestSetEndPointZeroExtent(t *testing.T) {
	cases := [][2]float64{{10, 10}, {10, 30}, {30, 10}}
	for _, c := range cases {
		r := NewRectangle()
		r.SetStartPoint(10, 10)
		if err := r.SetEndPoint(c[0], c[1], true); !errors.Is(err, ErrInvalidExtent) {
			t.Fatalf("end %v: expected ErrInvalidExtent, got %v", c, err)
		}
	}
}

func TestSetEndPointNormalizesNegativeDrag(t *testing.T) {
	r := NewRectangle()
	finalized(t, r, 10, 10, 5, 5)
	if got := r.Bounds(); got != (Box{X: 5, Y: 5, W: 5, H: 5}) {
		t.Fatalf("got %+v", got)
	}
	if !r.Valid() {
		t.Fatalf("expected valid shape")
	}
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle()
	finalized(t, r, 10, 10, 30, 30)
	if !r.Contains(20, 20) {
		t.Errorf("expected (20,20) inside")
	}
	if !r.Contains(10, 30) {
		t.Errorf("expected border point inside")
	}
	if r.Contains(31, 31) {
		t.Errorf("expected (31,31) outside")
	}
}

func TestEllipseContains(t *testing.T) {
	e := NewEllipse()
	finalized(t, e, 0, 0, 40, 20)
	if !e.Contains(20, 10) {
		t.Errorf("centre should be inside")
	}
	if !e.Contains(40, 10) {
		t.Errorf("rightmost point should be inside")
	}
	if e.Contains(2, 2) {
		t.Errorf("bounding box corner should be outside")
	}
}

func TestCursorDirection(t *testing.T) {
	r := NewRectangle()
	finalized(t, r, 10, 10, 30, 30)
	cases := []struct {
		x, y float64
		want Direction
	}{
		{30, 15, DirE},
		{20, 10, DirN},
		{20, 31, DirS},
		{9, 20, DirW},
		{20, 20, DirCenter},
		{28, 12, DirN},
		{50, 50, DirNone},
		{10, 10, DirNone},
	}
	for _, c := range cases {
		if got := r.CursorDirection(c.x, c.y, DefaultTolerance); got != c.want {
			t.Errorf("(%v,%v): got %q want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestResize(t *testing.T) {
	r := NewRectangle()
	finalized(t, r, 10, 10, 20, 20)
	r.Resize(DirW, -5)
	if got := r.Bounds(); got != (Box{X: 5, Y: 10, W: 15, H: 10}) {
		t.Fatalf("west: got %+v", got)
	}
	r.Resize(DirE, -5)
	if got := r.Bounds().W; got != 10 {
		t.Fatalf("east: width %v", got)
	}
	r.Resize(DirN, 2)
	r.Resize(DirS, 4)
	if got := r.Bounds(); got.Y != 12 || got.H != 12 {
		t.Fatalf("vertical: got %+v", got)
	}
	r.Resize(DirCenter, 100)
	if got := r.Bounds(); got != (Box{X: 5, Y: 12, W: 10, H: 12}) {
		t.Fatalf("centre resize should be ignored, got %+v", got)
	}
}

func TestResizeIsNotClamped(t *testing.T) {
	r := NewRectangle()
	finalized(t, r, 0, 0, 10, 10)
	r.Resize(DirE, -15)
	if r.Bounds().W != -5 || r.Valid() {
		t.Fatalf("expected unclamped negative width, got %+v", r.Bounds())
	}
	r.Normalize()
	if got := r.Bounds(); got != (Box{X: -5, Y: 0, W: 5, H: 10}) {
		t.Fatalf("normalize: got %+v", got)
	}
}

func TestMove(t *testing.T) {
	e := NewEllipse()
	finalized(t, e, 0, 0, 10, 10)
	e.Move(3, -4)
	if got := e.Bounds(); got.X != 3 || got.Y != -4 || got.W != 10 {
		t.Fatalf("got %+v", got)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		s, err := New(KindEllipse)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if seen[s.ID()] {
			t.Fatalf("duplicate id %s", s.ID())
		}
		seen[s.ID()] = true
	}
}

type recordingPainter struct {
	ops []string
}

func (p *recordingPainter) StrokeRect(Box, bool) { p.ops = append(p.ops, "stroke-rect") }
func (p *recordingPainter) FillRect(Box) { p.ops = append(p.ops, "fill-rect") }
func (p *recordingPainter) StrokeEllipse(_, _, _, _ float64, _ bool) { p.ops = append(p.ops, "stroke-ellipse") }
func (p *recordingPainter) FillEllipse(_, _, _, _ float64) { p.ops = append(p.ops, "fill-ellipse") }

func TestDrawDispatch(t *testing.T) {
	p := &recordingPainter{}
	NewRectangle().Draw(p, false)
	NewEllipse().Draw(p, true)
	want := []string{"stroke-rect", "fill-ellipse", "stroke-ellipse"}
	if len(p.ops) != len(want) {
		t.Fatalf("got %v want %v", p.ops, want)
	}
	for i := range want {
		if p.ops[i] != want[i] {
			t.Fatalf("got %v want %v", p.ops, want)
		}
	}
}

func TestDirectionCursor(t *testing.T) {
	if DirE.Cursor() != "e-resize" || DirCenter.Cursor() != "move" || DirNone.Cursor() != "default" {
		t.Fatalf("unexpected cursor names")
	}
}
