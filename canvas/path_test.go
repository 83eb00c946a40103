package canvas

import (
	"math"
	"testing"
)

func TestPathBuilding(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path not empty")
	}

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(9, 10, 11, 12, 13, 14)

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4", len(elems))
	}

	if e, ok := elems[0].(MoveTo); !ok || e.Point != Pt(1, 2) {
		t.Errorf("element 0 = %+v, want MoveTo(1, 2)", elems[0])
	}
	if e, ok := elems[1].(LineTo); !ok || e.Point != Pt(3, 4) {
		t.Errorf("element 1 = %+v, want LineTo(3, 4)", elems[1])
	}
	if e, ok := elems[2].(QuadTo); !ok || e.Control != Pt(5, 6) || e.Point != Pt(7, 8) {
		t.Errorf("element 2 = %+v, want QuadTo", elems[2])
	}
	if e, ok := elems[3].(CubicTo); !ok || e.Control1 != Pt(9, 10) || e.Control2 != Pt(11, 12) || e.Point != Pt(13, 14) {
		t.Errorf("element 3 = %+v, want CubicTo", elems[3])
	}

	if got := p.CurrentPoint(); got != Pt(13, 14) {
		t.Errorf("CurrentPoint = %v, want (13, 14)", got)
	}
}

func TestPathClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 20)
	p.LineTo(30, 40)
	p.Close()

	if got := p.CurrentPoint(); got != Pt(10, 20) {
		t.Errorf("CurrentPoint after Close = %v, want subpath start (10, 20)", got)
	}
	if _, ok := p.Elements()[2].(Close); !ok {
		t.Errorf("element 2 = %+v, want Close", p.Elements()[2])
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()

	if !p.IsEmpty() {
		t.Error("path not empty after Clear")
	}
	if got := p.CurrentPoint(); got != Pt(0, 0) {
		t.Errorf("CurrentPoint after Clear = %v, want origin", got)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)

	moved := p.Transform(Translate(10, 20))

	if e := moved.Elements()[0].(MoveTo); e.Point != Pt(11, 22) {
		t.Errorf("transformed MoveTo = %v, want (11, 22)", e.Point)
	}
	if e := moved.Elements()[1].(LineTo); e.Point != Pt(13, 24) {
		t.Errorf("transformed LineTo = %v, want (13, 24)", e.Point)
	}
	// Original must be untouched.
	if e := p.Elements()[0].(MoveTo); e.Point != Pt(1, 2) {
		t.Errorf("original MoveTo = %v, want (1, 2)", e.Point)
	}
}

func TestPathAppend(t *testing.T) {
	a := NewPath()
	a.MoveTo(0, 0)
	a.LineTo(1, 0)

	b := NewPath()
	b.MoveTo(5, 5)
	b.LineTo(6, 5)

	a.Append(b)

	if got := len(a.Elements()); got != 4 {
		t.Fatalf("got %d elements, want 4", got)
	}
	if got := a.CurrentPoint(); got != Pt(6, 5) {
		t.Errorf("CurrentPoint = %v, want (6, 5)", got)
	}
}

func TestPathRectangle(t *testing.T) {
	p := NewPath()
	p.Rectangle(1, 2, 10, 20)

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	if e := elems[0].(MoveTo); e.Point != Pt(1, 2) {
		t.Errorf("start = %v, want (1, 2)", e.Point)
	}
	if e := elems[2].(LineTo); e.Point != Pt(11, 22) {
		t.Errorf("far corner = %v, want (11, 22)", e.Point)
	}
	if _, ok := elems[4].(Close); !ok {
		t.Error("rectangle not closed")
	}
}

func TestPathCircle(t *testing.T) {
	p := NewPath()
	p.Circle(10, 20, 5)

	elems := p.Elements()
	if len(elems) != 6 {
		t.Fatalf("got %d elements, want 6", len(elems))
	}
	if e := elems[0].(MoveTo); e.Point != Pt(15, 20) {
		t.Errorf("start = %v, want (15, 20)", e.Point)
	}

	// The four cubic endpoints land on the circle's cardinal points.
	wantEnds := []Point{Pt(10, 25), Pt(5, 20), Pt(10, 15), Pt(15, 20)}
	for i, want := range wantEnds {
		e, ok := elems[1+i].(CubicTo)
		if !ok {
			t.Fatalf("element %d = %+v, want CubicTo", 1+i, elems[1+i])
		}
		if !pointsClose(e.Point, want, 1e-9) {
			t.Errorf("segment %d endpoint = %v, want %v", i, e.Point, want)
		}
	}
}

func TestPathArc(t *testing.T) {
	t.Run("quarter", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, math.Pi/2)

		elems := p.Elements()
		if len(elems) != 2 {
			t.Fatalf("got %d elements, want 2", len(elems))
		}
		if e := elems[0].(MoveTo); !pointsClose(e.Point, Pt(10, 0), 1e-9) {
			t.Errorf("start = %v, want (10, 0)", e.Point)
		}
		if e := elems[1].(CubicTo); !pointsClose(e.Point, Pt(0, 10), 1e-9) {
			t.Errorf("end = %v, want (0, 10)", e.Point)
		}
	})

	t.Run("full turn", func(t *testing.T) {
		p := NewPath()
		p.Arc(0, 0, 10, 0, 2*math.Pi)

		elems := p.Elements()
		if len(elems) != 5 {
			t.Fatalf("got %d elements, want 5", len(elems))
		}
		end := elems[4].(CubicTo).Point
		if !pointsClose(end, Pt(10, 0), 1e-9) {
			t.Errorf("end = %v, want start (10, 0)", end)
		}
	})

	t.Run("wrapped sweep", func(t *testing.T) {
		// angle2 below angle1 normalizes up by a full turn.
		p := NewPath()
		p.Arc(0, 0, 10, math.Pi/2, 0)

		end := p.Elements()[len(p.Elements())-1].(CubicTo).Point
		if !pointsClose(end, Pt(10, 0), 1e-9) {
			t.Errorf("end = %v, want (10, 0)", end)
		}
	})
}

// Arc control points keep the curve within a small fraction of the
// radius from the true circle.
func TestPathArcAccuracy(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 100, 0, math.Pi/2)

	seg := p.Elements()[1].(CubicTo)
	start := Pt(100, 0)

	for _, bt := range []float64{0.25, 0.5, 0.75} {
		pt := cubicAt(start, seg.Control1, seg.Control2, seg.Point, bt)
		r := pt.Length()
		if math.Abs(r-100) > 0.05 {
			t.Errorf("t=%v: radius %v strays from 100", bt, r)
		}
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
		Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
	}
}
