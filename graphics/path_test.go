package graphics

import (
	"math"
	"testing"
)

func TestBuilderElements(t *testing.T) {
	p := NewPath(func(b *Builder) {
		b.MoveTo(Pt(0, 0))
		b.LineTo(Pt(10, 0))
		b.QuadraticTo(Pt(15, 5), Pt(10, 10))
		b.Close()
	})

	elems := p.Elements()
	if len(elems) != 4 {
		t.Fatalf("got %d elements, want 4", len(elems))
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("element 0 is %T, want MoveTo", elems[0])
	}
	if lt, ok := elems[1].(LineTo); !ok || lt.Point != Pt(10, 0) {
		t.Errorf("element 1 = %+v, want LineTo(10,0)", elems[1])
	}
	if _, ok := elems[2].(QuadTo); !ok {
		t.Errorf("element 2 is %T, want QuadTo", elems[2])
	}
	if _, ok := elems[3].(Close); !ok {
		t.Errorf("element 3 is %T, want Close", elems[3])
	}
}

func TestBuilderCloseReturnsToStart(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(Pt(5, 5))
	b.LineTo(Pt(20, 20))
	b.Close()
	if got := b.CurrentPoint(); got != Pt(5, 5) {
		t.Errorf("CurrentPoint after Close = %v, want (5,5)", got)
	}
}

func TestRectanglePath(t *testing.T) {
	p := RectanglePath(Pt(1, 2), Sz(10, 20))
	elems := p.Elements()
	// MoveTo + 3 LineTo + Close
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	mt := elems[0].(MoveTo)
	if mt.Point != Pt(1, 2) {
		t.Errorf("rectangle starts at %v, want (1,2)", mt.Point)
	}
	lt := elems[2].(LineTo)
	if lt.Point != Pt(11, 22) {
		t.Errorf("opposite corner at %v, want (11,22)", lt.Point)
	}
}

func TestCirclePathBounds(t *testing.T) {
	p := CirclePath(Pt(50, 50), 10)
	if p.IsEmpty() {
		t.Fatal("circle path is empty")
	}
	b := p.Bounds()
	// The control polygon of the Bezier approximation stays within the
	// bounding square of the circle.
	if b.X < 39.9 || b.Y < 39.9 || b.X+b.Width > 60.1 || b.Y+b.Height > 60.1 {
		t.Errorf("circle bounds = %+v, want within (40,40)-(60,60)", b)
	}
}

func TestLinePath(t *testing.T) {
	p := LinePath(Pt(0, 0), Pt(3, 4))
	elems := p.Elements()
	if len(elems) != 2 {
		t.Fatalf("got %d elements, want 2", len(elems))
	}
	if elems[1].(LineTo).Point != Pt(3, 4) {
		t.Errorf("line ends at %v, want (3,4)", elems[1].(LineTo).Point)
	}
}

func TestPathTransform(t *testing.T) {
	p := LinePath(Pt(0, 0), Pt(10, 0))
	moved := p.Transform(Translate(5, 5))

	elems := moved.Elements()
	if got := elems[0].(MoveTo).Point; got != Pt(5, 5) {
		t.Errorf("transformed start = %v, want (5,5)", got)
	}
	if got := elems[1].(LineTo).Point; got != Pt(15, 5) {
		t.Errorf("transformed end = %v, want (15,5)", got)
	}

	// Original is unchanged.
	if got := p.Elements()[0].(MoveTo).Point; got != Pt(0, 0) {
		t.Errorf("original mutated: start = %v", got)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	p := NewPath(func(b *Builder) {})
	if b := p.Bounds(); b != (Rectangle{}) {
		t.Errorf("empty path bounds = %+v, want zero", b)
	}
}

func TestArcStaysOnCircle(t *testing.T) {
	b := NewBuilder()
	b.Arc(Pt(0, 0), 10, 0, math.Pi)
	p := b.Build()

	// Every on-curve endpoint must lie on the circle.
	for _, e := range p.Elements() {
		var pt Point
		switch el := e.(type) {
		case MoveTo:
			pt = el.Point
		case CubicTo:
			pt = el.Point
		default:
			continue
		}
		d := pt.Distance(Pt(0, 0))
		if math.Abs(d-10) > 1e-6 {
			t.Errorf("arc point %v at distance %v from center, want 10", pt, d)
		}
	}
}
