package graphics

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rect(10, 10, 20, 20)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(20, 20), true},
		{"top-left corner", Pt(10, 10), true},
		{"bottom-right corner is exclusive", Pt(30, 30), false},
		{"left of", Pt(5, 20), false},
		{"above", Pt(20, 5), false},
		{"right edge is exclusive", Pt(30, 20), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Rect(10,10,20,20).Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectangleIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rectangle
		want Rectangle
		ok   bool
	}{
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(5, 5, 5, 5), true},
		{"contained", Rect(0, 0, 100, 100), Rect(10, 10, 5, 5), Rect(10, 10, 5, 5), true},
		{"identical", Rect(1, 2, 3, 4), Rect(1, 2, 3, 4), Rect(1, 2, 3, 4), true},
		{"disjoint", Rect(0, 0, 10, 10), Rect(20, 20, 5, 5), Rectangle{}, false},
		{"touching edges", Rect(0, 0, 10, 10), Rect(10, 0, 10, 10), Rectangle{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersection(tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("%+v.Intersection(%+v) = %+v, %v; want %+v, %v",
					tt.a, tt.b, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestRectangleIntersectsMatchesIntersection(t *testing.T) {
	pairs := []struct{ a, b Rectangle }{
		{Rect(0, 0, 10, 10), Rect(5, 5, 10, 10)},
		{Rect(0, 0, 10, 10), Rect(20, 20, 5, 5)},
		{Rect(0, 0, 10, 10), Rect(10, 0, 10, 10)},
		{Rect(-5, -5, 10, 10), Rect(0, 0, 1, 1)},
	}
	for _, p := range pairs {
		_, ok := p.a.Intersection(p.b)
		if got := p.a.Intersects(p.b); got != ok {
			t.Errorf("%+v.Intersects(%+v) = %v but Intersection ok = %v",
				p.a, p.b, got, ok)
		}
	}
}

func TestRectangleCenter(t *testing.T) {
	r := Rect(10, 10, 100, 50)
	want := Pt(60, 35)
	if got := r.Center(); got != want {
		t.Errorf("Rect(10,10,100,50).Center() = %v, want %v", got, want)
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(Pt(3, 4), Sz(5, 6))
	if r != Rect(3, 4, 5, 6) {
		t.Errorf("RectAt(Pt(3,4), Sz(5,6)) = %+v, want Rect(3,4,5,6)", r)
	}
	if r.Position() != Pt(3, 4) || r.Size() != Sz(5, 6) {
		t.Errorf("Position/Size round trip failed: %v, %v", r.Position(), r.Size())
	}
}

func TestRectangleIsEmpty(t *testing.T) {
	if Rect(0, 0, 10, 10).IsEmpty() {
		t.Error("Rect(0,0,10,10).IsEmpty() = true, want false")
	}
	if !Rect(0, 0, 0, 10).IsEmpty() {
		t.Error("Rect(0,0,0,10).IsEmpty() = false, want true")
	}
	if !Rect(0, 0, 10, -1).IsEmpty() {
		t.Error("Rect(0,0,10,-1).IsEmpty() = false, want true")
	}
}

func TestInfiniteRectIsClipNeutral(t *testing.T) {
	finite := Rect(60, 70, 40, 30)

	got, ok := InfiniteRect().Intersection(finite)
	if !ok || got != finite {
		t.Errorf("InfiniteRect().Intersection(%v) = %v, %v; want the finite rect back", finite, got, ok)
	}
	got, ok = finite.Intersection(InfiniteRect())
	if !ok || got != finite {
		t.Errorf("%v.Intersection(InfiniteRect()) = %v, %v; want the finite rect back", finite, got, ok)
	}

	moved, ok := InfiniteRect().Add(Vec(100, -50)).Intersection(finite)
	if !ok || moved != finite {
		t.Errorf("translated infinite rect broke intersection: %v, %v", moved, ok)
	}
}
