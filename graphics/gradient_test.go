package graphics

import "testing"

func TestLinearGradientAddStopKeepsOrder(t *testing.T) {
	g := Linear(Pt(0, 0), Pt(100, 0)).
		AddStop(1.0, White).
		AddStop(0.0, Black).
		AddStop(0.5, Red)

	if len(g.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(g.Stops))
	}
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i-1].Offset > g.Stops[i].Offset {
			t.Errorf("stops out of order at %d: %v > %v",
				i, g.Stops[i-1].Offset, g.Stops[i].Offset)
		}
	}
	if g.Stops[1].Color != Red {
		t.Errorf("middle stop color = %+v, want Red", g.Stops[1].Color)
	}
}

func TestAddStopDoesNotMutateOriginal(t *testing.T) {
	base := Linear(Pt(0, 0), Pt(1, 0)).AddStop(0, Black)
	_ = base.AddStop(1, White)
	if len(base.Stops) != 1 {
		t.Errorf("AddStop mutated the receiver: %d stops", len(base.Stops))
	}
}

func TestRadialGradient(t *testing.T) {
	g := Radial(Pt(50, 50), 25).AddStop(0, White).AddStop(1, Transparent)
	if g.Center != Pt(50, 50) || g.Radius != 25 {
		t.Errorf("Radial(50,50,25) = %+v", g)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(g.Stops))
	}
}

func TestGradientIsBackgroundAndStyle(t *testing.T) {
	// Compile-time checks that gradients satisfy both roles.
	var _ Background = LinearGradient{}
	var _ Style = LinearGradient{}
	var _ Background = RadialGradient{}
	var _ Style = RadialGradient{}
	var _ Gradient = LinearGradient{}
	var _ Gradient = RadialGradient{}
}
