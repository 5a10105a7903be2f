package geom

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, -4)

	if got := p.Add(q); got != Pt(4, -2) {
		t.Errorf("Add = %v, want (4,-2)", got)
	}
	if got := p.Sub(q); got != Pt(-2, 6) {
		t.Errorf("Sub = %v, want (-2,6)", got)
	}
	if got := p.Mul(2); got != Pt(2, 4) {
		t.Errorf("Mul = %v, want (2,4)", got)
	}
	if got := p.Div(2); got != Pt(0.5, 1) {
		t.Errorf("Div = %v, want (0.5,1)", got)
	}
}

func TestDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if got := a.Distance(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestScale(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0.5, 1)}
	scaled := Scale(pts, 400)
	want := []Point{Pt(0, 0), Pt(200, 400)}
	for i := range want {
		if scaled[i] != want[i] {
			t.Errorf("Scale[%d] = %v, want %v", i, scaled[i], want[i])
		}
	}
	if pts[1] != Pt(0.5, 1) {
		t.Errorf("Scale mutated its input: %v", pts[1])
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := Bounds(nil); ok {
		t.Fatal("Bounds(nil) reported ok")
	}
	min, max, ok := Bounds([]Point{Pt(2, 3), Pt(-1, 7), Pt(4, 0)})
	if !ok {
		t.Fatal("Bounds reported !ok for a non-empty slice")
	}
	if min != Pt(-1, 0) || max != Pt(4, 7) {
		t.Errorf("Bounds = %v..%v, want (-1,0)..(4,7)", min, max)
	}
}
