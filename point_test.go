package crookedtext

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
}

func TestPointLength(t *testing.T) {
	if got := Pt(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(0, 0).Length(); got != 0 {
		t.Errorf("zero Length() = %v, want 0", got)
	}
}

func TestPointDistance(t *testing.T) {
	if got := Pt(1, 1).Distance(Pt(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointNormalize(t *testing.T) {
	const eps = 1e-10

	n := Pt(3, 4).Normalize()
	if math.Abs(n.Length()-1) > eps {
		t.Errorf("normalized length = %v, want 1", n.Length())
	}
	if math.Abs(n.X-0.6) > eps || math.Abs(n.Y-0.8) > eps {
		t.Errorf("Normalize = %v, want (0.6, 0.8)", n)
	}

	// The zero vector has no direction.
	if got := Pt(0, 0).Normalize(); got != Pt(0, 0) {
		t.Errorf("zero Normalize = %v, want (0, 0)", got)
	}
}

func TestPointRotate(t *testing.T) {
	const eps = 1e-10

	got := Pt(1, 0).Rotate(math.Pi / 2)
	if math.Abs(got.X) > eps || math.Abs(got.Y-1) > eps {
		t.Errorf("Rotate(pi/2) = %v, want (0, 1)", got)
	}

	// Matches the matrix rotation.
	m := Rotate(0.37)
	p := Pt(-2, 5)
	viaMatrix := m.TransformPoint(p)
	viaPoint := p.Rotate(0.37)
	if math.Abs(viaMatrix.X-viaPoint.X) > eps || math.Abs(viaMatrix.Y-viaPoint.Y) > eps {
		t.Errorf("Point.Rotate = %v, Matrix rotate = %v", viaPoint, viaMatrix)
	}
}
