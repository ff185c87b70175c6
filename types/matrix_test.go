package types

import (
	"math"
	"testing"
)

func TestRotateY(t *testing.T) {
	type spec struct {
		angle float64
		in    Vec3
		exp   Vec3
	}
	specs := []spec{
		{0, XYZ(1, 2, 3), XYZ(1, 2, 3)},
		{math.Pi / 2, XYZ(1, 0, 0), XYZ(0, 0, -1)},
		{math.Pi / 2, XYZ(0, 0, 1), XYZ(1, 0, 0)},
		{math.Pi, XYZ(1, 5, 1), XYZ(-1, 5, -1)},
	}

	for index, s := range specs {
		out := RotateY(s.angle).Mul3x1(s.in)
		if !out.ApproxEqual(s.exp, 1e-12) {
			t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, out)
		}
	}
}

func TestRotateYComposition(t *testing.T) {
	step := RotateY(math.Pi / 10)
	v := XYZ(0.75, 0.1, 2.25)
	out := v
	for i := 0; i < 20; i++ {
		out = step.Mul3x1(out)
	}

	if !out.ApproxEqual(v, 1e-12) {
		t.Fatalf("expected full turn to be identity; got %v", out)
	}
}

func TestVectorNormalize(t *testing.T) {
	if n := XYZ(0, 0, 0).Normalize(); n != XYZ(0, 0, 0) {
		t.Fatalf("expected zero vector to normalize to itself; got %v", n)
	}
	if l := XYZ(3, 0, 4).Normalize().Len(); math.Abs(l-1) > 1e-12 {
		t.Fatalf("expected unit length; got %f", l)
	}
}
