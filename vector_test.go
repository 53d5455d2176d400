package orbital

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := Vector3{1, 0, 0}
	j := Vector3{0, 1, 0}
	k := Vector3{0, 0, 1}
	if !vectorsEqual(i.Cross(j), k, 1e-12) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(j.Cross(k), i, 1e-12) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(Vector3{2, 3, 4}.Cross(Vector3{5, 6, 7}), Vector3{-3, 6, -3}, 1e-12) {
		t.Fatal("cross fail")
	}
}

func TestNormDot(t *testing.T) {
	v := Vector3{3, 4, 0}
	if !floats.EqualWithinAbs(v.Norm(), 5, 1e-12) {
		t.Fatalf("|v| = %f", v.Norm())
	}
	if !floats.EqualWithinAbs(v.Dot(Vector3{1, 1, 7}), 7, 1e-12) {
		t.Fatalf("dot = %f", v.Dot(Vector3{1, 1, 7}))
	}
	if !vectorsEqual(v.Unit(), Vector3{0.6, 0.8, 0}, 1e-12) {
		t.Fatalf("unit = %s", v.Unit())
	}
	if !vectorsEqual(Vector3{}.Unit(), Vector3{}, 0) {
		t.Fatal("unit of the nil vector must be the nil vector")
	}
}

func TestVectorArithmetic(t *testing.T) {
	a := Vector3{1, -2, 3}
	b := Vector3{4, 5, -6}
	if !vectorsEqual(a.Add(b), Vector3{5, 3, -3}, 1e-12) {
		t.Fatal("add fail")
	}
	if !vectorsEqual(a.Sub(b), Vector3{-3, -7, 9}, 1e-12) {
		t.Fatal("sub fail")
	}
	if !vectorsEqual(a.Scale(-2), Vector3{-2, 4, -6}, 1e-12) {
		t.Fatal("scale fail")
	}
}
