package orbital

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Vector3 is an immutable Cartesian triple. The frame and units of a
// given vector are a calling convention (heliocentric ecliptic, AU,
// throughout this package), not a property of the value.
type Vector3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean length.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns s*v.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{s * v.X, s * v.Y, s * v.Z}
}

// Dot returns the inner product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Unit returns the unit vector of v, or the nil vector if v is one.
func (v Vector3) Unit() Vector3 {
	n := v.Norm()
	if floats.EqualWithinAbs(n, 0, 1e-12) {
		return Vector3{}
	}
	return v.Scale(1 / n)
}

func (v Vector3) String() string {
	return fmt.Sprintf("[%f %f %f]", v.X, v.Y, v.Z)
}
