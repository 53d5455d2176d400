package orbital

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins.
func R3R1R3(θ1, θ2, θ3 float64) *mat64.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat64.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// PerifocalRotation returns the matrix sending orbital-plane
// coordinates into the solar-system frame for the given i, Ω and ω.
// Its first two columns are the P and Q basis vectors applied by
// ToSolarSystemFrame; building the matrix once pays off when rotating
// many samples of the same orbit.
func PerifocalRotation(i, Ω, ω float64) *mat64.Dense {
	return R3R1R3(-ω, -i, -Ω)
}

// MxV33 multiplies a 3x3 matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v Vector3) Vector3 {
	vVec := mat64.NewVector(3, []float64{v.X, v.Y, v.Z})
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return Vector3{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
