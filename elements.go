// Package orbital computes instantaneous positions and derived scalars
// for bodies on Keplerian elliptical orbits around the Sun. Lengths are
// in astronomical units, times in days and angles in radians unless a
// function says otherwise. Every operation is a pure function of its
// arguments, so concurrent use needs no synchronization.
package orbital

import (
	"fmt"
	"math"
)

// OrbitalElements defines an elliptical orbit via its classical
// elements. Values are validated once at construction; the zero value
// is not a usable orbit.
type OrbitalElements struct {
	a, e, i, Ω, ω float64
	period        float64
	m0            float64 // mean anomaly at epoch, radians
}

// NewElements builds a validated element set. The semi-major axis a is
// in AU and the period in days. The angles i, Ω and ω are in radians
// and may be omitted as 0. m0Deg, the mean anomaly at the time origin,
// is in degrees per the catalog convention and defaults to 0, which
// places the body at perihelion at t=0.
func NewElements(a, e, i, Ω, ω, period, m0Deg float64) (OrbitalElements, error) {
	if err := checkPositive("semiMajorAxis", a); err != nil {
		return OrbitalElements{}, err
	}
	if err := checkEccentricity(e); err != nil {
		return OrbitalElements{}, err
	}
	if err := checkPositive("orbitalPeriod", period); err != nil {
		return OrbitalElements{}, err
	}
	angles := []struct {
		name string
		val  float64
	}{
		{"inclination", i},
		{"longitudeOfAscendingNode", Ω},
		{"argumentOfPerihelion", ω},
		{"meanAnomalyAtEpoch", m0Deg},
	}
	for _, p := range angles {
		if err := checkFinite(p.name, p.val); err != nil {
			return OrbitalElements{}, err
		}
	}
	return OrbitalElements{a, e, i, Ω, ω, period, m0Deg * deg2rad}, nil
}

// MustElements is NewElements for statically known element sets, such
// as the built-in planet catalog. It panics on invalid input.
func MustElements(a, e, i, Ω, ω, period, m0Deg float64) OrbitalElements {
	el, err := NewElements(a, e, i, Ω, ω, period, m0Deg)
	if err != nil {
		panic(err)
	}
	return el
}

// SemiMajorAxis returns a in AU.
func (el OrbitalElements) SemiMajorAxis() float64 { return el.a }

// Eccentricity returns e.
func (el OrbitalElements) Eccentricity() float64 { return el.e }

// Inclination returns i in radians.
func (el OrbitalElements) Inclination() float64 { return el.i }

// AscendingNode returns Ω in radians.
func (el OrbitalElements) AscendingNode() float64 { return el.Ω }

// ArgPerihelion returns ω in radians.
func (el OrbitalElements) ArgPerihelion() float64 { return el.ω }

// Period returns the orbital period in days.
func (el OrbitalElements) Period() float64 { return el.period }

// MeanMotion returns n = 2π/period in radians per day.
func (el OrbitalElements) MeanMotion() float64 {
	return 2 * math.Pi / el.period
}

// MeanAnomalyAt returns the mean anomaly at time t (days), offset by
// the epoch anomaly. Like MeanAnomaly, the result is not wrapped.
func (el OrbitalElements) MeanAnomalyAt(t float64) (float64, error) {
	M, err := MeanAnomaly(t, el.period)
	if err != nil {
		return 0, err
	}
	return el.m0 + M, nil
}

// SemiParameter returns the semi-latus rectum p = a(1-e²).
func (el OrbitalElements) SemiParameter() float64 {
	return el.a * (1 - el.e*el.e)
}

// Perihelion returns the closest distance to the focus.
func (el OrbitalElements) Perihelion() float64 {
	return el.a * (1 - el.e)
}

// Aphelion returns the farthest distance from the focus.
func (el OrbitalElements) Aphelion() float64 {
	return el.a * (1 + el.e)
}

// String implements the stringer interface.
func (el OrbitalElements) String() string {
	return fmt.Sprintf("a=%.6f e=%.6f i=%.3f Ω=%.3f ω=%.3f P=%.3f",
		el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ω), el.period)
}
