package orbital

import "math"

// OrbitalVelocity returns the instantaneous speed in AU/day at radius
// r on an orbit of semi-major axis a, via the vis-viva relation. The
// gravitational parameter is recovered from the period (μ = n²a³) so
// no physical constants are needed. v² can dip a few ulps below zero
// at r≈a or near apoapsis; the clamp absorbs that.
func OrbitalVelocity(a, r, period float64) (float64, error) {
	if err := checkPositive("semiMajorAxis", a); err != nil {
		return 0, err
	}
	if err := checkPositive("radius", r); err != nil {
		return 0, err
	}
	if err := checkPositive("orbitalPeriod", period); err != nil {
		return 0, err
	}
	n := 2 * math.Pi / period
	μ := n * n * a * a * a
	v2 := μ * (2/r - 1/a)
	return math.Sqrt(math.Max(0, v2)), nil
}

// OrbitalPhase returns the orbital phase fraction in [0,1) for any real
// time t, including negative times before the epoch.
func OrbitalPhase(t, period float64) (float64, error) {
	if err := checkFinite("time", t); err != nil {
		return 0, err
	}
	if err := checkPositive("orbitalPeriod", period); err != nil {
		return 0, err
	}
	frac := math.Mod(t, period) / period
	if frac < 0 {
		frac++
	}
	return frac, nil
}

// Apsides holds the two apsis distances of an elliptical orbit.
type Apsides struct {
	Perihelion, Aphelion float64
}

// OrbitalApsides returns the perihelion a(1-e) and aphelion a(1+e).
func OrbitalApsides(a, e float64) (Apsides, error) {
	if err := checkPositive("semiMajorAxis", a); err != nil {
		return Apsides{}, err
	}
	if err := checkEccentricity(e); err != nil {
		return Apsides{}, err
	}
	return Apsides{Perihelion: a * (1 - e), Aphelion: a * (1 + e)}, nil
}
