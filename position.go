package orbital

import "math"

// PlanePosition returns the position in the orbital plane for a true
// anomaly ν, with perihelion on the +x axis and z identically zero.
func PlanePosition(a, e, ν float64) (Vector3, error) {
	if err := checkPositive("semiMajorAxis", a); err != nil {
		return Vector3{}, err
	}
	if err := checkEccentricity(e); err != nil {
		return Vector3{}, err
	}
	if err := checkFinite("trueAnomaly", ν); err != nil {
		return Vector3{}, err
	}
	sinν, cosν := math.Sincos(ν)
	r := a * (1 - e*e) / (1 + e*cosν)
	return Vector3{r * cosν, r * sinν, 0}, nil
}

// ToSolarSystemFrame rotates an orbital-plane position into the shared
// heliocentric ecliptic frame via the perifocal P/Q basis vectors for
// the given inclination i, longitude of ascending node Ω and argument
// of perihelion ω. Non-iterative; succeeds for any finite input.
func ToSolarSystemFrame(pos Vector3, i, Ω, ω float64) (Vector3, error) {
	angles := []struct {
		name string
		val  float64
	}{
		{"inclination", i},
		{"longitudeOfAscendingNode", Ω},
		{"argumentOfPerihelion", ω},
	}
	for _, p := range angles {
		if err := checkFinite(p.name, p.val); err != nil {
			return Vector3{}, err
		}
	}
	for _, c := range []float64{pos.X, pos.Y, pos.Z} {
		if err := checkFinite("position", c); err != nil {
			return Vector3{}, err
		}
	}
	sinΩ, cosΩ := math.Sincos(Ω)
	sinω, cosω := math.Sincos(ω)
	sini, cosi := math.Sincos(i)
	P := Vector3{
		cosΩ*cosω - sinΩ*sinω*cosi,
		sinΩ*cosω + cosΩ*sinω*cosi,
		sinω * sini,
	}
	Q := Vector3{
		-cosΩ*sinω - sinΩ*cosω*cosi,
		-sinΩ*sinω + cosΩ*cosω*cosi,
		cosω * sini,
	}
	return P.Scale(pos.X).Add(Q.Scale(pos.Y)), nil
}

// BodyPosition is the single entry point for the rendering loop: it
// evaluates the full chain mean anomaly → eccentric anomaly → true
// anomaly → plane position → frame transform for one body at time t
// (days since the element epoch) and returns the heliocentric position.
func BodyPosition(el OrbitalElements, t float64) (Vector3, error) {
	M, err := el.MeanAnomalyAt(t)
	if err != nil {
		return Vector3{}, err
	}
	E, err := SolveKeplersEquation(M, el.e)
	if err != nil {
		return Vector3{}, err
	}
	ν, err := TrueAnomaly(E, el.e)
	if err != nil {
		return Vector3{}, err
	}
	plane, err := PlanePosition(el.a, el.e, ν)
	if err != nil {
		return Vector3{}, err
	}
	return ToSolarSystemFrame(plane, el.i, el.Ω, el.ω)
}

// DistanceFromSun returns the heliocentric distance of a position, in
// whatever length unit the position carries (AU for this package).
func DistanceFromSun(pos Vector3) float64 {
	return pos.Norm()
}
