package orbital

import "math"

const (
	keplerε     = 1e-10 // convergence tolerance for both solver phases
	maxNewtonIt = 100
	maxBisectIt = 100
	newtonHighE = 0.8 // above this, E₀=M converges poorly; start at π
)

// SolveKeplersEquation solves M = E - e·sinE for the eccentric anomaly
// E, given a mean anomaly M (radians, any real) and an eccentricity in
// [0,1). M is first reduced into [0,2π). Newton-Raphson is tried for up
// to 100 steps; if it does not settle within 1e-10, the solver falls
// back to bisection over [0,2π], which cannot diverge because
// f(E) = E - e·sinE - M is monotonic on that interval.
func SolveKeplersEquation(M, e float64) (float64, error) {
	if err := checkFinite("meanAnomaly", M); err != nil {
		return 0, err
	}
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	M = wrap2Pi(M)
	E := M
	if e > newtonHighE {
		E = math.Pi
	}
	for it := 0; it < maxNewtonIt; it++ {
		sinE, cosE := math.Sincos(E)
		ΔE := (E - e*sinE - M) / (1 - e*cosE)
		E -= ΔE
		if math.Abs(ΔE) < keplerε {
			return E, nil
		}
	}
	// Bisection fallback. f(0) = -M ≤ 0 and f(2π) = 2π - M ≥ 0, so the
	// root is bracketed from the start.
	lo, hi := 0.0, 2*math.Pi
	for it := 0; it < maxBisectIt; it++ {
		E = (lo + hi) / 2
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < keplerε {
			return E, nil
		}
		if f < 0 {
			lo = E
		} else {
			hi = E
		}
	}
	return E, nil
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly ν in
// [0,2π). The relation is singular as e→1 but that is unreachable
// given the eccentricity guard.
func TrueAnomaly(E, e float64) (float64, error) {
	if err := checkFinite("eccentricAnomaly", E); err != nil {
		return 0, err
	}
	if err := checkEccentricity(e); err != nil {
		return 0, err
	}
	ν := 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(E/2))
	return wrap2Pi(ν), nil
}

// MeanAnomaly returns (2π/period)·t for a time t in days. The result is
// deliberately not wrapped into [0,2π): callers may want the cumulative
// angle, and SolveKeplersEquation performs its own reduction regardless.
func MeanAnomaly(t, period float64) (float64, error) {
	if err := checkFinite("time", t); err != nil {
		return 0, err
	}
	if err := checkPositive("orbitalPeriod", period); err != nil {
		return 0, err
	}
	return 2 * math.Pi / period * t, nil
}
