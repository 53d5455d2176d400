package orbital

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain is returned whenever an argument lies outside the
// supported numeric domain: a non-finite value, a non-positive length
// or period, or an eccentricity outside [0,1). Inspect with errors.Is.
var ErrInvalidDomain = errors.New("invalid domain")

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s=%v must be finite", ErrInvalidDomain, name, v)
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s=%v must be positive", ErrInvalidDomain, name, v)
	}
	return nil
}

func checkEccentricity(e float64) error {
	if math.IsNaN(e) || math.IsInf(e, 0) || e < 0 || e >= 1 {
		return fmt.Errorf("%w: eccentricity=%v must be in [0,1) (only elliptical orbits are supported)", ErrInvalidDomain, e)
	}
	return nil
}
