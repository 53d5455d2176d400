package orbital

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// OrbitPath samples the closed orbit curve over a uniform true-anomaly
// sweep, which is what an orbit-line renderer wants. n is the sample
// count (at least 2); the first sample sits at perihelion and the sweep
// stops short of 2π since that repeats the first point.
func OrbitPath(el OrbitalElements, n int) ([]Vector3, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: sample count %d must be at least 2", ErrInvalidDomain, n)
	}
	rot := PerifocalRotation(el.i, el.Ω, el.ω)
	step := 2 * math.Pi / float64(n)
	pts := make([]Vector3, n)
	for k := range pts {
		plane, err := PlanePosition(el.a, el.e, float64(k)*step)
		if err != nil {
			return nil, err
		}
		pts[k] = MxV33(rot, plane)
	}
	return pts, nil
}

// WritePathCSV streams an orbit path as x,y,z rows in AU, e.g. to feed
// an external plotting tool.
func WritePathCSV(w io.Writer, el OrbitalElements, n int) error {
	pts, err := OrbitPath(el, n)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.X, 'f', -1, 64),
			strconv.FormatFloat(p.Y, 'f', -1, 64),
			strconv.FormatFloat(p.Z, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
