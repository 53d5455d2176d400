package orbital

import (
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// J2000 is the catalog epoch as a Julian date.
const J2000 = 2451545.0

// Body is a catalog entry: a named body carrying its J2000 orbital
// elements. Radius is in km and only matters for display scaling.
type Body struct {
	Name     string
	Radius   float64
	Elements OrbitalElements
}

// HelioPositionAt returns the heliocentric ecliptic position in AU at
// the given wall-clock time.
func (b Body) HelioPositionAt(dt time.Time) (Vector3, error) {
	return BodyPosition(b.Elements, DaysSinceJ2000(dt))
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// DaysSinceJ2000 converts a wall-clock instant to the time argument
// expected by BodyPosition for catalog elements.
func DaysSinceJ2000(dt time.Time) float64 {
	return julian.TimeToJD(dt) - J2000
}

// BodyFromString returns the catalog body for a name.
func BodyFromString(name string) (Body, error) {
	switch strings.ToLower(name) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	default:
		return Body{}, fmt.Errorf("undefined body '%s'", name)
	}
}

// Planets returns the eight catalog planets, innermost first.
func Planets() []Body {
	return []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}
}

/* Catalog. Elements are heliocentric ecliptic at J2000, semi-major
axes in AU, periods in days, angles entered in degrees. */

// Mercury is the innermost planet and the most eccentric of the eight.
var Mercury = Body{"Mercury", 2439.7, MustElements(0.387098, 0.205630, Deg2rad(7.005), Deg2rad(48.331), Deg2rad(29.124), 87.969, 174.796)}

// Venus is poisonous.
var Venus = Body{"Venus", 6051.8, MustElements(0.723332, 0.006772, Deg2rad(3.39458), Deg2rad(76.680), Deg2rad(54.884), 224.701, 50.115)}

// Earth is home.
var Earth = Body{"Earth", 6371.0, MustElements(1.000000, 0.016709, Deg2rad(0.00005), Deg2rad(348.739), Deg2rad(114.208), 365.256, 358.617)}

// Mars is the vacation place.
var Mars = Body{"Mars", 3389.5, MustElements(1.523679, 0.093400, Deg2rad(1.850), Deg2rad(49.558), Deg2rad(286.502), 686.980, 19.412)}

// Jupiter is big.
var Jupiter = Body{"Jupiter", 69911.0, MustElements(5.204400, 0.048900, Deg2rad(1.303), Deg2rad(100.464), Deg2rad(273.867), 4332.590, 20.020)}

// Saturn floats and that's really cool.
var Saturn = Body{"Saturn", 58232.0, MustElements(9.582600, 0.056500, Deg2rad(2.485), Deg2rad(113.665), Deg2rad(339.392), 10759.220, 317.020)}

// Uranus is no joke.
var Uranus = Body{"Uranus", 25362.0, MustElements(19.218400, 0.046381, Deg2rad(0.773), Deg2rad(74.006), Deg2rad(96.999), 30688.500, 142.239)}

// Neptune has the strongest winds out there.
var Neptune = Body{"Neptune", 24622.0, MustElements(30.070000, 0.008678, Deg2rad(1.770), Deg2rad(131.784), Deg2rad(276.336), 60182.000, 256.228)}
