package orbital

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Scenario drives a catalog run: which bodies to evaluate, starting
// when, for how many days and at which step (also in days).
type Scenario struct {
	Start  time.Time
	Days   float64
	Step   float64
	Bodies []Body
}

// LoadScenario reads `<name>.toml` from the given directory.
//
// Expected layout:
//
//	[run]
//	start = "2026-01-01T00:00:00Z"
//	days = 365
//	step = 1
//	bodies = ["Mercury", "Venus"]
//
//	[body.<name>]   # optional, for bodies not in the catalog
//	sma = 17.834    # AU
//	ecc = 0.967
//	inc = 162.26    # degrees, like the two below
//	raan = 58.42
//	argPeri = 111.33
//	period = 27510  # days
//	meanAnomaly0 = 0
//
// Names listed under run.bodies resolve against the built-in catalog
// first, then against [body.<name>] tables.
func LoadScenario(path, name string) (Scenario, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(name)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s/%s.toml: %w", path, name, err)
	}
	start, err := time.Parse(time.RFC3339, v.GetString("run.start"))
	if err != nil {
		return Scenario{}, fmt.Errorf("run.start: %w", err)
	}
	s := Scenario{Start: start, Days: v.GetFloat64("run.days"), Step: v.GetFloat64("run.step")}
	if s.Step <= 0 {
		s.Step = 1
	}
	for _, bodyName := range v.GetStringSlice("run.bodies") {
		body, catErr := BodyFromString(bodyName)
		if catErr == nil {
			s.Bodies = append(s.Bodies, body)
			continue
		}
		key := "body." + strings.ToLower(bodyName)
		if !v.IsSet(key) {
			return Scenario{}, catErr
		}
		el, err := NewElements(
			v.GetFloat64(key+".sma"),
			v.GetFloat64(key+".ecc"),
			Deg2rad(v.GetFloat64(key+".inc")),
			Deg2rad(v.GetFloat64(key+".raan")),
			Deg2rad(v.GetFloat64(key+".argPeri")),
			v.GetFloat64(key+".period"),
			v.GetFloat64(key+".meanAnomaly0"),
		)
		if err != nil {
			return Scenario{}, fmt.Errorf("body %s: %w", bodyName, err)
		}
		s.Bodies = append(s.Bodies, Body{Name: bodyName, Elements: el})
	}
	if len(s.Bodies) == 0 {
		return Scenario{}, fmt.Errorf("scenario %s lists no bodies", name)
	}
	return s, nil
}
