package main

import (
	"flag"
	"os"
	"time"

	"github.com/go-kit/kit/log"

	orbital "github.com/ndokutovich/solar-system-simulator-sub001"
)

// This command evaluates heliocentric positions for a set of bodies
// over a time window and prints one logfmt line per body per step.

var (
	scenario string
	confPath string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file name without extension; empty runs the built-in catalog for one year")
	flag.StringVar(&confPath, "path", ".", "directory containing the scenario file")
	flag.BoolVar(&verbose, "verbose", false, "also log speed and orbital phase per step")
}

func main() {
	flag.Parse()
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	errLogger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

	var (
		sc  orbital.Scenario
		err error
	)
	if scenario == "" {
		sc = orbital.Scenario{
			Start:  time.Now().UTC(),
			Days:   365,
			Step:   1,
			Bodies: orbital.Planets(),
		}
	} else {
		sc, err = orbital.LoadScenario(confPath, scenario)
		if err != nil {
			errLogger.Log("err", err)
			os.Exit(1)
		}
	}

	for t := 0.0; t <= sc.Days; t += sc.Step {
		dt := sc.Start.Add(time.Duration(t*24*3600) * time.Second)
		days := orbital.DaysSinceJ2000(dt)
		for _, body := range sc.Bodies {
			pos, err := orbital.BodyPosition(body.Elements, days)
			if err != nil {
				errLogger.Log("body", body.Name, "err", err)
				os.Exit(1)
			}
			r := orbital.DistanceFromSun(pos)
			kv := []interface{}{
				"body", body.Name,
				"date", dt.Format("2006-01-02"),
				"x", pos.X, "y", pos.Y, "z", pos.Z,
				"r", r,
			}
			if verbose {
				speed, err := orbital.OrbitalVelocity(body.Elements.SemiMajorAxis(), r, body.Elements.Period())
				if err != nil {
					errLogger.Log("body", body.Name, "err", err)
					os.Exit(1)
				}
				phase, err := orbital.OrbitalPhase(days, body.Elements.Period())
				if err != nil {
					errLogger.Log("body", body.Name, "err", err)
					os.Exit(1)
				}
				kv = append(kv, "v", speed, "phase", phase)
			}
			logger.Log(kv...)
		}
	}
}
