package orbital

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gonum/floats"
)

const testScenario = `
[run]
start = "2026-01-01T00:00:00Z"
days = 10
step = 2
bodies = ["Mercury", "Halley"]

[body.halley]
sma = 17.834
ecc = 0.96714
inc = 162.26
raan = 58.42
argPeri = 111.33
period = 27510
meanAnomaly0 = 38.38
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scenario.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadScenario(t *testing.T) {
	dir := writeScenario(t, testScenario)
	sc, err := LoadScenario(dir, "scenario")
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start %s", sc.Start)
	}
	if sc.Days != 10 || sc.Step != 2 {
		t.Fatalf("days=%f step=%f", sc.Days, sc.Step)
	}
	if len(sc.Bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(sc.Bodies))
	}
	if sc.Bodies[0].Name != "Mercury" {
		t.Fatalf("first body %s", sc.Bodies[0].Name)
	}
	halley := sc.Bodies[1]
	if halley.Name != "Halley" {
		t.Fatalf("second body %s", halley.Name)
	}
	if !floats.EqualWithinAbs(halley.Elements.SemiMajorAxis(), 17.834, 1e-9) {
		t.Fatalf("halley a=%f", halley.Elements.SemiMajorAxis())
	}
	if !floats.EqualWithinAbs(halley.Elements.Eccentricity(), 0.96714, 1e-9) {
		t.Fatalf("halley e=%f", halley.Elements.Eccentricity())
	}
}

func TestLoadScenarioUnknownBody(t *testing.T) {
	dir := writeScenario(t, `
[run]
start = "2026-01-01T00:00:00Z"
days = 1
step = 1
bodies = ["Vulcan"]
`)
	if _, err := LoadScenario(dir, "scenario"); err == nil {
		t.Fatal("scenario with an undefined body accepted")
	}
}

func TestLoadScenarioInvalidElements(t *testing.T) {
	dir := writeScenario(t, `
[run]
start = "2026-01-01T00:00:00Z"
days = 1
step = 1
bodies = ["Oumuamua"]

[body.oumuamua]
sma = 1.27
ecc = 1.20
inc = 122.74
raan = 24.60
argPeri = 241.81
period = 1000
meanAnomaly0 = 0
`)
	_, err := LoadScenario(dir, "scenario")
	assertDomainErr(t, err)
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(t.TempDir(), "nope"); err == nil {
		t.Fatal("missing scenario file accepted")
	}
}

func TestLoadScenarioDefaultStep(t *testing.T) {
	dir := writeScenario(t, `
[run]
start = "2026-01-01T00:00:00Z"
days = 5
bodies = ["Earth"]
`)
	sc, err := LoadScenario(dir, "scenario")
	if err != nil {
		t.Fatal(err)
	}
	if sc.Step != 1 {
		t.Fatalf("default step %f, expected 1", sc.Step)
	}
}
