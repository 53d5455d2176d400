package orbital

import (
	"errors"
	"testing"

	"github.com/gonum/floats"
)

func vectorsEqual(a, b Vector3, ε float64) bool {
	return floats.EqualWithinAbs(a.X, b.X, ε) &&
		floats.EqualWithinAbs(a.Y, b.Y, ε) &&
		floats.EqualWithinAbs(a.Z, b.Z, ε)
}

func assertPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
}

func assertDomainErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a domain error, got nil")
	}
	if !errors.Is(err, ErrInvalidDomain) {
		t.Fatalf("error %q is not ErrInvalidDomain", err)
	}
}
