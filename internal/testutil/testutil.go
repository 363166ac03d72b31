// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math"
	"testing"
)

// DefaultTolerance is the absolute tolerance used by the float helpers when
// callers have no better bound.
const DefaultTolerance = 1e-9

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertNear checks that got is within tol of want.
func AssertNear(t testing.TB, got, want, tol float64) {
	t.Helper()
	if !Near(got, want, tol) {
		t.Errorf("got %v, want %v (tolerance %v)", got, want, tol)
	}
}

// AssertFloatsNear checks two slices element-wise.
func AssertFloatsNear(t testing.TB, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("length = %d, want %d", len(got), len(want))
		return
	}
	for i := range want {
		if !Near(got[i], want[i], tol) {
			t.Errorf("index %d: got %v, want %v (tolerance %v)", i, got[i], want[i], tol)
		}
	}
}

// Near reports whether a and b differ by at most tol. Two NaNs are near.
func Near(a, b, tol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) <= tol
}
