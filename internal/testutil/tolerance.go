package testutil

import (
	"math"
	"testing"
)

// EpsF32 is the machine epsilon for float32 (2^-23).
const EpsF32 = 1.1920928955078125e-07

// EqualF32 reports whether got and want are the same float32 value,
// treating two NaNs as equal.
func EqualF32(got, want float32) bool {
	if math.IsNaN(float64(got)) && math.IsNaN(float64(want)) {
		return true
	}

	return got == want
}

// NearlyEqualF32 reports whether got is within k units of float32 epsilon
// of want, scaled by |want|. NaN only matches NaN.
func NearlyEqualF32(got, want float32, k float64) bool {
	if math.IsNaN(float64(got)) || math.IsNaN(float64(want)) {
		return EqualF32(got, want)
	}

	tol := k * EpsF32 * math.Abs(float64(want))
	return math.Abs(float64(got)-float64(want)) <= tol
}

// RequireEqualF32 fails t if got and want differ. NaN matches NaN.
func RequireEqualF32(t *testing.T, got, want float32) {
	t.Helper()

	if !EqualF32(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// RequireNearlyEqualF32 fails t if got is more than k units of float32
// epsilon (scaled by |want|) away from want.
func RequireNearlyEqualF32(t *testing.T, got, want float32, k float64) {
	t.Helper()

	if !NearlyEqualF32(got, want, k) {
		diff := math.Abs(float64(got) - float64(want))
		t.Fatalf("got %v, want %v (diff %v > %v eps)", got, want, diff, k)
	}
}

// RequireNaNF32 fails t if v is not NaN.
func RequireNaNF32(t *testing.T, v float32) {
	t.Helper()

	if !math.IsNaN(float64(v)) {
		t.Fatalf("got %v, want NaN", v)
	}
}
