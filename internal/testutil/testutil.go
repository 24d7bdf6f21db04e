// Package testutil provides shared helpers for synthesis tests: exact and
// tolerance-based buffer comparison and canonical test sounds.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// RequireSliceEqual fails t unless got and want are identical, bit for bit.
// Used for block-invariance checks where no tolerance is acceptable.
func RequireSliceEqual(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] && !(math.IsNaN(got[i]) && math.IsNaN(want[i])) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// PlainSine returns a 440 Hz sine sound with a 0.1 s attack, sustain and
// decay each, and all sweeps, modulations and output shaping disabled.
func PlainSine() *sound.Sound {
	snd := sound.New()
	snd.Name = "test sine"
	snd.Frequency = 440
	snd.Attack = 0.1
	snd.Sustain = 0.1
	snd.Decay = 0.1
	snd.BitCrush = 0
	snd.Normalization = false
	return snd
}
