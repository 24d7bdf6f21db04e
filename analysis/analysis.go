// Package analysis provides small measurement helpers for rendered sounds:
// absolute peak, RMS level and an FFT-based dominant-frequency estimate.
package analysis

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Peak returns the maximum absolute sample value.
func Peak(samples []float64) float64 {
	return vecmath.MaxAbs(samples)
}

// RMS returns the root-mean-square level of the samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(samples, samples) / float64(len(samples)))
}

// PeakFrequency estimates the dominant frequency in Hz using a
// Hann-windowed FFT magnitude spectrum with parabolic interpolation around
// the strongest bin. The DC bin is excluded.
func PeakFrequency(samples []float64, sampleRate float64) (float64, error) {
	if len(samples) < 4 {
		return 0, fmt.Errorf("analysis: need at least 4 samples: %d", len(samples))
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("analysis: sample rate must be > 0: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(samples))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("analysis: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	n := len(samples)
	for i, v := range samples {
		w := 1.0
		if n > 1 {
			w = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		}
		in[i] = complex(v*w, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("analysis: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	peak := 1
	for i := 2; i < bins; i++ {
		if mags[i] > mags[peak] {
			peak = i
		}
	}

	// Parabolic interpolation over the peak and its neighbors refines the
	// estimate below bin resolution.
	delta := 0.0
	if peak > 0 && peak < bins-1 {
		left, mid, right := mags[peak-1], mags[peak], mags[peak+1]
		denom := left - 2*mid + right
		if denom != 0 {
			delta = 0.5 * (left - right) / denom
		}
	}

	return (float64(peak) + delta) * sampleRate / float64(fftSize), nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
