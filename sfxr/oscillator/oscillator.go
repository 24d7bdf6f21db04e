package oscillator

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// Oscillator produces one sample for a phase in [0, 1) at the given time.
// The sound is read-only; only the square wave consults it (for the duty
// cycle), and noise oscillators ignore the phase's absolute position and
// react to cycle wraps instead.
type Oscillator interface {
	Sample(snd *sound.Sound, phase, time float64) float64
}

// New returns the oscillator for the given waveform. Noise waveforms
// receive fresh PRNG state seeded with the fixed noise seed.
func New(w sound.Waveform, snd *sound.Sound) Oscillator {
	switch w {
	case sound.WaveformTriangle:
		return triangle{}
	case sound.WaveformSawtooth:
		return sawtooth{}
	case sound.WaveformSquare:
		return square{}
	case sound.WaveformTangent:
		return tangent{}
	case sound.WaveformWhistle:
		return whistle{}
	case sound.WaveformBreaker:
		return breaker{}
	case sound.WaveformWhiteNoise:
		return newWhiteNoise(snd)
	case sound.WaveformPinkNoise:
		return newPinkNoise(snd)
	case sound.WaveformBrownNoise:
		return newBrownNoise(snd)
	default:
		return sine{}
	}
}

type sine struct{}

func (sine) Sample(_ *sound.Sound, phase, _ float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

type triangle struct{}

func (triangle) Sample(_ *sound.Sound, phase, _ float64) float64 {
	if phase < 0.25 {
		return 4 * phase
	}
	if phase < 0.75 {
		return 2 - 4*phase
	}
	return -4 + 4*phase
}

type sawtooth struct{}

func (sawtooth) Sample(_ *sound.Sound, phase, _ float64) float64 {
	if phase < 0.5 {
		return 2 * phase
	}
	return -2 + 2*phase
}

type square struct{}

func (square) Sample(snd *sound.Sound, phase, time float64) float64 {
	if phase < snd.SquareDutyAt(time) {
		return 1
	}
	return -1
}

type tangent struct{}

func (tangent) Sample(_ *sound.Sound, phase, _ float64) float64 {
	// Clipped to keep normalization sane near the poles.
	return clamp(0.3*math.Tan(math.Pi*phase), -2, 2)
}

type whistle struct{}

func (whistle) Sample(_ *sound.Sound, phase, _ float64) float64 {
	return 0.75*math.Sin(2*math.Pi*phase) + 0.25*math.Sin(40*math.Pi*phase)
}

type breaker struct{}

func (breaker) Sample(_ *sound.Sound, phase, _ float64) float64 {
	// Shifted so the waveform starts at a zero crossing.
	p := frac(phase + math.Sqrt(0.75))
	return -1 + 2*math.Abs(1-p*p*2)
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

func frac(x float64) float64 {
	return x - math.Trunc(x)
}

func lerp(a, b, f float64) float64 {
	return (1-f)*a + f*b
}
