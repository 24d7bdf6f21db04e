package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/oscillator"
	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// generator fills the buffer with the raw oscillator mix. One oscillator
// instance exists per harmonic; all harmonics share a single fundamental
// phase accumulator and harmonic k runs at (k+1) times that phase.
type generator struct {
	oscillators      []oscillator.Oscillator
	firstHarmonicAmp float64
	phase            float64
}

func newGenerator(snd *sound.Sound) *generator {
	var oscillators []oscillator.Oscillator
	amp := 1.0
	totalAmp := 0.0
	for k := 0; k <= snd.Harmonics; k++ {
		totalAmp += amp
		amp *= snd.HarmonicsFalloff
		oscillators = append(oscillators, oscillator.New(snd.Waveform, snd))
	}
	return &generator{
		oscillators: oscillators,
		// Normalizing constant of the falloff geometric series, so the
		// mixed harmonics sum to unit amplitude.
		firstHarmonicAmp: 1 / totalAmp,
	}
}

func (g *generator) process(snd *sound.Sound, buf []float64, start, end int) {
	phase := g.phase
	for i := start; i < end; i++ {
		time := float64(i) / snd.SampleRate
		phase = frac(phase + snd.FrequencyAt(time)/snd.SampleRate)
		sample := 0.0
		amp := g.firstHarmonicAmp
		for k, osc := range g.oscillators {
			harmonicPhase := frac(phase * float64(k+1))
			sample += amp * osc.Sample(snd, harmonicPhase, time)
			amp *= snd.HarmonicsFalloff
		}
		buf[i] = sample
	}
	g.phase = phase
}

func frac(x float64) float64 {
	return x - math.Trunc(x)
}
