package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// lowPass is a single-pole IIR low-pass filter. The coefficient is
// recomputed per sample because the cutoff sweeps over the run.
type lowPass struct {
	prev float64
}

func (f *lowPass) process(snd *sound.Sound, buf []float64, start, end int) {
	nyquist := snd.SampleRate / 2
	if snd.LowPassCutoff >= nyquist && snd.LowPassCutoff+snd.LowPassCutoffSweep >= nyquist {
		return
	}

	numSamples := float64(len(buf))
	prev := f.prev

	for i := start; i < end; i++ {
		fraction := float64(i) / numSamples
		cutoff := clamp(snd.LowPassCutoff+fraction*snd.LowPassCutoffSweep, 0, nyquist)
		wc := cutoff / snd.SampleRate * math.Pi
		cosWc := math.Cos(wc)
		alpha := 1.0
		if cosWc > 0 {
			// One-pole coefficient from cos wc = 2a / (1 + a^2).
			alpha = 1 - (1/cosWc - math.Sqrt(1/(cosWc*cosWc)-1))
		}
		sample := alpha*buf[i] + (1-alpha)*prev
		prev = sample
		buf[i] = sample
	}

	f.prev = prev
}

// highPass is the single-pole IIR high-pass counterpart, carrying both the
// previous input and previous output across blocks.
type highPass struct {
	prevIn  float64
	prevOut float64
}

func (f *highPass) process(snd *sound.Sound, buf []float64, start, end int) {
	if snd.HighPassCutoff <= 0 && snd.HighPassCutoff+snd.HighPassCutoffSweep <= 0 {
		return
	}

	nyquist := snd.SampleRate / 2
	numSamples := float64(len(buf))
	prevIn := f.prevIn
	prevOut := f.prevOut

	for i := start; i < end; i++ {
		fraction := float64(i) / numSamples
		cutoff := clamp(snd.HighPassCutoff+fraction*snd.HighPassCutoffSweep, 0, nyquist)
		wc := cutoff / snd.SampleRate * math.Pi
		alpha := (1 - math.Sin(wc)) / math.Cos(wc)
		orig := buf[i]
		sample := alpha * (prevOut - prevIn + orig)
		prevIn = orig
		prevOut = sample
		buf[i] = sample
	}

	f.prevIn = prevIn
	f.prevOut = prevOut
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
