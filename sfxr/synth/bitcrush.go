package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// bitCrush quantizes samples to 2^bits amplitude steps, with the bit depth
// swept over the run and clamped to [1, 16].
type bitCrush struct{}

func (bitCrush) process(snd *sound.Sound, buf []float64, start, end int) {
	if snd.BitCrush == 0 && snd.BitCrushSweep == 0 {
		return
	}

	numSamples := float64(len(buf))
	for i := start; i < end; i++ {
		bits := math.Round(float64(snd.BitCrush) + float64(i)/numSamples*float64(snd.BitCrushSweep))
		if bits < 1 {
			bits = 1
		} else if bits > 16 {
			bits = 16
		}
		steps := math.Exp2(bits)
		buf[i] = -1 + 2*math.Round((0.5+0.5*buf[i])*steps)/steps
	}
}
