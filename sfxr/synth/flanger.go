package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/delay"
	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// flanger mixes each sample with a delayed copy of itself read from a
// circular delay line. The delay offset sweeps over the run as a fraction
// of the whole buffer, not per block.
type flanger struct {
	line *delay.Line
}

func newFlanger(snd *sound.Sound) *flanger {
	f := &flanger{}
	if snd.FlangerOffset != 0 || snd.FlangerOffsetSweep != 0 {
		// Sized for the maximum 100 ms offset.
		if line, err := delay.New(int(math.Ceil(snd.SampleRate * 0.1))); err == nil {
			f.line = line
		}
	}
	return f
}

func (f *flanger) process(snd *sound.Sound, buf []float64, start, end int) {
	if f.line == nil {
		return
	}

	numSamples := float64(len(buf))
	maxOffset := float64(f.line.Len() - 1)

	for i := start; i < end; i++ {
		f.line.Write(buf[i])

		offset := math.Round((snd.FlangerOffset + float64(i)/numSamples*snd.FlangerOffsetSweep) / 1000 * snd.SampleRate)
		if !(offset > 0) {
			offset = 0
		}
		if offset > maxOffset {
			offset = maxOffset
		}
		buf[i] += f.line.Read(int(offset))
	}
}
