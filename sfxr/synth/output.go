package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
	"github.com/cwbudde/algo-vecmath"
)

// compress raises each sample's magnitude to the compression power,
// preserving sign.
type compress struct{}

func (compress) process(snd *sound.Sound, buf []float64, start, end int) {
	if snd.Compression == 1 {
		return
	}
	for i := start; i < end; i++ {
		sample := buf[i]
		if sample >= 0 {
			sample = math.Pow(sample, snd.Compression)
		} else {
			sample = -math.Pow(-sample, snd.Compression)
		}
		buf[i] = sample
	}
}

// normalize tracks the running peak across blocks and rescales the whole
// buffer to unit peak on the block that completes it. An all-zero buffer
// yields a zero peak and the division produces non-finite samples; that is
// part of the output contract and deliberately not guarded.
type normalize struct {
	maxSample float64
}

func (t *normalize) process(snd *sound.Sound, buf []float64, start, end int) {
	if !snd.Normalization {
		return
	}

	if m := vecmath.MaxAbs(buf[start:end]); m > t.maxSample {
		t.maxSample = m
	}

	if end == len(buf) {
		vecmath.ScaleBlockInPlace(buf[:end], 1/t.maxSample)
	}
}

// amplify scales every sample by the amplification percentage.
type amplify struct{}

func (amplify) process(snd *sound.Sound, buf []float64, start, end int) {
	factor := snd.Amplification / 100
	if factor == 1 {
		return
	}
	vecmath.ScaleBlockInPlace(buf[start:end], factor)
}
