package oscillator

import "github.com/cwbudde/algo-sfxr/sfxr/sound"

// noiseSeed seeds every noise oscillator, including every harmonic instance
// of the same run. Harmonics of noise waveforms are therefore phase-shifted
// copies of one random stream rather than independent streams; this is part
// of the output format and must not change.
const noiseSeed = 0x3cf78ba3

// noiseState is the per-draw state shared by all noise colors. Noise runs
// on a doubled phase so that two draws happen per base cycle, which keeps
// the highest intended frequencies present in the output.
type noiseState struct {
	interpolate bool
	random      *Random
	prevPhase   float64
	prevDraw    float64
	currDraw    float64
}

func newNoiseState(snd *sound.Sound) noiseState {
	return noiseState{
		interpolate: snd.InterpolateNoise,
		random:      NewRandom(noiseSeed),
	}
}

// step advances the doubled phase and invokes draw on each wrap. It returns
// the current draw, linearly interpolated against the previous one when
// noise interpolation is enabled.
func (n *noiseState) step(phase float64, draw func() float64) float64 {
	phase = frac(phase * 2)
	if phase < n.prevPhase {
		n.prevDraw = n.currDraw
		n.currDraw = draw()
	}
	n.prevPhase = phase
	if n.interpolate {
		return lerp(n.prevDraw, n.currDraw, phase)
	}
	return n.currDraw
}

type whiteNoise struct {
	noiseState
}

func newWhiteNoise(snd *sound.Sound) *whiteNoise {
	return &whiteNoise{noiseState: newNoiseState(snd)}
}

func (o *whiteNoise) Sample(_ *sound.Sound, phase, _ float64) float64 {
	return o.step(phase, func() float64 {
		return o.random.Uniform(-1, 1)
	})
}

type pinkNoise struct {
	noiseState
	b [7]float64
}

func newPinkNoise(snd *sound.Sound) *pinkNoise {
	return &pinkNoise{noiseState: newNoiseState(snd)}
}

func (o *pinkNoise) Sample(_ *sound.Sound, phase, _ float64) float64 {
	return o.step(phase, func() float64 {
		// Method pk3 from http://www.firstpr.com.au/dsp/pink-noise/,
		// due to Paul Kellet.
		white := o.random.Uniform(-1, 1)
		o.b[0] = 0.99886*o.b[0] + white*0.0555179
		o.b[1] = 0.99332*o.b[1] + white*0.0750759
		o.b[2] = 0.96900*o.b[2] + white*0.1538520
		o.b[3] = 0.86650*o.b[3] + white*0.3104856
		o.b[4] = 0.55000*o.b[4] + white*0.5329522
		o.b[5] = -0.7616*o.b[5] + white*0.0168980
		pink := (o.b[0] + o.b[1] + o.b[2] + o.b[3] + o.b[4] + o.b[5] + o.b[6] + white*0.5362) / 7
		o.b[6] = white * 0.115926
		return pink
	})
}

type brownNoise struct {
	noiseState
}

func newBrownNoise(snd *sound.Sound) *brownNoise {
	return &brownNoise{noiseState: newNoiseState(snd)}
}

func (o *brownNoise) Sample(_ *sound.Sound, phase, _ float64) float64 {
	return o.step(phase, func() float64 {
		return clamp(o.currDraw+0.1*o.random.Uniform(-1, 1), -1, 1)
	})
}
