package sound

import "math"

// Sound holds the full parameter set for one synthesized sound effect.
// Fields mirror the persisted jfxr format; see package param for the
// per-parameter presentation metadata (labels, units, UI ranges).
type Sound struct {
	Name string

	SampleRate float64 // Hz

	// Amplitude envelope.
	Attack           float64 // s
	Sustain          float64 // s
	SustainPunch     float64 // %
	Decay            float64 // s
	TremoloDepth     float64 // %
	TremoloFrequency float64 // Hz

	// Pitch.
	Frequency            float64 // Hz
	FrequencySweep       float64 // Hz
	FrequencyDeltaSweep  float64 // Hz
	RepeatFrequency      float64 // Hz
	FrequencyJump1Onset  float64 // %
	FrequencyJump1Amount float64 // %
	FrequencyJump2Onset  float64 // %
	FrequencyJump2Amount float64 // %

	// Harmonics.
	Harmonics        int
	HarmonicsFalloff float64

	// Tone.
	Waveform         Waveform
	InterpolateNoise bool
	VibratoDepth     float64 // Hz
	VibratoFrequency float64 // Hz
	SquareDuty       float64 // %
	SquareDutySweep  float64 // %

	// Filters.
	FlangerOffset       float64 // ms
	FlangerOffsetSweep  float64 // ms
	BitCrush            int     // bits
	BitCrushSweep       int     // bits
	LowPassCutoff       float64 // Hz
	LowPassCutoffSweep  float64 // Hz
	HighPassCutoff      float64 // Hz
	HighPassCutoffSweep float64 // Hz

	// Output.
	Compression   float64
	Normalization bool
	Amplification float64 // %
}

// New returns a Sound with the jfxr default parameter values.
func New() *Sound {
	return &Sound{
		SampleRate:          44100,
		TremoloFrequency:    10,
		Frequency:           500,
		FrequencyJump1Onset: 33,
		FrequencyJump2Onset: 66,
		HarmonicsFalloff:    0.5,
		Waveform:            WaveformSine,
		InterpolateNoise:    true,
		VibratoFrequency:    10,
		SquareDuty:          50,
		BitCrush:            16,
		LowPassCutoff:       22050,
		Compression:         1,
		Normalization:       true,
		Amplification:       100,
	}
}

// Duration returns the total sound length in seconds.
func (s *Sound) Duration() float64 {
	return s.Attack + s.Sustain + s.Decay
}

// EffectiveRepeatFrequency returns the repeat frequency floored to one
// repetition per sound duration, guarding against division blow-ups when
// the duration is tiny or zero.
func (s *Sound) EffectiveRepeatFrequency() float64 {
	return math.Max(s.RepeatFrequency, 1/s.Duration())
}

// FrequencyAt returns the instantaneous oscillator frequency in Hz at the
// given time, applying sweep, delta sweep, frequency jumps and vibrato.
// The result is never negative.
func (s *Sound) FrequencyAt(time float64) float64 {
	fraction := frac(time * s.EffectiveRepeatFrequency())
	freq := s.Frequency +
		fraction*s.FrequencySweep +
		fraction*fraction*s.FrequencyDeltaSweep
	if fraction > s.FrequencyJump1Onset/100 {
		freq *= 1 + s.FrequencyJump1Amount/100
	}
	if fraction > s.FrequencyJump2Onset/100 {
		freq *= 1 + s.FrequencyJump2Amount/100
	}
	if s.VibratoDepth != 0 {
		freq += 1 - s.VibratoDepth*(0.5-0.5*math.Sin(2*math.Pi*time*s.VibratoFrequency))
	}
	return math.Max(freq, 0)
}

// SquareDutyAt returns the square-wave duty cycle in [0, 1] at the given
// time, applying the duty sweep over the repeat cycle.
func (s *Sound) SquareDutyAt(time float64) float64 {
	fraction := frac(time * s.EffectiveRepeatFrequency())
	return (s.SquareDuty + fraction*s.SquareDutySweep) / 100
}

// AmplitudeAt returns the envelope multiplier at the given time: a linear
// attack ramp, the sustain level with optional punch, a linear decay ramp
// and tremolo modulation.
func (s *Sound) AmplitudeAt(time float64) float64 {
	var amp float64
	switch {
	case time < s.Attack:
		amp = time / s.Attack
	case time < s.Attack+s.Sustain:
		amp = 1 + s.SustainPunch/100*(1-(time-s.Attack)/s.Sustain)
	case time < s.Attack+s.Sustain+s.Decay:
		amp = 1 - (time-s.Attack-s.Sustain)/s.Decay
	default:
		// Past the end of the envelope. Reachable through roundoff because
		// the sample count is an integer.
		amp = 0
	}
	if s.TremoloDepth != 0 {
		amp *= 1 - (s.TremoloDepth/100)*(0.5+0.5*math.Cos(2*math.Pi*time*s.TremoloFrequency))
	}
	return amp
}

// frac returns the fractional part of x, with the sign of x.
func frac(x float64) float64 {
	return x - math.Trunc(x)
}
