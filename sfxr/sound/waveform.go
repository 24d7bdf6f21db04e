package sound

import "fmt"

// Waveform identifies the oscillator shape used for tone generation.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformTriangle
	WaveformSawtooth
	WaveformSquare
	WaveformTangent
	WaveformWhistle
	WaveformBreaker
	WaveformWhiteNoise
	WaveformPinkNoise
	WaveformBrownNoise
)

var waveformNames = [...]string{
	WaveformSine:       "sine",
	WaveformTriangle:   "triangle",
	WaveformSawtooth:   "sawtooth",
	WaveformSquare:     "square",
	WaveformTangent:    "tangent",
	WaveformWhistle:    "whistle",
	WaveformBreaker:    "breaker",
	WaveformWhiteNoise: "whitenoise",
	WaveformPinkNoise:  "pinknoise",
	WaveformBrownNoise: "brownnoise",
}

// Waveforms lists all supported waveforms in tag order.
func Waveforms() []Waveform {
	out := make([]Waveform, len(waveformNames))
	for i := range out {
		out[i] = Waveform(i)
	}
	return out
}

// String returns the persisted tag for the waveform.
func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// ParseWaveform converts a persisted tag to a Waveform.
func ParseWaveform(tag string) (Waveform, error) {
	for i, name := range waveformNames {
		if name == tag {
			return Waveform(i), nil
		}
	}
	return WaveformSine, fmt.Errorf("unknown waveform tag: %q", tag)
}
