package oscillator

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

func TestSineSample(t *testing.T) {
	osc := New(sound.WaveformSine, sound.New())
	snd := sound.New()

	cases := []struct {
		phase float64
		want  float64
	}{
		{0, 0},
		{0.25, 1},
		{0.5, 0},
		{0.75, -1},
	}
	for _, c := range cases {
		if got := osc.Sample(snd, c.phase, 0); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("sine at phase %v = %v, want %v", c.phase, got, c.want)
		}
	}
}

func TestTriangleSample(t *testing.T) {
	osc := New(sound.WaveformTriangle, sound.New())
	snd := sound.New()

	cases := []struct {
		phase float64
		want  float64
	}{
		{0, 0},
		{0.25, 1},
		{0.5, 0},
		{0.75, -1},
		{0.875, -0.5},
	}
	for _, c := range cases {
		if got := osc.Sample(snd, c.phase, 0); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("triangle at phase %v = %v, want %v", c.phase, got, c.want)
		}
	}
}

func TestSawtoothSample(t *testing.T) {
	osc := New(sound.WaveformSawtooth, sound.New())
	snd := sound.New()

	cases := []struct {
		phase float64
		want  float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, -1},
		{0.75, -0.5},
	}
	for _, c := range cases {
		if got := osc.Sample(snd, c.phase, 0); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("sawtooth at phase %v = %v, want %v", c.phase, got, c.want)
		}
	}
}

func TestSquareSampleFollowsDuty(t *testing.T) {
	snd := sound.New()
	snd.Sustain = 1
	snd.SquareDuty = 25
	osc := New(sound.WaveformSquare, snd)

	if got := osc.Sample(snd, 0.1, 0); got != 1 {
		t.Fatalf("inside duty: Sample = %v, want 1", got)
	}
	if got := osc.Sample(snd, 0.5, 0); got != -1 {
		t.Fatalf("outside duty: Sample = %v, want -1", got)
	}
}

func TestTangentSampleClipped(t *testing.T) {
	osc := New(sound.WaveformTangent, sound.New())
	snd := sound.New()

	for phase := 0.0; phase < 1; phase += 0.001 {
		got := osc.Sample(snd, phase, 0)
		if got < -2 || got > 2 {
			t.Fatalf("tangent at phase %v = %v, outside [-2, 2]", phase, got)
		}
	}
	if got, want := osc.Sample(snd, 0.25, 0), 0.3; math.Abs(got-want) > 1e-12 {
		t.Fatalf("tangent at phase 0.25 = %v, want %v", got, want)
	}
}

func TestBreakerStartsAtZeroCrossing(t *testing.T) {
	osc := New(sound.WaveformBreaker, sound.New())
	if got := osc.Sample(sound.New(), 0, 0); math.Abs(got) > 1e-9 {
		t.Fatalf("breaker at phase 0 = %v, want 0", got)
	}
}

// walk feeds a linear phase ramp through an oscillator, wrapping the phase
// the way the generator does.
func walk(osc Oscillator, snd *sound.Sound, steps int, inc float64) []float64 {
	out := make([]float64, steps)
	phase := 0.0
	for i := range out {
		phase = phase + inc
		phase = phase - math.Trunc(phase)
		out[i] = osc.Sample(snd, phase, 0)
	}
	return out
}

func TestNoiseDeterministicAcrossInstances(t *testing.T) {
	for _, w := range []sound.Waveform{
		sound.WaveformWhiteNoise,
		sound.WaveformPinkNoise,
		sound.WaveformBrownNoise,
	} {
		snd := sound.New()
		a := walk(New(w, snd), snd, 2000, 0.01)
		b := walk(New(w, snd), snd, 2000, 0.01)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("%v: sample %d differs: %v != %v", w, i, a[i], b[i])
			}
		}
	}
}

func TestWhiteNoiseHoldsBetweenDraws(t *testing.T) {
	snd := sound.New()
	snd.InterpolateNoise = false
	osc := New(sound.WaveformWhiteNoise, snd)

	// The doubled phase wraps every 50 steps; samples between wraps hold
	// the current draw. Before the first wrap the draw state is zero.
	out := walk(osc, snd, 150, 0.01)
	if out[60] == 0 {
		t.Fatal("expected a nonzero draw after the first phase wrap")
	}
	if out[60] != out[61] || out[61] != out[62] {
		t.Fatalf("expected held samples, got %v %v %v", out[60], out[61], out[62])
	}
}

func TestWhiteNoiseInterpolates(t *testing.T) {
	snd := sound.New()
	snd.InterpolateNoise = true
	osc := New(sound.WaveformWhiteNoise, snd)

	out := walk(osc, snd, 150, 0.01)
	held := true
	for i := 60; i < 90; i++ {
		if out[i] != out[i+1] {
			held = false
			break
		}
	}
	if held {
		t.Fatal("interpolated noise produced a flat run")
	}
}

func TestNoiseBounded(t *testing.T) {
	for _, w := range []sound.Waveform{
		sound.WaveformWhiteNoise,
		sound.WaveformBrownNoise,
	} {
		snd := sound.New()
		out := walk(New(w, snd), snd, 5000, 0.37)
		for i, v := range out {
			if v < -1 || v > 1 {
				t.Fatalf("%v: sample %d = %v, outside [-1, 1]", w, i, v)
			}
		}
	}
}
