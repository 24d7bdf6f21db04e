package sound

import (
	"math"
	"testing"
)

func TestDuration(t *testing.T) {
	s := New()
	s.Attack = 0.1
	s.Sustain = 0.25
	s.Decay = 0.4

	if got, want := s.Duration(), 0.75; math.Abs(got-want) > 1e-15 {
		t.Fatalf("Duration() = %v, want %v", got, want)
	}
}

func TestEffectiveRepeatFrequencyFloorsAtOnePerDuration(t *testing.T) {
	s := New()
	s.Sustain = 0.5
	s.RepeatFrequency = 0

	if got, want := s.EffectiveRepeatFrequency(), 2.0; got != want {
		t.Fatalf("EffectiveRepeatFrequency() = %v, want %v", got, want)
	}

	s.RepeatFrequency = 10
	if got, want := s.EffectiveRepeatFrequency(), 10.0; got != want {
		t.Fatalf("EffectiveRepeatFrequency() = %v, want %v", got, want)
	}
}

func TestFrequencyAtAppliesSweeps(t *testing.T) {
	s := New()
	s.Sustain = 1
	s.Frequency = 100
	s.FrequencySweep = 50
	s.FrequencyDeltaSweep = 40
	s.FrequencyJump1Onset = 100
	s.FrequencyJump2Onset = 100

	// Halfway through the single repeat cycle.
	got := s.FrequencyAt(0.5)
	want := 100 + 0.5*50 + 0.25*40
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("FrequencyAt(0.5) = %v, want %v", got, want)
	}
}

func TestFrequencyAtAppliesJumps(t *testing.T) {
	s := New()
	s.Sustain = 1
	s.Frequency = 100
	s.FrequencyJump1Onset = 30
	s.FrequencyJump1Amount = 100
	s.FrequencyJump2Onset = 60
	s.FrequencyJump2Amount = 50

	if got := s.FrequencyAt(0.2); math.Abs(got-100) > 1e-12 {
		t.Fatalf("before jump 1: FrequencyAt = %v, want 100", got)
	}
	if got := s.FrequencyAt(0.4); math.Abs(got-200) > 1e-12 {
		t.Fatalf("after jump 1: FrequencyAt = %v, want 200", got)
	}
	if got := s.FrequencyAt(0.8); math.Abs(got-300) > 1e-12 {
		t.Fatalf("after jump 2: FrequencyAt = %v, want 300", got)
	}
}

func TestFrequencyAtNeverNegative(t *testing.T) {
	s := New()
	s.Sustain = 1
	s.Frequency = 100
	s.FrequencySweep = -10000
	s.FrequencyJump1Onset = 100
	s.FrequencyJump2Onset = 100

	if got := s.FrequencyAt(0.9); got != 0 {
		t.Fatalf("FrequencyAt = %v, want clamp to 0", got)
	}
}

func TestSquareDutyAtSweeps(t *testing.T) {
	s := New()
	s.Sustain = 1
	s.SquareDuty = 50
	s.SquareDutySweep = 20

	if got, want := s.SquareDutyAt(0), 0.5; math.Abs(got-want) > 1e-12 {
		t.Fatalf("SquareDutyAt(0) = %v, want %v", got, want)
	}
	if got, want := s.SquareDutyAt(0.5), 0.6; math.Abs(got-want) > 1e-12 {
		t.Fatalf("SquareDutyAt(0.5) = %v, want %v", got, want)
	}
}

func TestAmplitudeAtEnvelopePhases(t *testing.T) {
	s := New()
	s.Attack = 0.1
	s.Sustain = 0.2
	s.SustainPunch = 50
	s.Decay = 0.1

	if got := s.AmplitudeAt(0); got != 0 {
		t.Fatalf("attack start: AmplitudeAt(0) = %v, want 0", got)
	}
	if got, want := s.AmplitudeAt(0.05), 0.5; math.Abs(got-want) > 1e-12 {
		t.Fatalf("mid attack: AmplitudeAt = %v, want %v", got, want)
	}
	// Sustain start carries the full punch, fading to the base level.
	if got, want := s.AmplitudeAt(0.1), 1.5; math.Abs(got-want) > 1e-12 {
		t.Fatalf("sustain start: AmplitudeAt = %v, want %v", got, want)
	}
	if got, want := s.AmplitudeAt(0.2), 1.25; math.Abs(got-want) > 1e-12 {
		t.Fatalf("mid sustain: AmplitudeAt = %v, want %v", got, want)
	}
	if got, want := s.AmplitudeAt(0.35), 0.5; math.Abs(got-want) > 1e-12 {
		t.Fatalf("mid decay: AmplitudeAt = %v, want %v", got, want)
	}
	if got := s.AmplitudeAt(0.5); got != 0 {
		t.Fatalf("past end: AmplitudeAt = %v, want 0", got)
	}
}

func TestAmplitudeAtTremolo(t *testing.T) {
	s := New()
	s.Sustain = 1
	s.TremoloDepth = 100
	s.TremoloFrequency = 1

	// Tremolo cosine peaks at t=0, suppressing the amplitude entirely.
	if got := s.AmplitudeAt(0); math.Abs(got) > 1e-12 {
		t.Fatalf("AmplitudeAt(0) = %v, want 0", got)
	}
	// Half a tremolo cycle later the modulation factor is back to 1.
	if got, want := s.AmplitudeAt(0.5), 1.0; math.Abs(got-want) > 1e-12 {
		t.Fatalf("AmplitudeAt(0.5) = %v, want %v", got, want)
	}
}

func TestParseWaveformRoundTrip(t *testing.T) {
	for _, w := range Waveforms() {
		got, err := ParseWaveform(w.String())
		if err != nil {
			t.Fatalf("ParseWaveform(%q) error = %v", w.String(), err)
		}
		if got != w {
			t.Fatalf("ParseWaveform(%q) = %v, want %v", w.String(), got, w)
		}
	}
}

func TestParseWaveformUnknownTag(t *testing.T) {
	if _, err := ParseWaveform("sinewave"); err == nil {
		t.Fatal("ParseWaveform() expected error for unknown tag")
	}
}
