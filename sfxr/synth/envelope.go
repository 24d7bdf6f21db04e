package synth

import "github.com/cwbudde/algo-sfxr/sfxr/sound"

// envelope scales each sample by the attack/sustain/decay amplitude curve.
type envelope struct{}

func (envelope) process(snd *sound.Sound, buf []float64, start, end int) {
	if snd.Attack == 0 && snd.SustainPunch == 0 && snd.Decay == 0 && snd.TremoloDepth == 0 {
		return
	}
	for i := start; i < end; i++ {
		time := float64(i) / snd.SampleRate
		buf[i] *= snd.AmplitudeAt(time)
	}
}
