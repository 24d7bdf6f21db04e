package synth_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
	"github.com/cwbudde/algo-sfxr/sfxr/synth"
)

func ExampleGenerate() {
	snd := sound.New()
	snd.Sustain = 0.25
	snd.Frequency = 440

	out := synth.Generate(snd)
	fmt.Println(len(out))
	// Output:
	// 11025
}

func ExampleSynth_Tick() {
	snd := sound.New()
	snd.Sustain = 0.5

	s := synth.New(snd, synth.WithBlockSize(8192))
	ticks := 0
	for done := false; !done; {
		done = s.Tick()
		ticks++
	}
	fmt.Println(s.NumSamples(), ticks)
	// Output:
	// 22050 3
}
