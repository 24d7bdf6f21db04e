package preset_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfxr/sfxr/preset"
	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

func ExampleParse() {
	snd := sound.New()
	snd.Name = "jump"
	snd.Waveform = sound.WaveformSquare
	snd.Frequency = 330

	data, _ := preset.Encode(snd)
	parsed, _ := preset.Parse(data)
	fmt.Println(parsed.Name, parsed.Waveform, parsed.Frequency)
	// Output:
	// jump square 330
}
