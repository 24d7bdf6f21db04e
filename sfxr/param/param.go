// Package param holds static presentation metadata for every sound
// parameter: display labels, descriptions, units, UI ranges and step sizes.
// The synthesis engine never consults this table; it exists for editors,
// CLIs and other front ends.
package param

// Kind identifies the scalar type of a parameter.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindBool
	KindEnum
)

// Descriptor describes one parameter for presentation purposes.
type Descriptor struct {
	Key         string
	Label       string
	Description string
	Unit        string
	Kind        Kind
	Min         float64
	Max         float64
	Step        float64
	Logarithmic bool
}

var descriptors = []Descriptor{
	{
		Key: "sampleRate", Label: "Sample rate", Unit: "Hz", Kind: KindFloat,
		Min: 44100, Max: 44100, Step: 1,
	},
	{
		Key: "attack", Label: "Attack", Unit: "s", Kind: KindFloat,
		Description: "Time from the start of the sound until the point where it reaches its maximum volume.",
		Min:         0, Max: 5, Step: 0.01,
	},
	{
		Key: "sustain", Label: "Sustain", Unit: "s", Kind: KindFloat,
		Description: "Amount of time for which the sound holds its maximum volume after the attack phase.",
		Min:         0, Max: 5, Step: 0.01,
	},
	{
		Key: "sustainPunch", Label: "Sustain punch", Unit: "%", Kind: KindFloat,
		Description: "Additional volume at the start of the sustain phase, fading linearly back to the base level.",
		Min:         0, Max: 100, Step: 10,
	},
	{
		Key: "decay", Label: "Decay", Unit: "s", Kind: KindFloat,
		Description: "Time it takes from the end of the sustain phase until the sound has faded away.",
		Min:         0, Max: 5, Step: 0.01, Logarithmic: true,
	},
	{
		Key: "tremoloDepth", Label: "Tremolo depth", Unit: "%", Kind: KindFloat,
		Description: "Amount by which the volume oscillates as a sine wave around its base value.",
		Min:         0, Max: 100, Step: 1,
	},
	{
		Key: "tremoloFrequency", Label: "Tremolo frequency", Unit: "Hz", Kind: KindFloat,
		Description: "Frequency at which the volume oscillates around its base value.",
		Min:         0, Max: 1000, Step: 1, Logarithmic: true,
	},
	{
		Key: "frequency", Label: "Frequency", Unit: "Hz", Kind: KindFloat,
		Description: "Initial frequency, or pitch, of the sound.",
		Min:         10, Max: 10000, Step: 100, Logarithmic: true,
	},
	{
		Key: "frequencySweep", Label: "Frequency sweep", Unit: "Hz", Kind: KindFloat,
		Description: "Amount by which the frequency changes linearly over each repeat cycle.",
		Min:         -10000, Max: 10000, Step: 100, Logarithmic: true,
	},
	{
		Key: "frequencyDeltaSweep", Label: "Freq. delta sweep", Unit: "Hz", Kind: KindFloat,
		Description: "Amount by which the frequency changes quadratically over each repeat cycle.",
		Min:         -10000, Max: 10000, Step: 100, Logarithmic: true,
	},
	{
		Key: "repeatFrequency", Label: "Repeat frequency", Unit: "Hz", Kind: KindFloat,
		Description: "Times per second that the frequency resets to its base value and restarts its sweep cycle.",
		Min:         0, Max: 100, Step: 0.1, Logarithmic: true,
	},
	{
		Key: "frequencyJump1Onset", Label: "Freq. jump 1 onset", Unit: "%", Kind: KindFloat,
		Description: "Point in the repeat cycle at which the frequency makes a sudden jump.",
		Min:         0, Max: 100, Step: 5,
	},
	{
		Key: "frequencyJump1Amount", Label: "Freq. jump 1 amount", Unit: "%", Kind: KindFloat,
		Description: "Amount by which the frequency jumps at the first onset, relative to the current frequency.",
		Min:         -100, Max: 100, Step: 5,
	},
	{
		Key: "frequencyJump2Onset", Label: "Freq. jump 2 onset", Unit: "%", Kind: KindFloat,
		Description: "Point in the repeat cycle at which the frequency makes a second sudden jump.",
		Min:         0, Max: 100, Step: 5,
	},
	{
		Key: "frequencyJump2Amount", Label: "Freq. jump 2 amount", Unit: "%", Kind: KindFloat,
		Description: "Amount by which the frequency jumps at the second onset, relative to the current frequency.",
		Min:         -100, Max: 100, Step: 5,
	},
	{
		Key: "harmonics", Label: "Harmonics", Kind: KindInt,
		Description: "Number of harmonics (overtones) mixed in at integer multiples of the base frequency.",
		Min:         0, Max: 5, Step: 1,
	},
	{
		Key: "harmonicsFalloff", Label: "Harmonics falloff", Kind: KindFloat,
		Description: "Volume of each subsequent harmonic, as a fraction of the previous one.",
		Min:         0, Max: 1, Step: 0.01,
	},
	{
		Key: "waveform", Label: "Waveform", Kind: KindEnum,
		Description: "Shape of the waveform; the main factor in the character, or timbre, of the sound.",
	},
	{
		Key: "interpolateNoise", Label: "Interpolate noise", Kind: KindBool,
		Description: "Whether to interpolate linearly between individual noise samples for a smoother sound.",
	},
	{
		Key: "vibratoDepth", Label: "Vibrato depth", Unit: "Hz", Kind: KindFloat,
		Description: "Amount by which to vibrate around the base frequency.",
		Min:         0, Max: 1000, Step: 10, Logarithmic: true,
	},
	{
		Key: "vibratoFrequency", Label: "Vibrato frequency", Unit: "Hz", Kind: KindFloat,
		Description: "Times per second to vibrate around the base frequency.",
		Min:         0, Max: 1000, Step: 1, Logarithmic: true,
	},
	{
		Key: "squareDuty", Label: "Square duty", Unit: "%", Kind: KindFloat,
		Description: "For square waves, the initial fraction of time the square spends in the \"on\" state.",
		Min:         0, Max: 100, Step: 5,
	},
	{
		Key: "squareDutySweep", Label: "Square duty sweep", Unit: "%", Kind: KindFloat,
		Description: "For square waves, linear change of the square duty over the course of the sound.",
		Min:         -100, Max: 100, Step: 5,
	},
	{
		Key: "flangerOffset", Label: "Flanger offset", Unit: "ms", Kind: KindFloat,
		Description: "Initial offset for the flanger effect, mixing the sound with a delayed copy of itself.",
		Min:         0, Max: 50, Step: 1,
	},
	{
		Key: "flangerOffsetSweep", Label: "Flanger offset sweep", Unit: "ms", Kind: KindFloat,
		Description: "Amount by which the flanger offset changes linearly over the course of the sound.",
		Min:         -50, Max: 50, Step: 1,
	},
	{
		Key: "bitCrush", Label: "Bit crush", Unit: "bits", Kind: KindInt,
		Description: "Bits per sample; lowering this quantizes the sound to fewer amplitude levels.",
		Min:         1, Max: 16, Step: 1,
	},
	{
		Key: "bitCrushSweep", Label: "Bit crush sweep", Unit: "bits", Kind: KindInt,
		Description: "Amount by which the bit crush value changes linearly over the course of the sound.",
		Min:         -16, Max: 16, Step: 1,
	},
	{
		Key: "lowPassCutoff", Label: "Low-pass cutoff", Unit: "Hz", Kind: KindFloat,
		Description: "Threshold above which frequencies are filtered out by a single-pole IIR low-pass filter.",
		Min:         0, Max: 22050, Step: 100, Logarithmic: true,
	},
	{
		Key: "lowPassCutoffSweep", Label: "Low-pass sweep", Unit: "Hz", Kind: KindFloat,
		Description: "Amount by which the low-pass cutoff changes over the course of the sound.",
		Min:         -22050, Max: 22050, Step: 100, Logarithmic: true,
	},
	{
		Key: "highPassCutoff", Label: "High-pass cutoff", Unit: "Hz", Kind: KindFloat,
		Description: "Threshold below which frequencies are filtered out by a single-pole high-pass filter.",
		Min:         0, Max: 22050, Step: 100, Logarithmic: true,
	},
	{
		Key: "highPassCutoffSweep", Label: "High-pass sweep", Unit: "Hz", Kind: KindFloat,
		Description: "Amount by which the high-pass cutoff changes over the course of the sound.",
		Min:         -22050, Max: 22050, Step: 100, Logarithmic: true,
	},
	{
		Key: "compression", Label: "Compression", Kind: KindFloat,
		Description: "Power to which sample magnitudes are raised; below 1 boosts quiet parts, above 1 suppresses them.",
		Min:         0, Max: 5, Step: 0.1,
	},
	{
		Key: "normalization", Label: "Normalization", Kind: KindBool,
		Description: "Whether to rescale the sound so its peak volume is at 100%.",
	},
	{
		Key: "amplification", Label: "Amplification", Unit: "%", Kind: KindFloat,
		Description: "Percentage to amplify the sound by after normalization; high values can clip.",
		Min:         0, Max: 500, Step: 10,
	},
}

var byKey = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(descriptors))
	for i := range descriptors {
		m[descriptors[i].Key] = &descriptors[i]
	}
	return m
}()

// Lookup returns the descriptor for the given parameter key, or nil.
func Lookup(key string) *Descriptor {
	return byKey[key]
}

// Keys returns all parameter keys in presentation order.
func Keys() []string {
	keys := make([]string, len(descriptors))
	for i := range descriptors {
		keys[i] = descriptors[i].Key
	}
	return keys
}

// All returns the descriptors in presentation order.
func All() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}
