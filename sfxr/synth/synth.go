package synth

import (
	"math"

	"github.com/cwbudde/algo-sfxr/sfxr/sound"
)

// DefaultBlockSize is the number of samples processed per Tick unless
// overridden with WithBlockSize. It is a tuning constant only; the rendered
// output does not depend on it.
const DefaultBlockSize = 10240

// transformer processes one contiguous index range [start, end) of the
// shared sample buffer. Stages run in fixed pipeline order for every block,
// and blocks arrive in strictly increasing, non-overlapping order; the
// carried state (oscillator phase, filter memory, delay buffers, running
// extrema) is only valid under that sequencing.
type transformer interface {
	process(snd *sound.Sound, buf []float64, start, end int)
}

// Synth renders one Sound. It owns the output buffer and the per-stage
// state for the duration of the run.
type Synth struct {
	snd *sound.Sound

	array       []float64
	startSample int
	blockSize   int

	transformers []transformer
}

// Option configures a Synth.
type Option func(*Synth)

// WithBlockSize sets the per-Tick block size. Values <= 0 are ignored.
func WithBlockSize(blockSize int) Option {
	return func(s *Synth) {
		if blockSize > 0 {
			s.blockSize = blockSize
		}
	}
}

// New creates a Synth for the given sound. The output buffer holds
// max(1, ceil(sampleRate * duration)) samples, all initially zero.
func New(snd *sound.Sound, opts ...Option) *Synth {
	numSamples := int(math.Ceil(snd.SampleRate * snd.Duration()))
	if numSamples < 1 {
		numSamples = 1
	}

	s := &Synth{
		snd:       snd,
		array:     make([]float64, numSamples),
		blockSize: DefaultBlockSize,
		transformers: []transformer{
			newGenerator(snd),
			envelope{},
			newFlanger(snd),
			bitCrush{},
			&lowPass{},
			&highPass{},
			compress{},
			&normalize{},
			amplify{},
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// NumSamples returns the length of the output buffer.
func (s *Synth) NumSamples() int {
	return len(s.array)
}

// Tick renders the next block through every pipeline stage. It returns true
// once the buffer is fully rendered. Stopping early leaves valid samples in
// the completed prefix and zeros in the rest.
func (s *Synth) Tick() bool {
	numSamples := len(s.array)
	if s.startSample >= numSamples {
		return true
	}

	end := s.startSample + s.blockSize
	if end > numSamples {
		end = numSamples
	}
	for _, t := range s.transformers {
		t.process(s.snd, s.array, s.startSample, end)
	}
	s.startSample = end

	return s.startSample >= numSamples
}

// Generate runs the synth to completion and returns the output buffer.
func (s *Synth) Generate() []float64 {
	for !s.Tick() {
	}
	return s.array
}

// Generate renders the sound in a single call at its own sample rate.
func Generate(snd *sound.Sound) []float64 {
	return New(snd).Generate()
}
