// Package synth renders a sound.Sound into single-channel float64 samples.
//
// The engine is a fixed pipeline of nine stages (generator, envelope,
// flanger, bit crush, low-pass, high-pass, compress, normalize, amplify)
// that mutate one shared buffer in place, block by block. All carried stage
// state is block-size independent: the fully rendered buffer is bit-for-bit
// identical no matter how the work is split across Tick calls.
//
// A Synth and its buffer have a single owner for the lifetime of a run and
// must not be shared across goroutines. Separate runs own separate state
// and may execute concurrently.
package synth
