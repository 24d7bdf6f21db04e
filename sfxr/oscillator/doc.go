// Package oscillator provides the waveform generators used by the synthesis
// engine: seven stateless periodic shapes and three stateful noise sources
// (white, pink, brown) driven by a deterministic xorshift PRNG.
//
// All oscillators map a phase in [0, 1) to a sample in roughly [-1, 1].
// Instances are selected once per run from the sound's waveform tag; noise
// instances carry PRNG and filter state across calls and must therefore see
// phases in non-decreasing cycle order.
package oscillator
