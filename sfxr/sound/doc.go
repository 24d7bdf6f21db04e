// Package sound defines the parameter set describing one procedural sound
// effect, together with the pure signal functions derived from it
// (instantaneous frequency, square duty and amplitude envelope).
//
// A Sound is treated as read-only for the duration of a synthesis run; the
// engine in package synth never mutates it and performs no range validation.
// Out-of-range values are computed through as-is.
package sound
