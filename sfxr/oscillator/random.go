package oscillator

// Random is a 32-bit xorshift generator. The recurrence, the additive
// output offset and the 32 discarded warm-up draws are all part of the
// output format: noise waveforms rendered from the same seed must be
// reproducible bit-for-bit across versions.
type Random struct {
	x, y, z, w uint32
}

// NewRandom returns a generator seeded with the given value.
func NewRandom(seed uint32) *Random {
	r := &Random{
		x: seed,
		y: 362436069,
		z: 521288629,
		w: 88675123,
	}
	for i := 0; i < 32; i++ {
		r.Uint32()
	}
	return r
}

// Uint32 advances the generator and returns the next value.
func (r *Random) Uint32() uint32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w + 0x80000000
}

// Uniform returns the next value mapped linearly onto [min, max].
func (r *Random) Uniform(min, max float64) float64 {
	return min + (max-min)*float64(r.Uint32())/float64(0xffffffff)
}
