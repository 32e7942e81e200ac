package rand

import "time"

const (
	x = 123456789
	y = 362436069
	z = 521288629
	w = 88675123
)

// Source is a source of uniformly distributed random numbers. Features draw
// from a Source at well defined points only, so that a scripted Source can be
// used to reproduce an exact selection.
type Source interface {
	// Intn returns a number in [0, n). It panics if n <= 0.
	Intn(n int) int
	// Float64 returns a number in [0, 1).
	Float64() float64
}

// Random is an xorshift random number generator producing the same sequences
// as the PocketMine-MP Random class.
type Random struct {
	seed       int64
	x, y, z, w uint32
}

// NewRandom returns a Random seeded with the seed passed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Seeded returns a Random for the seed passed. A seed of 0 is replaced with a
// seed derived from the current time, so that every process run draws
// different values.
func Seeded(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandom(seed)
}

// SetSeed resets the state of the generator using the seed passed.
func (r *Random) SetSeed(seed int64) {
	r.seed = seed
	r.x = uint32(x ^ seed)
	r.y = uint32(y ^ (seed<<17 | (seed>>15)&0x7fffffff))
	r.z = uint32(z ^ (seed<<31 | (seed>>1)&0x7fffffff))
	r.w = uint32(w ^ (seed<<18 | (seed>>14)&0x7fffffff))
}

// Seed returns the seed the generator was last seeded with.
func (r *Random) Seed() int64 {
	return r.seed
}

// signedInt32 advances the generator and returns the next 32-bit value.
func (r *Random) signedInt32() int32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return int32(r.w)
}

// Int31 returns a non-negative 31-bit integer.
func (r *Random) Int31() int32 {
	return r.signedInt32() & 0x7fffffff
}

// Int31n returns a non-negative integer in [0, n). It panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int31n")
	}
	return r.Int31() % n
}

// Intn ...
func (r *Random) Intn(n int) int {
	if n <= 0 {
		panic("rand: invalid argument to Intn")
	}
	return int(r.Int31()) % n
}

// Float64 ...
func (r *Random) Float64() float64 {
	return float64(r.Int31()) / (1 << 31)
}
