package synth

import "math"

// Rand is a deterministic stream of floats in [0,1) derived from a string
// seed. The seed is folded into a 32-bit accumulator with the standard
// polynomial string hash (hash*31 + char, wrapping), and each draw advances
// the state through hash = sin(hash) * 10000, returning the fractional part.
//
// Same seed, same sequence. That is the whole contract: this is a
// statistical mock generator for reproducible per-wallet histories, with no
// cryptographic properties whatsoever. Cross-platform bit-exactness is not
// guaranteed (the stream is sensitive to the sin implementation); tests
// assert determinism and range, never exact values.
type Rand struct {
	state float64
}

// NewRand derives a stream from seed. Different salts appended to the same
// wallet address (e.g. address+"trades") yield independent streams that are
// still address-determined.
func NewRand(seed string) *Rand {
	var h int32
	for i := 0; i < len(seed); i++ {
		h = h*31 + int32(seed[i])
	}
	return &Rand{state: float64(h)}
}

// Float64 returns the next value in [0,1).
func (r *Rand) Float64() float64 {
	r.state = math.Sin(r.state) * 10000
	return r.state - math.Floor(r.state)
}

// Intn returns a value in [0,n) drawn from the stream. n must be positive.
func (r *Rand) Intn(n int) int {
	return int(r.Float64() * float64(n))
}

// Pick returns a random element of items.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Intn(len(items))]
}
