// Package randsrc: xoshiro256** source with integer-array state encoding.
package randsrc

import (
	"errors"
	"math/bits"
)

// stateWords is the number of 64-bit words in a Source state encoding.
const stateWords = 4

// ErrBadState indicates a state slice that is not a valid xoshiro256**
// state: wrong length, or all zero (the one state the generator can never
// leave).
var ErrBadState = errors.New("randsrc: invalid generator state")

// Uniform is the draw surface the repair algorithm consumes: a uniformly
// distributed integer in [0, n). Implementations are stateful and must not
// be shared across goroutines without external serialization.
type Uniform interface {
	// Uniform returns a uniformly distributed int in [0, n).
	// n must be positive; n <= 0 returns 0.
	Uniform(n int) int
}

// Source is a xoshiro256** pseudo-random generator.
// The zero value is invalid; use New or Restore.
type Source struct {
	s [stateWords]uint64
}

// New returns a Source seeded from a single uint64. The 256-bit state is
// filled by a splitmix64 expansion of the seed, so every seed (including 0)
// yields a valid, non-zero state.
func New(seed uint64) *Source {
	src := &Source{}
	sm := seed
	for i := range src.s {
		src.s[i] = splitmix64(&sm)
	}

	return src
}

// NewSources returns n independent Sources derived from one seed, one per
// worker. Derivation draws each child seed from a single splitmix64 stream,
// so the set is reproducible from the parent seed alone.
// A non-positive n yields an empty slice.
func NewSources(seed uint64, n int) []*Source {
	if n <= 0 {
		return nil
	}
	sm := seed
	sources := make([]*Source, n)
	for i := range sources {
		sources[i] = New(splitmix64(&sm))
	}

	return sources
}

// Uniform returns a uniformly distributed int in [0, n) using modulus
// rejection to avoid bias. n <= 0 returns 0 without consuming a draw.
func (src *Source) Uniform(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	// Draws below this threshold would over-represent small residues.
	discard := -bound % bound
	for {
		if v := src.next(); v >= discard {
			return int(v % bound)
		}
	}
}

// State returns the generator's full state as a fresh 4-word slice.
// Feeding the result to Restore reproduces the draw sequence exactly.
func (src *Source) State() []uint64 {
	state := make([]uint64, stateWords)
	copy(state, src.s[:])

	return state
}

// Restore overwrites the generator's state from an encoding previously
// produced by State. Returns ErrBadState if the slice is not 4 words or is
// all zero.
func (src *Source) Restore(state []uint64) error {
	if len(state) != stateWords {
		return ErrBadState
	}
	if state[0]|state[1]|state[2]|state[3] == 0 {
		return ErrBadState
	}
	copy(src.s[:], state)

	return nil
}

// next advances the xoshiro256** state and returns the next 64-bit output.
func (src *Source) next() uint64 {
	result := bits.RotateLeft64(src.s[1]*5, 7) * 9
	t := src.s[1] << 17

	src.s[2] ^= src.s[0]
	src.s[3] ^= src.s[1]
	src.s[1] ^= src.s[2]
	src.s[0] ^= src.s[3]
	src.s[2] ^= t
	src.s[3] = bits.RotateLeft64(src.s[3], 45)

	return result
}

// splitmix64 advances *x and returns the next splitmix64 output.
func splitmix64(x *uint64) uint64 {
	*x += 0x9E3779B97F4A7C15
	z := *x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}
