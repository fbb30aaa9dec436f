// Package dice implements the three-faced battle dice used to resolve combat rounds.
package dice

import (
	"math/rand/v2"
)

// Faces is the number of equally likely outcomes on a battle die
const Faces = 3

// Source is the randomness provider for dice rolls.
//
// Implementations need not be safe for concurrent use; give each
// goroutine its own Source.
type Source interface {
	// IntN returns a non-negative random int in [0, n).
	IntN(n int) int
}

// NewSource returns a deterministic PCG source for the given seed
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns an unseeded source
func NewRandomSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Roller rolls battle dice from a Source
type Roller struct {
	src Source
}

// NewRoller creates a roller. A nil source falls back to NewRandomSource.
func NewRoller(src Source) *Roller {
	if src == nil {
		src = NewRandomSource()
	}
	return &Roller{src: src}
}

// NewSeededRoller creates a roller backed by NewSource(seed)
func NewSeededRoller(seed uint64) *Roller {
	return NewRoller(NewSource(seed))
}

// Face rolls a single die and returns a value in [1, Faces]
func (r *Roller) Face() int {
	return r.src.IntN(Faces) + 1
}

// Roll sums n dice, adding bonus to every face. n <= 0 rolls nothing.
func (r *Roller) Roll(n, bonus int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.Face() + bonus
	}
	return total
}

// Pick returns a uniform index in [0, n). n must be positive.
func (r *Roller) Pick(n int) int {
	return r.src.IntN(n)
}
