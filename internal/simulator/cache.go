package simulator

import (
	"fmt"
	"sync"

	"github.com/boardgameodds/fief/internal/battle"
	"github.com/boardgameodds/fief/internal/dice"
)

// DefaultReliability is the number of samples after which a cached state
// stops being simulated and is answered from its recorded distribution
const DefaultReliability = 1000

// Cache memoizes outcome tallies per battle state, including every
// intermediate state visited while resolving a battle round by round
type Cache struct {
	Reliability int

	mu      sync.Mutex
	entries map[uint64]Tally
}

// NewCache creates an empty cache. A non-positive reliability uses DefaultReliability.
func NewCache(reliability int) *Cache {
	if reliability <= 0 {
		reliability = DefaultReliability
	}
	return &Cache{
		Reliability: reliability,
		entries:     make(map[uint64]Tally),
	}
}

// Len returns the number of cached states
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Probability returns the recorded distribution for a battle state
func (c *Cache) Probability(b *battle.Battle) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.entries[b.Key()]
	return NewResult(t), ok
}

// Resolve returns one outcome for the battle without modifying it.
// The battle is played one round at a time; once a reliable state is
// reached its outcome is drawn from the cached distribution. Every state on
// the path records the final outcome.
func (c *Cache) Resolve(b *battle.Battle, r *dice.Roller) battle.Outcome {
	state := b.Clone()
	var path []uint64

	outcome := battle.InProgress
	for !outcome.Resolved() {
		key := state.Key()

		if t, reliable := c.lookup(key); reliable {
			outcome = sample(t, r)
			break
		}
		path = append(path, key)

		if outcome = state.Status(); outcome.Resolved() {
			break
		}
		state.Step(r)
	}

	c.record(path, outcome)
	return outcome
}

// Estimate resolves the battle trials times through the cache
func (c *Cache) Estimate(b *battle.Battle, trials int, r *dice.Roller) (Result, error) {
	if trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, trials)
	}
	if err := b.A.Validate(); err != nil {
		return Result{}, fmt.Errorf("army A: %w", err)
	}
	if err := b.B.Validate(); err != nil {
		return Result{}, fmt.Errorf("army B: %w", err)
	}

	var t Tally
	for i := 0; i < trials; i++ {
		t.Add(c.Resolve(b, r))
	}
	return NewResult(t), nil
}

func (c *Cache) lookup(key uint64) (Tally, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.entries[key]
	return t, t.Total() >= c.Reliability
}

func (c *Cache) record(path []uint64, o battle.Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range path {
		t := c.entries[key]
		t.Add(o)
		c.entries[key] = t
	}
}

// sample draws an outcome with the tally's empirical frequencies
func sample(t Tally, r *dice.Roller) battle.Outcome {
	n := r.Pick(t.Total())
	switch {
	case n < t.WinsA:
		return battle.WinA
	case n < t.WinsA+t.Ties:
		return battle.Tie
	default:
		return battle.WinB
	}
}
