// Package battle runs a single engagement between two armies as a sequence
// of simultaneous dice rounds.
package battle

import (
	"github.com/boardgameodds/fief/internal/dice"
	"github.com/boardgameodds/fief/internal/models"
)

// Outcome is the state of a battle
type Outcome int

const (
	InProgress Outcome = iota
	WinA
	Tie
	WinB
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case WinA:
		return "A wins"
	case Tie:
		return "mutual destruction"
	case WinB:
		return "B wins"
	default:
		return "unknown"
	}
}

// Resolved reports whether the battle is over
func (o Outcome) Resolved() bool {
	return o == WinA || o == Tie || o == WinB
}

// Round records what happened during one simultaneous exchange
type Round struct {
	DiceA   int
	DiceB   int
	RollA   int // damage dealt by A to B
	RollB   int // damage dealt by B to A
	Outcome Outcome
}

// Battle holds the mutable state of one engagement. A Battle is owned by a
// single trial and must not be shared between goroutines.
type Battle struct {
	A         models.Army
	B         models.Army
	StrategyA models.DamageStrategy
	StrategyB models.DamageStrategy

	// Cavalcade gives side B +1 per die on every roll
	Cavalcade bool
}

// New creates a battle between copies of a and b, both sides taking damage
// men-at-arms first
func New(a, b models.Army) *Battle {
	return &Battle{
		A:         a.Clone(),
		B:         b.Clone(),
		StrategyA: models.MenAtArmsFirst,
		StrategyB: models.MenAtArmsFirst,
	}
}

// Clone returns an independent copy of the battle state
func (b *Battle) Clone() *Battle {
	c := *b
	return &c
}

// Penalties returns the dice modifiers applied to A and B. Each side is
// penalized by the opposing side's structure.
func (b *Battle) Penalties() (penaltyA, penaltyB int) {
	return b.B.AttackerPenalty(), b.A.AttackerPenalty()
}

// Status evaluates the terminal conditions without rolling.
// A side that cannot roll any dice loses; both unable to roll is a tie.
// Otherwise a defeated side loses.
func (b *Battle) Status() Outcome {
	penaltyA, penaltyB := b.Penalties()
	if o := diceOutcome(b.A.Dice(penaltyA), b.B.Dice(penaltyB)); o != InProgress {
		return o
	}
	return b.defeatOutcome()
}

// Step plays one round
func (b *Battle) Step(r *dice.Roller) Round {
	penaltyA, penaltyB := b.Penalties()
	return b.step(r, penaltyA, penaltyB)
}

// Resolve plays rounds until the battle is decided and returns the outcome
func (b *Battle) Resolve(r *dice.Roller) Outcome {
	// Structures never change during a battle
	penaltyA, penaltyB := b.Penalties()
	for {
		round := b.step(r, penaltyA, penaltyB)
		if round.Outcome.Resolved() {
			return round.Outcome
		}
	}
}

func (b *Battle) step(r *dice.Roller, penaltyA, penaltyB int) Round {
	round := Round{
		DiceA: b.A.Dice(penaltyA),
		DiceB: b.B.Dice(penaltyB),
	}

	if o := diceOutcome(round.DiceA, round.DiceB); o != InProgress {
		round.Outcome = o
		return round
	}

	bonusB := 0
	if b.Cavalcade {
		bonusB = 1
	}
	round.RollA = r.Roll(round.DiceA, 0)
	round.RollB = r.Roll(round.DiceB, bonusB)

	// Each roll only touches the opposing army, so both applications
	// see the pre-round state of their own target
	b.A.ApplyDamage(round.RollB, b.StrategyA)
	b.B.ApplyDamage(round.RollA, b.StrategyB)

	round.Outcome = b.defeatOutcome()
	return round
}

func diceOutcome(diceA, diceB int) Outcome {
	switch {
	case diceA == 0 && diceB == 0:
		return Tie
	case diceA == 0:
		return WinB
	case diceB == 0:
		return WinA
	}
	return InProgress
}

func (b *Battle) defeatOutcome() Outcome {
	defeatedA, defeatedB := b.A.IsDefeated(), b.B.IsDefeated()
	switch {
	case defeatedA && defeatedB:
		return Tie
	case defeatedA:
		return WinB
	case defeatedB:
		return WinA
	}
	return InProgress
}

// Key packs the full battle state into a compact integer
func (b *Battle) Key() uint64 {
	var k uint64
	offset := 0

	k |= uint64(b.A.Key()) << offset
	offset += models.KeyBits

	k |= uint64(b.StrategyA) << offset
	offset++

	k |= uint64(b.B.Key()) << offset
	offset += models.KeyBits

	k |= uint64(b.StrategyB) << offset
	offset++

	if b.Cavalcade {
		k |= 1 << offset
	}
	return k
}
