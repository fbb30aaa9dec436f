package simulator

import (
	"github.com/boardgameodds/fief/internal/battle"
)

// Tally counts battle outcomes
type Tally struct {
	WinsA int
	Ties  int
	WinsB int
}

// Add records one resolved outcome. Unresolved outcomes are ignored.
func (t *Tally) Add(o battle.Outcome) {
	switch o {
	case battle.WinA:
		t.WinsA++
	case battle.Tie:
		t.Ties++
	case battle.WinB:
		t.WinsB++
	}
}

// Merge adds another tally into this one
func (t *Tally) Merge(other Tally) {
	t.WinsA += other.WinsA
	t.Ties += other.Ties
	t.WinsB += other.WinsB
}

// Total returns the number of recorded outcomes
func (t Tally) Total() int {
	return t.WinsA + t.Ties + t.WinsB
}

// Result holds outcome probabilities over all completed trials
type Result struct {
	WinRateA float64 `json:"win_rate_a"`
	TieRate  float64 `json:"tie_rate"`
	WinRateB float64 `json:"win_rate_b"`
	Tally    Tally   `json:"-"`
}

// NewResult normalizes a tally into rates. An empty tally yields zero rates.
func NewResult(t Tally) Result {
	n := t.Total()
	if n == 0 {
		return Result{Tally: t}
	}
	return Result{
		WinRateA: float64(t.WinsA) / float64(n),
		TieRate:  float64(t.Ties) / float64(n),
		WinRateB: float64(t.WinsB) / float64(n),
		Tally:    t,
	}
}

// Sum returns WinRateA + TieRate + WinRateB
func (r Result) Sum() float64 {
	return r.WinRateA + r.TieRate + r.WinRateB
}
