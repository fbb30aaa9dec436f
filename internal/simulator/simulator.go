// Package simulator estimates battle outcome probabilities by running many
// independent battles and aggregating the results.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/boardgameodds/fief/internal/battle"
	"github.com/boardgameodds/fief/internal/dice"
	"github.com/boardgameodds/fief/internal/models"
)

// Defaults for a simulation run
const (
	DefaultTrials    = 100000
	DefaultBatchSize = 1000
)

// ErrInvalidTrialCount indicates a non-positive number of trials
var ErrInvalidTrialCount = errors.New("trial count must be positive")

// Config controls how a simulation is run
type Config struct {
	Trials    int
	Workers   int    // 0 uses runtime.NumCPU()
	BatchSize int    // trials between progress reports and cancellation checks
	Seed      uint64 // 0 means unseeded

	// Progress, when set, is called after each completed batch
	Progress func(done, total int)
}

// Simulator runs Monte Carlo battle trials
type Simulator struct {
	Trials    int
	Workers   int
	BatchSize int
	Seed      uint64
	Progress  func(done, total int)
	Logger    zerolog.Logger
}

// NewSimulator creates a simulator, filling zero fields with defaults.
// A negative trial count is kept so that Run can reject it.
func NewSimulator(cfg Config, log zerolog.Logger) *Simulator {
	s := &Simulator{
		Trials:    DefaultTrials,
		Workers:   runtime.NumCPU(),
		BatchSize: DefaultBatchSize,
		Seed:      cfg.Seed,
		Progress:  cfg.Progress,
		Logger:    log,
	}

	if cfg.Trials != 0 {
		s.Trials = cfg.Trials
	}
	if cfg.Workers > 0 {
		s.Workers = cfg.Workers
	}
	if cfg.BatchSize > 0 {
		s.BatchSize = cfg.BatchSize
	}

	return s
}

// Simulate runs trials battles of a against b sequentially and returns the
// outcome probabilities
func Simulate(a, b models.Army, trials int) (Result, error) {
	s := &Simulator{
		Trials:    trials,
		Workers:   1,
		BatchSize: DefaultBatchSize,
		Logger:    zerolog.Nop(),
	}
	return s.Run(context.Background(), a, b)
}

// Run validates the armies and runs the configured number of trials.
// Cancelling ctx stops the run between batches and returns ctx.Err().
func (s *Simulator) Run(ctx context.Context, a, b models.Army) (Result, error) {
	if err := a.Validate(); err != nil {
		return Result{}, fmt.Errorf("army A: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Result{}, fmt.Errorf("army B: %w", err)
	}
	if s.Trials <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTrialCount, s.Trials)
	}

	workers := s.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > s.Trials {
		workers = s.Trials
	}
	batch := s.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}

	start := time.Now()
	s.Logger.Debug().
		Int("trials", s.Trials).
		Int("workers", workers).
		Uint64("seed", s.Seed).
		Msg("Starting simulation")

	tallies := make([]Tally, workers)
	var (
		mu   sync.Mutex
		done int
	)
	report := func(n int) {
		mu.Lock()
		defer mu.Unlock()
		done += n
		if s.Progress != nil {
			s.Progress(done, s.Trials)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		share := s.Trials / workers
		if w < s.Trials%workers {
			share++
		}
		roller := dice.NewRoller(s.sourceFor(w))

		g.Go(func() error {
			local := &tallies[w]
			for remaining := share; remaining > 0; {
				if err := ctx.Err(); err != nil {
					return err
				}
				n := min(batch, remaining)
				for i := 0; i < n; i++ {
					local.Add(battle.New(a, b).Resolve(roller))
				}
				remaining -= n
				report(n)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var total Tally
	for _, t := range tallies {
		total.Merge(t)
	}

	result := NewResult(total)
	s.Logger.Debug().
		Int("wins_a", total.WinsA).
		Int("ties", total.Ties).
		Int("wins_b", total.WinsB).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation complete")

	return result, nil
}

// sourceFor returns the dice source owned by one worker
func (s *Simulator) sourceFor(worker int) dice.Source {
	if s.Seed == 0 {
		return dice.NewRandomSource()
	}
	return dice.NewSource(s.Seed + uint64(worker))
}
