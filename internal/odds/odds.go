// Package odds builds a table of battle odds over a range of army
// compositions and writes it as CSV.
package odds

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
)

// DefaultCutoff is the attacker win rate after which weaker defenders of the
// same kind are skipped
const DefaultCutoff = 0.95

// Header is the first CSV record written by WriteCSV
var Header = []string{
	"a_men", "a_knights", "a_leader", "a_structure",
	"b_men", "b_knights", "b_leader", "b_structure",
	"a_win_rate", "b_win_rate", "tie_rate",
}

// Row is one evaluated matchup
type Row struct {
	A      models.Army
	B      models.Army
	Result simulator.Result
}

// SweepConfig controls which matchups are evaluated
type SweepConfig struct {
	// Attackers restricts the sweep; nil uses AttackerGrid()
	Attackers []models.Army
	// Cutoff ends a defender series once A wins at least this often.
	// Values outside (0, 1] use DefaultCutoff.
	Cutoff float64
	// OnRow, when set, is called for every evaluated matchup in order
	OnRow func(Row)
}

// sweepLeaders are the leaders considered on both sides, strongest first
var sweepLeaders = []models.Leader{models.LordOrTitledLady, models.NoneOrLady}

// AttackerGrid returns every attacker composition the sweep considers.
// Attackers never fight from a structure.
func AttackerGrid() []models.Army {
	var grid []models.Army
	for _, leader := range sweepLeaders {
		for k := models.MaxKnights; k >= 0; k-- {
			for m := models.MaxMenAtArms; m >= 0; m-- {
				grid = append(grid, models.NewArmy(m, k, models.NoStructure, leader))
			}
		}
	}
	return grid
}

// Sweep evaluates each attacker against a descending series of defenders.
// Defenders stronger than the attacker are skipped. Within a series of
// men-at-arms counts, an attacker win rate at the cutoff ends the series.
func Sweep(ctx context.Context, sim *simulator.Simulator, cfg SweepConfig) ([]Row, error) {
	attackers := cfg.Attackers
	if attackers == nil {
		attackers = AttackerGrid()
	}
	cutoff := cfg.Cutoff
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}

	sim.Logger.Info().
		Int("attackers", len(attackers)).
		Float64("cutoff", cutoff).
		Msg("Starting odds sweep")

	var rows []Row
	for _, a := range attackers {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("attacker %+v: %w", a, err)
		}

		series, err := sweepDefenders(ctx, sim, a, cutoff, cfg.OnRow)
		if err != nil {
			return nil, err
		}
		rows = append(rows, series...)
	}

	sim.Logger.Info().Int("rows", len(rows)).Msg("Odds sweep complete")
	return rows, nil
}

func sweepDefenders(ctx context.Context, sim *simulator.Simulator, a models.Army, cutoff float64, onRow func(Row)) ([]Row, error) {
	var rows []Row
	for _, leader := range sweepLeaders {
		for s := models.FortifiedCity; s >= models.NoStructure; s-- {
			for k := models.MaxKnights; k >= 0; k-- {
				for m := models.MaxMenAtArms; m >= 0; m-- {
					b := models.NewArmy(m, k, s, leader)
					if a.StrengthPoints() < b.StrengthPoints() {
						continue
					}

					result, err := sim.Run(ctx, a, b)
					if err != nil {
						return nil, err
					}
					row := Row{A: a, B: b, Result: result}
					rows = append(rows, row)
					if onRow != nil {
						onRow(row)
					}

					if result.WinRateA >= cutoff {
						break
					}
				}
			}
		}
	}
	return rows, nil
}

// WriteCSV writes the header followed by one record per row
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r Row) []string {
	return []string{
		strconv.Itoa(r.A.MenAtArms),
		strconv.Itoa(r.A.Knights),
		r.A.Leader.String(),
		r.A.Structure.String(),
		strconv.Itoa(r.B.MenAtArms),
		strconv.Itoa(r.B.Knights),
		r.B.Leader.String(),
		r.B.Structure.String(),
		formatRate(r.Result.WinRateA),
		formatRate(r.Result.WinRateB),
		formatRate(r.Result.TieRate),
	}
}

func formatRate(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
