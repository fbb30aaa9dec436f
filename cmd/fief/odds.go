package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/boardgameodds/fief/internal/odds"
)

func newOddsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Write a table of odds over many army compositions",
		Long: `Sweeps attacker compositions against descending series of defenders and
writes every evaluated matchup as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOdds(cmd)
		},
	}

	cmd.Flags().StringP("output", "o", "odds.csv", "CSV output path")
	cmd.Flags().Float64("cutoff", odds.DefaultCutoff, "Attacker win rate that ends a defender series")
	bind(cmd.Flags(), "odds.output", "output")
	bind(cmd.Flags(), "odds.cutoff", "cutoff")
	return cmd
}

func (a *app) runOdds(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	a.banner(w, "Odds Table")

	attackers := odds.AttackerGrid()
	if !a.quiet {
		infoColor.Fprintf(w, "🎲 %d attackers, %d battles per matchup\n", len(attackers), a.settings.Trials)
	}

	evaluated := 0
	rows, err := odds.Sweep(cmd.Context(), a.simulator(nil), odds.SweepConfig{
		Attackers: attackers,
		Cutoff:    a.settings.Odds.Cutoff,
		OnRow: func(r odds.Row) {
			evaluated++
			a.logger.Debug().
				Int("row", evaluated).
				Int("a_strength", r.A.StrengthPoints()).
				Int("b_strength", r.B.StrengthPoints()).
				Float64("a_win_rate", r.Result.WinRateA).
				Msg("Matchup evaluated")
		},
	})
	if err != nil {
		return err
	}

	path := a.settings.Odds.Output
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := odds.WriteCSV(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	successColor.Fprintf(w, "✓ Wrote %d matchups to %s\n", len(rows), path)
	return nil
}
