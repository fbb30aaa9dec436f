package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/boardgameodds/fief/internal/battle"
	"github.com/boardgameodds/fief/internal/dice"
	"github.com/boardgameodds/fief/internal/simulator"
)

func newSimulateCmd(a *app) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Estimate the odds of one battle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSimulate(cmd, cached)
		},
	}
	cmd.Flags().BoolVar(&cached, "cached", false, "Resolve through the battle state cache")
	return cmd
}

func (a *app) runSimulate(cmd *cobra.Command, cached bool) error {
	w := cmd.OutOrStdout()
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	armyA, armyB, err := a.settings.Armies()
	if err != nil {
		return err
	}

	a.banner(w, "Battle Odds Estimator")
	if !a.quiet {
		fmt.Fprintln(w, "⚔️  Armies:")
		printArmies(w, armyA, armyB)
		infoColor.Fprintf(w, "\n🎲 Simulating %d battles...\n", a.settings.Trials)
	}

	start := time.Now()
	var result simulator.Result
	if cached {
		cache := simulator.NewCache(simulator.DefaultReliability)
		roller := dice.NewRoller(nil)
		if a.settings.Seed != 0 {
			roller = dice.NewSeededRoller(a.settings.Seed)
		}
		result, err = cache.Estimate(battle.New(armyA, armyB), a.settings.Trials, roller)
		if err == nil {
			a.logger.Debug().Int("states", cache.Len()).Msg("Cache filled")
		}
	} else {
		result, err = a.simulator(nil).Run(cmd.Context(), armyA, armyB)
	}
	if err != nil {
		return err
	}

	if !a.quiet {
		successColor.Fprintf(w, "\n✓ Done in %s\n", time.Since(start).Round(time.Millisecond))
	}
	printResult(w, result)
	return nil
}
