package main

import (
	"github.com/spf13/cobra"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
	"github.com/boardgameodds/fief/internal/tui"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit both armies interactively and estimate their odds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			armyA, armyB, err := a.settings.Armies()
			if err != nil {
				return err
			}

			sim := a.simulator(nil)
			run := func(x, y models.Army) (simulator.Result, error) {
				return sim.Run(cmd.Context(), x, y)
			}

			final, err := tui.Run(tui.NewModel(armyA, armyB, run))
			if err != nil {
				return err
			}
			if r, ok := final.Result(); ok && !a.quiet {
				printArmies(cmd.OutOrStdout(), final.A, final.B)
				printResult(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}
