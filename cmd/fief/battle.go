package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/boardgameodds/fief/internal/battle"
	"github.com/boardgameodds/fief/internal/dice"
	"github.com/boardgameodds/fief/internal/models"
)

func newBattleCmd(a *app) *cobra.Command {
	var (
		strategyA string
		strategyB string
		cavalcade bool
	)

	cmd := &cobra.Command{
		Use:   "battle",
		Short: "Play a single battle and show every round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			armyA, armyB, err := a.settings.Armies()
			if err != nil {
				return err
			}

			b := battle.New(armyA, armyB)
			if b.StrategyA, err = models.ParseDamageStrategy(strategyA); err != nil {
				return fmt.Errorf("army a: %w", err)
			}
			if b.StrategyB, err = models.ParseDamageStrategy(strategyB); err != nil {
				return fmt.Errorf("army b: %w", err)
			}
			b.Cavalcade = cavalcade

			roller := dice.NewRoller(nil)
			if a.settings.Seed != 0 {
				roller = dice.NewSeededRoller(a.settings.Seed)
			}

			a.banner(cmd.OutOrStdout(), "Single Battle")
			outcome := playBattle(cmd.OutOrStdout(), b, roller)

			resultColor := color.New(color.FgGreen, color.Bold)
			if outcome == battle.WinB {
				resultColor = color.New(color.FgRed, color.Bold)
			}
			resultColor.Fprintf(cmd.OutOrStdout(), "\n%s\n", outcome)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyA, "a-strategy", "men_at_arms_first", "Damage strategy of army A (men_at_arms_first, knights_first)")
	cmd.Flags().StringVar(&strategyB, "b-strategy", "men_at_arms_first", "Damage strategy of army B (men_at_arms_first, knights_first)")
	cmd.Flags().BoolVar(&cavalcade, "cavalcade", false, "Army B adds 1 to every die")
	return cmd
}

// playBattle steps the battle to its end, printing one table row per round
func playBattle(w io.Writer, b *battle.Battle, r *dice.Roller) battle.Outcome {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Round", "Dice A", "Dice B", "Roll A", "Roll B", "Army A", "Army B"}),
	)

	var outcome battle.Outcome
	for n := 1; !outcome.Resolved(); n++ {
		round := b.Step(r)
		outcome = round.Outcome

		table.Append([]string{
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", round.DiceA),
			fmt.Sprintf("%d", round.DiceB),
			fmt.Sprintf("%d", round.RollA),
			fmt.Sprintf("%d", round.RollB),
			formatArmy(b.A),
			formatArmy(b.B),
		})
	}
	table.Render()
	return outcome
}

func formatArmy(a models.Army) string {
	return fmt.Sprintf("%d men, %d knights", a.MenAtArms, a.Knights)
}
