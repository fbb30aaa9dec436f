package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
)

// addArmyFlags registers the composition flags of one army, e.g. --a-men
func addArmyFlags(flags *pflag.FlagSet, side, key, role string) {
	defaults := models.ConfigFromArmy(models.DefaultAttacker())
	if side == "b" {
		defaults = models.ConfigFromArmy(models.DefaultDefender())
	}

	flags.Int(side+"-men", defaults.MenAtArms, fmt.Sprintf("Men-at-arms in the %s army (0-%d)", role, models.MaxMenAtArms))
	flags.Int(side+"-knights", defaults.Knights, fmt.Sprintf("Knights in the %s army (0-%d)", role, models.MaxKnights))
	flags.String(side+"-structure", defaults.Structure, fmt.Sprintf("Structure of the %s army (none, stronghold, fortified_city)", role))
	flags.String(side+"-leader", defaults.Leader, fmt.Sprintf("Leader of the %s army (none_or_lady, lord_or_titled_lady, darc)", role))

	bind(flags, key+".menAtArms", side+"-men")
	bind(flags, key+".knights", side+"-knights")
	bind(flags, key+".structure", side+"-structure")
	bind(flags, key+".leader", side+"-leader")
}

func printArmies(w io.Writer, a, b models.Army) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Army", "Men-at-arms", "Knights", "Structure", "Leader", "Strength", "Dice"}),
	)

	penaltyA, penaltyB := b.AttackerPenalty(), a.AttackerPenalty()
	for _, row := range []struct {
		name    string
		army    models.Army
		penalty int
	}{
		{"A", a, penaltyA},
		{"B", b, penaltyB},
	} {
		table.Append([]string{
			row.name,
			fmt.Sprintf("%d", row.army.MenAtArms),
			fmt.Sprintf("%d", row.army.Knights),
			row.army.Structure.String(),
			row.army.Leader.String(),
			fmt.Sprintf("%d", row.army.StrengthPoints()),
			fmt.Sprintf("%d", row.army.Dice(row.penalty)),
		})
	}
	table.Render()
}

func printResult(w io.Writer, r simulator.Result) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Outcome", "Battles", "Probability"}),
	)

	table.Append([]string{"A wins", fmt.Sprintf("%d", r.Tally.WinsA), fmt.Sprintf("%.2f%%", r.WinRateA*100)})
	table.Append([]string{"Tie", fmt.Sprintf("%d", r.Tally.Ties), fmt.Sprintf("%.2f%%", r.TieRate*100)})
	table.Append([]string{"B wins", fmt.Sprintf("%d", r.Tally.WinsB), fmt.Sprintf("%.2f%%", r.WinRateB*100)})
	table.Render()
}
