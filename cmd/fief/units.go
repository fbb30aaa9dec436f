package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/boardgameodds/fief/internal/models"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List troop types and their combat values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			a.banner(cmd.OutOrStdout(), "Troops")
			printUnitStats(cmd.OutOrStdout())
		},
	}
}

func printUnitStats(w io.Writer) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Unit", "Strength", "Max Count", "Points at Max"}),
	)

	for _, u := range models.AllUnitDefinitions() {
		table.Append([]string{
			u.Name,
			fmt.Sprintf("%d", u.Strength),
			fmt.Sprintf("%d", u.MaxCount),
			fmt.Sprintf("%d", u.Strength*u.MaxCount),
		})
	}
	table.Render()
}
