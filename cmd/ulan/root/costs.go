package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ulan/internal/character"
	"ulan/internal/ui"
)

func newCostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "costs",
		Short: "Show the point-buy cost table",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Point-Buy Costs"))
			fmt.Fprintln(out, ui.LabelValue("Budget", character.PointBudget))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("Score  Total  Step"))
			for _, row := range character.CostTable() {
				step := "-"
				if row.Marginal > 0 {
					step = fmt.Sprintf("+%d", row.Marginal)
				}
				fmt.Fprintf(out, "%5d  %5d  %4s\n", row.Value, row.Cost, step)
			}
			return nil
		},
	}
	return cmd
}
