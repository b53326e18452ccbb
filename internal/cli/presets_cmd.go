package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/drillrota/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPresetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List regime presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets, err := app.Presets.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(presets) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No presets configured."))
				return nil
			}

			headers := []string{"#", "NAME", "REGIME", "INDUCTION", "TARGET", "LABEL"}
			rows := make([][]string, 0, len(presets))
			for i, p := range presets {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					formatter.Bold(p.Name),
					p.Config.Regime(),
					strconv.Itoa(p.Config.InductionDays),
					strconv.Itoa(p.Config.TotalDrillingDays),
					p.DisplayLabel(),
				})
			}
			align := []bool{true, false, false, true, true, false}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTableAligned(headers, rows, align))
			return nil
		},
	}
}
