package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/drillrota/internal/cli/formatter"
	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// outputFormat is a pflag.Value restricted to the supported renderings.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON:
		*f = v
		return nil
	}
	return fmt.Errorf("must be one of %s, %s", formatText, formatJSON)
}

func (f *outputFormat) Type() string { return "format" }

func newGenerateCmd(app *App) *cobra.Command {
	var params scheduleFlags
	format := formatText
	var daysPerRow int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute and print a rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, presetName, err := resolveConfig(ctx, app, cmd, &params)
			if err != nil {
				return err
			}

			req := contract.NewScheduleRequest(cfg)
			req.Preset = presetName
			resp, err := app.Schedules.Generate(ctx, req)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd, resp)
			}

			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			rows := app.Display.DaysPerRow
			if cmd.Flags().Changed("days-per-row") {
				rows = daysPerRow
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp, rows))
			return nil
		},
	}

	params.register(cmd)
	cmd.Flags().Var(&format, "format", "Output format: text or json")
	cmd.Flags().IntVar(&daysPerRow, "days-per-row", formatter.DefaultDaysPerRow, "Day columns per grid block")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func writeJSON(cmd *cobra.Command, resp *contract.ScheduleResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
