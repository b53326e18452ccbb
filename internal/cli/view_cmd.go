package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var params scheduleFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse a rotation interactively and switch presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return ErrNotInteractive
			}
			ctx := cmd.Context()
			cfg, presetName, err := resolveConfig(ctx, app, cmd, &params)
			if err != nil {
				return err
			}
			presets, err := app.Presets.List(ctx)
			if err != nil {
				return err
			}

			m := newScheduleView(app, presets, cfg, presetName)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}

	params.register(cmd)
	return cmd
}
