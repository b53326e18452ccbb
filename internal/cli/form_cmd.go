package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/drillrota/internal/cli/formatter"
	"github.com/alexanderramin/drillrota/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newFormCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Enter schedule parameters in a form and print the rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return ErrNotInteractive
			}
			ctx := cmd.Context()

			presets, err := app.Presets.List(ctx)
			if err != nil {
				return err
			}

			presetName := customPreset
			if err := presetSelectForm(presets, &presetName).Run(); err != nil {
				return formErr(err)
			}

			start := app.Defaults
			if presetName != customPreset {
				p, err := app.Presets.Get(ctx, presetName)
				if err != nil {
					return err
				}
				start = p.Config
			}

			values := formValuesFrom(start)
			if err := configForm(&values).Run(); err != nil {
				return formErr(err)
			}
			cfg, err := values.config()
			if err != nil {
				return err
			}
			// Edited values no longer match the preset.
			if presetName != customPreset && cfg != start {
				presetName = customPreset
			}

			req := contract.NewScheduleRequest(cfg)
			req.Preset = presetName
			resp, err := app.Schedules.Generate(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp, app.Display.DaysPerRow))
			return nil
		},
	}
}

// formErr turns a user abort into a plain message.
func formErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errors.New("cancelled")
	}
	return err
}
