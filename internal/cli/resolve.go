package cli

import (
	"context"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/spf13/cobra"
)

// scheduleFlags are the parameter flags shared by commands that compute a
// schedule.
type scheduleFlags struct {
	preset    string
	work      int
	rest      int
	induction int
	target    int
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "Start from a named preset (see 'drillrota presets')")
	cmd.Flags().IntVar(&f.work, "work", 0, "Work days per cycle (N)")
	cmd.Flags().IntVar(&f.rest, "rest", 0, "Rest days per cycle including travel (M)")
	cmd.Flags().IntVar(&f.induction, "induction", 0, "Induction days (I)")
	cmd.Flags().IntVar(&f.target, "target", 0, "Total drilling days (T)")
}

// resolveConfig layers the schedule config: app defaults, then the preset,
// then any parameter flag set explicitly on cmd. It returns the config and
// the preset name that was applied, if any.
func resolveConfig(ctx context.Context, app *App, cmd *cobra.Command, f *scheduleFlags) (domain.ScheduleConfig, string, error) {
	cfg := app.Defaults
	presetName := ""

	if f.preset != "" {
		p, err := app.Presets.Get(ctx, f.preset)
		if err != nil {
			return domain.ScheduleConfig{}, "", err
		}
		cfg = p.Config
		presetName = p.Name
	}

	flags := cmd.Flags()
	if flags.Changed("work") {
		cfg.WorkDays = f.work
	}
	if flags.Changed("rest") {
		cfg.RestDays = f.rest
	}
	if flags.Changed("induction") {
		cfg.InductionDays = f.induction
	}
	if flags.Changed("target") {
		cfg.TotalDrillingDays = f.target
	}
	return cfg, presetName, nil
}
