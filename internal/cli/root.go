package cli

import (
	"errors"

	"github.com/alexanderramin/drillrota/internal/config"
	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/alexanderramin/drillrota/internal/service"
	"github.com/spf13/cobra"
)

// ErrNotInteractive is returned by commands that need a terminal.
var ErrNotInteractive = errors.New("this command requires an interactive terminal")

// App holds references to all service interfaces used by CLI commands,
// plus the configuration values commands fall back to.
type App struct {
	Schedules service.ScheduleService
	Presets   service.PresetService

	// Defaults is the schedule config used when no preset or flag says otherwise.
	Defaults domain.ScheduleConfig
	Display  config.DisplayConfig

	// IsInteractive reports whether a terminal is attached. Nil means no.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "drillrota" command and registers all
// subcommands against the provided App.
//
// --config and --verbose are read by main before the App is built; they are
// declared here so cobra accepts them and lists them in help.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "drillrota",
		Short:         "Three-supervisor drilling rotation generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log use-case events to stderr")

	root.AddCommand(
		newGenerateCmd(app),
		newPresetsCmd(app),
		newViewCmd(app),
		newFormCmd(app),
	)

	return root
}
