package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/drillrota/internal/cli"
	"github.com/alexanderramin/drillrota/internal/config"
	"github.com/alexanderramin/drillrota/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags needed before the command tree exists.
type globalFlags struct {
	configPath string
	verbose    bool
}

// scanGlobalFlags picks --config and --verbose out of args, ignoring
// everything else. Cobra parses the full command line later.
func scanGlobalFlags(args []string) globalFlags {
	var g globalFlags
	fs := pflag.NewFlagSet("drillrota", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&g.configPath, "config", "", "")
	fs.BoolVarP(&g.verbose, "verbose", "v", false, "")
	_ = fs.Parse(args)
	return g
}

func run(args []string) error {
	flags := scanGlobalFlags(args)

	cfg, err := config.Load(config.ResolvePath(flags.configPath))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var observers []service.UseCaseObserver
	if cfg.Log.Enabled || flags.verbose {
		level := cfg.Log.SlogLevel()
		if flags.verbose {
			level = min(level, slog.LevelInfo)
		}
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, level))
	}

	stdoutTTY := isTerminal(os.Stdout.Fd())
	switch {
	case !cfg.Display.UseColor(stdoutTTY):
		lipgloss.SetColorProfile(termenv.Ascii)
	case cfg.Display.Color == config.ColorAlways && !stdoutTTY:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	app := &cli.App{
		Schedules: service.NewScheduleService(observers...),
		Presets:   service.NewPresetService(cfg.Presets...),
		Defaults:  cfg.Defaults,
		Display:   cfg.Display,
	}

	// The viewer and the form need both ends of a terminal.
	app.IsInteractive = func() bool {
		return isTerminal(os.Stdin.Fd()) && stdoutTTY
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
