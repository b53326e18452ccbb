package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/drillrota/internal/cli/formatter"
	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// customPreset is the select value meaning "no preset, use the defaults".
const customPreset = ""

// formAccent is the focus color of the form: the drilling status color, so
// the parameter being edited reads like the P cells it produces.
var formAccent = formatter.ColorGreen

// drillrotaHuhTheme returns a huh theme built on the rotation status palette.
// Focused fields take the drilling accent, selections the Subida blue, and
// validation errors the same style as an error count cell in the grid.
func drillrotaHuhTheme() *huh.Theme {
	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	dim := fg(formatter.ColorDim)

	t := huh.ThemeBase()

	f := &t.Focused
	f.Base = f.Base.BorderForeground(formAccent)
	f.Title = fg(formAccent).Bold(true)
	f.Description = dim
	f.SelectSelector = fg(formatter.ColorBlue).SetString("▸ ")
	f.SelectedOption = fg(formatter.ColorBlue).Bold(true)
	f.UnselectedOption = fg(formatter.ColorFg)
	f.TextInput.Prompt = fg(formAccent)
	f.TextInput.Cursor = fg(formAccent)
	f.TextInput.Text = formatter.StyleBold
	f.TextInput.Placeholder = dim
	f.ErrorIndicator = formatter.CountStyle(formatter.CountError).SetString(" ✖")
	f.ErrorMessage = formatter.CountStyle(formatter.CountError)
	f.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formAccent).Padding(0, 1)
	f.BlurredButton = dim.Padding(0, 1)

	// Blurred fields fade to the dim color, like Empty grid cells.
	b := &t.Blurred
	b.Base = b.Base.BorderForeground(formatter.ColorDim)
	b.Title = dim
	b.Description = dim
	b.SelectSelector = dim.SetString("  ")
	b.SelectedOption = dim
	b.UnselectedOption = dim
	b.TextInput.Prompt = dim
	b.TextInput.Text = dim

	return t
}

// configFormValues holds the text of the parameter inputs.
type configFormValues struct {
	Work      string
	Rest      string
	Induction string
	Target    string
}

func formValuesFrom(cfg domain.ScheduleConfig) configFormValues {
	return configFormValues{
		Work:      strconv.Itoa(cfg.WorkDays),
		Rest:      strconv.Itoa(cfg.RestDays),
		Induction: strconv.Itoa(cfg.InductionDays),
		Target:    strconv.Itoa(cfg.TotalDrillingDays),
	}
}

// config parses the inputs. Each value must already have passed its
// validator; the error is for values set programmatically.
func (v configFormValues) config() (domain.ScheduleConfig, error) {
	var cfg domain.ScheduleConfig
	fields := []struct {
		name string
		text string
		dst  *int
	}{
		{"work_days", v.Work, &cfg.WorkDays},
		{"rest_days", v.Rest, &cfg.RestDays},
		{"induction_days", v.Induction, &cfg.InductionDays},
		{"total_drilling_days", v.Target, &cfg.TotalDrillingDays},
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f.text))
		if err != nil {
			return domain.ScheduleConfig{}, fmt.Errorf("%s: %q is not a number", f.name, f.text)
		}
		*f.dst = n
	}
	return cfg, nil
}

// rangeValidator accepts whole numbers in [lo, hi].
func rangeValidator(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// rangeInput returns a huh.Input bound to value and limited to [lo, hi].
func rangeInput(title string, lo, hi int, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%d-%d", lo, hi)).
		Placeholder(*value).
		Value(value).
		Validate(rangeValidator(lo, hi))
}

// presetSelectForm lets the user start from a preset or from the defaults.
func presetSelectForm(presets []domain.Preset, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(presets)+1)
	options = append(options, huh.NewOption("Custom (start from defaults)", customPreset))
	for _, p := range presets {
		options = append(options, huh.NewOption(p.Name+"  "+p.DisplayLabel(), p.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Preset").
				Options(options...).
				Value(result),
		),
	).WithTheme(drillrotaHuhTheme()).WithShowHelp(false)
}

// configForm collects the four schedule parameters with range validation.
func configForm(v *configFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			rangeInput("Work days (N)", domain.MinWorkDays, domain.MaxWorkDays, &v.Work),
			rangeInput("Rest days (M)", domain.MinRestDays, domain.MaxRestDays, &v.Rest),
			rangeInput("Induction days (I)", domain.MinInductionDays, domain.MaxInductionDays, &v.Induction),
			rangeInput("Total drilling days (T)", domain.MinTotalDrillingDays, domain.MaxTotalDrillingDays, &v.Target),
		),
	).WithTheme(drillrotaHuhTheme()).WithShowHelp(false)
}
