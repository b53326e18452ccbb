package domain

import "fmt"

// Preset is a named regime offered as a quick choice.
type Preset struct {
	Name   string         `json:"name" koanf:"name"`
	Label  string         `json:"label" koanf:"label"`
	Config ScheduleConfig `json:"config" koanf:"config"`
}

// DisplayLabel returns Label, or a label derived from the config.
func (p Preset) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return PresetLabel(p.Config)
}

// PresetLabel renders a config as "14x7 / 5 ind / 90d".
func PresetLabel(c ScheduleConfig) string {
	return fmt.Sprintf("%s / %d ind / %dd", c.Regime(), c.InductionDays, c.TotalDrillingDays)
}

// DefaultPresets returns the built-in regimes.
func DefaultPresets() []Preset {
	mk := func(name string, work, rest, ind, drill int) Preset {
		cfg := ScheduleConfig{
			WorkDays:          work,
			RestDays:          rest,
			InductionDays:     ind,
			TotalDrillingDays: drill,
		}
		return Preset{Name: name, Label: PresetLabel(cfg), Config: cfg}
	}
	return []Preset{
		mk("14x7", 14, 7, 5, 90),
		mk("21x7", 21, 7, 3, 90),
		mk("10x5", 10, 5, 2, 90),
		mk("14x6", 14, 6, 4, 95),
	}
}
