package config

import "fmt"

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DisplayConfig controls how schedules are rendered.
type DisplayConfig struct {
	// DaysPerRow is the number of day columns per grid block.
	DaysPerRow int `koanf:"days_per_row"`
	// Color is one of auto, always or never.
	Color string `koanf:"color"`
}

func (c *DisplayConfig) SetDefaults() {
	if c.DaysPerRow == 0 {
		c.DaysPerRow = 30
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func (c DisplayConfig) Validate() error {
	if c.DaysPerRow < 1 || c.DaysPerRow > 365 {
		return fmt.Errorf("display.days_per_row must be between 1 and 365 (got %d)", c.DaysPerRow)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("display.color: unknown mode %q", c.Color)
}

// UseColor resolves the mode against whether output is a terminal.
func (c DisplayConfig) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}
