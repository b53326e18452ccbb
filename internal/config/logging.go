package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// LogConfig enables use-case logging on stderr.
type LogConfig struct {
	Enabled bool   `koanf:"enabled"`
	Level   string `koanf:"level"`
}

func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LogConfig) Validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured level, or info when it cannot be parsed.
func (c LogConfig) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
