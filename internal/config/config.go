// Package config loads drillrota settings from an optional YAML or JSON file
// with DRILLROTA_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override. Nested keys are separated
// by a double underscore: DRILLROTA_DISPLAY__DAYS_PER_ROW=20.
const EnvPrefix = "DRILLROTA_"

// PathEnv names the variable that points at the config file.
const PathEnv = EnvPrefix + "CONFIG"

var ErrUnsupportedFormat = errors.New("unsupported config format")

type Config struct {
	Defaults domain.ScheduleConfig `koanf:"defaults"`
	Presets  []domain.Preset       `koanf:"presets"`
	Display  DisplayConfig         `koanf:"display"`
	Log      LogConfig             `koanf:"log"`
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	cfg := Config{Defaults: domain.DefaultConfig()}
	cfg.Display.SetDefaults()
	cfg.Log.SetDefaults()
	return cfg
}

// Load reads path (if not empty) and then environment overrides on top of
// the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Display.SetDefaults()
	cfg.Log.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolvePath picks the config file: an explicit flag value, then
// DRILLROTA_CONFIG, then ~/.drillrota/config.yaml when it exists. An empty
// result means no file.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".drillrota", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func (c Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		name := strings.ToLower(p.Name)
		if name == "" {
			return fmt.Errorf("presets[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("presets[%d]: duplicate name %q", i, p.Name)
		}
		seen[name] = true
		if err := p.Config.Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	if err := c.Display.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
