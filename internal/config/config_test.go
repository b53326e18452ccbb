package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/drillrota/internal/domain"
	"github.com/alexanderramin/drillrota/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultConfig(), cfg.Defaults)
	assert.Empty(t, cfg.Presets)
	assert.Equal(t, 30, cfg.Display.DaysPerRow)
	assert.Equal(t, ColorAuto, cfg.Display.Color)
	assert.False(t, cfg.Log.Enabled)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoad_YAML(t *testing.T) {
	path := testutil.WriteFile(t, "config.yaml", `defaults:
  work_days: 21
  induction_days: 3
presets:
  - name: short
    label: "7x7 short hitch"
    config:
      work_days: 7
      rest_days: 7
      induction_days: 1
      total_drilling_days: 30
display:
  days_per_row: 14
  color: never
log:
  enabled: true
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"defaults.work_days", cfg.Defaults.WorkDays, 21},
		{"defaults.rest_days kept", cfg.Defaults.RestDays, 7},
		{"defaults.induction_days", cfg.Defaults.InductionDays, 3},
		{"defaults.total_drilling_days kept", cfg.Defaults.TotalDrillingDays, 90},
		{"display.days_per_row", cfg.Display.DaysPerRow, 14},
		{"display.color", cfg.Display.Color, ColorNever},
		{"log.enabled", cfg.Log.Enabled, true},
		{"log.level", cfg.Log.SlogLevel(), slog.LevelDebug},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}

	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "short", cfg.Presets[0].Name)
	assert.Equal(t, "7x7 short hitch", cfg.Presets[0].DisplayLabel())
	assert.Equal(t, 30, cfg.Presets[0].Config.TotalDrillingDays)
}

func TestLoad_JSON(t *testing.T) {
	path := testutil.WriteFile(t, "config.json", `{"defaults": {"rest_days": 5}, "display": {"color": "always"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Defaults.RestDays)
	assert.Equal(t, ColorAlways, cfg.Display.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := testutil.WriteFile(t, "config.yaml", "display:\n  days_per_row: 14\n")
	t.Setenv("DRILLROTA_DISPLAY__DAYS_PER_ROW", "20")
	t.Setenv("DRILLROTA_DEFAULTS__TOTAL_DRILLING_DAYS", "120")
	t.Setenv("DRILLROTA_LOG__ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Display.DaysPerRow)
	assert.Equal(t, 120, cfg.Defaults.TotalDrillingDays)
	assert.True(t, cfg.Log.Enabled)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := testutil.WriteFile(t, "config.toml", "")

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/drillrota.yaml")
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"defaults out of range", "defaults:\n  work_days: 2\n", "defaults"},
		{"preset without name", "presets:\n  - config: {work_days: 14, rest_days: 7, induction_days: 5, total_drilling_days: 90}\n", "name is required"},
		{"duplicate preset", "presets:\n  - {name: a, config: {work_days: 14, rest_days: 7, induction_days: 5, total_drilling_days: 90}}\n  - {name: A, config: {work_days: 14, rest_days: 7, induction_days: 5, total_drilling_days: 90}}\n", "duplicate"},
		{"preset out of range", "presets:\n  - {name: bad, config: {work_days: 14, rest_days: 20, induction_days: 5, total_drilling_days: 90}}\n", `preset "bad"`},
		{"days per row", "display:\n  days_per_row: 1000\n", "days_per_row"},
		{"color", "display:\n  color: sometimes\n", "display.color"},
		{"log level", "log:\n  level: loud\n", "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteFile(t, "config.yaml", tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Setenv(PathEnv, "")
	assert.Empty(t, ResolvePath(""), "no flag, no env, no home file")

	t.Setenv(PathEnv, "/etc/drillrota.yaml")
	assert.Equal(t, "/etc/drillrota.yaml", ResolvePath(""))
	assert.Equal(t, "/tmp/x.yaml", ResolvePath("/tmp/x.yaml"), "flag wins")
}

func TestDisplayConfig_UseColor(t *testing.T) {
	assert.True(t, DisplayConfig{Color: ColorAuto}.UseColor(true))
	assert.False(t, DisplayConfig{Color: ColorAuto}.UseColor(false))
	assert.True(t, DisplayConfig{Color: ColorAlways}.UseColor(false))
	assert.False(t, DisplayConfig{Color: ColorNever}.UseColor(true))
}
