package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanGlobalFlags(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		path    string
		verbose bool
	}{
		{"none", []string{"generate"}, "", false},
		{"config before command", []string{"--config", "a.yaml", "generate"}, "a.yaml", false},
		{"config after command flags", []string{"generate", "--preset", "21x7", "--config=b.json"}, "b.json", false},
		{"short verbose", []string{"-v", "presets"}, "", true},
		{"unknown flags ignored", []string{"generate", "--work", "10", "--verbose"}, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := scanGlobalFlags(tc.args)
			assert.Equal(t, tc.path, g.configPath)
			assert.Equal(t, tc.verbose, g.verbose)
		})
	}
}

func TestRun_RejectsBadConfigPath(t *testing.T) {
	err := run([]string{"--config", "settings.toml", "presets"})
	assert.ErrorContains(t, err, "loading config")
}
