package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, uint32(24), cfg.PartOne.Minutes)
	assert.Zero(t, cfg.PartOne.Blueprints)
	assert.Equal(t, uint32(32), cfg.PartTwo.Minutes)
	assert.Equal(t, 3, cfg.PartTwo.Blueprints)
	assert.Equal(t, SearchOptions{}, cfg.searchOptions())
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := LoadConfig("testdata/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, uint32(20), cfg.PartOne.Minutes)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)

	// Not in the file.
	assert.Equal(t, DefaultConfig().PartTwo, cfg.PartTwo)
	assert.Equal(t, DefaultConfig().Pruning, cfg.Pruning)
}

func TestLoadConfigPruningSwitches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pruning:\n  geode_bound: false\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, SearchOptions{NoGeodeBound: true}, cfg.searchOptions())
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("workers: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("workers: -1\n"), 0o644))
	_, err = LoadConfig(invalid)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative workers":   func(c *Config) { c.Workers = -2 },
		"negative part one":  func(c *Config) { c.PartOne.Blueprints = -1 },
		"no part two":        func(c *Config) { c.PartTwo.Blueprints = 0 },
		"unknown log level":  func(c *Config) { c.Log.Level = "loud" },
		"unknown log format": func(c *Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
