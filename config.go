package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds run parameters. Zero values are not meaningful; start from
// DefaultConfig.
type Config struct {
	// PartOne scores every blueprint by id × geodes.
	PartOne PartConfig `yaml:"part_one"`
	// PartTwo multiplies the geodes of the first few blueprints.
	PartTwo PartConfig `yaml:"part_two"`
	// Workers caps concurrent searches. 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Pruning toggles the admissible pruning rules. Turning them off is only
	// useful for checking that they do not change answers.
	Pruning PruningConfig `yaml:"pruning"`
	Log     LogConfig     `yaml:"log"`
}

// PartConfig is the time budget and blueprint selection for one puzzle part.
type PartConfig struct {
	Minutes uint32 `yaml:"minutes"`
	// Blueprints limits the part to the first N blueprints. 0 means all.
	Blueprints int `yaml:"blueprints"`
}

type PruningConfig struct {
	GeodeBound     bool `yaml:"geode_bound"`
	ObsidianCutoff bool `yaml:"obsidian_cutoff"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns the puzzle's own parameters.
func DefaultConfig() Config {
	return Config{
		PartOne: PartConfig{Minutes: 24},
		PartTwo: PartConfig{Minutes: 32, Blueprints: 3},
		Pruning: PruningConfig{GeodeBound: true, ObsidianCutoff: true},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a YAML file or flags can get wrong.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.PartOne.Blueprints < 0 {
		return fmt.Errorf("%w: part_one.blueprints must be >= 0, got %d", ErrInvalidConfig, c.PartOne.Blueprints)
	}
	if c.PartTwo.Blueprints < 1 {
		return fmt.Errorf("%w: part_two.blueprints must be >= 1, got %d", ErrInvalidConfig, c.PartTwo.Blueprints)
	}
	if _, ok := parseLogLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// searchOptions maps the pruning switches onto the search's own options.
func (c Config) searchOptions() SearchOptions {
	return SearchOptions{
		NoGeodeBound:     !c.Pruning.GeodeBound,
		NoObsidianCutoff: !c.Pruning.ObsidianCutoff,
	}
}
