// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the transportation CLI:
// defaults, an optional YAML or TOML overlay, a small environment override and
// struct-tag validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Value types accepted by ValueType.
const (
	ValueInt64   = "int64"
	ValueUint32  = "uint32"
	ValueFloat64 = "float64"
)

// EnvSeed overrides Config.Seed when set to an integer.
const EnvSeed = "TRANSPORTATION_SEED"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Seed drives spanning-tree repair and problem generation. 0 means
	// "derive from the clock" for repair and "fixed default" for generation.
	Seed int64 `yaml:"seed" toml:"seed"`

	// Reseed refreshes the repair seed between augmentation rounds.
	Reseed bool `yaml:"reseed" toml:"reseed"`

	// ValueType selects the scalar the problem is parsed into.
	ValueType string `yaml:"value_type" toml:"value_type" validate:"oneof=int64 uint32 float64"`

	// CompareLP reports the LP optimum and the gap next to the plan.
	CompareLP bool `yaml:"compare_lp" toml:"compare_lp"`

	Render RenderConfig `yaml:"render" toml:"render"`
	Bench  BenchConfig  `yaml:"bench" toml:"bench"`
}

// RenderConfig controls matrix output.
type RenderConfig struct {
	CellWidth int  `yaml:"cell_width" toml:"cell_width" validate:"gte=1,lte=32"`
	MaxCells  int  `yaml:"max_cells" toml:"max_cells" validate:"gte=0"` // 0 = unlimited
	Color     bool `yaml:"color" toml:"color"`
}

// BenchConfig sizes the bench command.
type BenchConfig struct {
	Problems int `yaml:"problems" toml:"problems" validate:"gte=1,lte=100000"`
	N        int `yaml:"n" toml:"n" validate:"gte=1"`
	M        int `yaml:"m" toml:"m" validate:"gte=1"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ValueType: ValueInt64,
		Render:    RenderConfig{CellWidth: 6, MaxCells: 400, Color: true},
		Bench:     BenchConfig{Problems: 100, N: 1000, M: 1000},
	}
}

var validate = validator.New()

// Validate checks the struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Load starts from Default, overlays the file at path (if path is not empty),
// applies the environment override and validates the result. Files ending in
// .toml are decoded as TOML, anything else as YAML.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}

	return yaml.Unmarshal(data, cfg)
}

func applyEnv(cfg *Config) error {
	v, ok := os.LookupEnv(EnvSeed)
	if !ok || v == "" {
		return nil
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
	}
	cfg.Seed = seed

	return nil
}
