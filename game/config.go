package game

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds loop settings loaded from a YAML file with environment
// overrides.
//
// Example file:
//
//	fixed_step: 16ms
//	max_frame_time: 250ms
//
// Environment variables take precedence over file values.
type Config struct {
	// FixedStep is the fixed timestep; zero selects a variable timestep.
	FixedStep time.Duration `env:"ANIMA_FIXED_STEP"`
	// MaxFrameTime clamps long frames; zero disables clamping.
	MaxFrameTime time.Duration `env:"ANIMA_MAX_FRAME_TIME"`
}

// fileConfig mirrors Config with durations as strings, the
// time.ParseDuration syntax used in the file format.
type fileConfig struct {
	FixedStep    string `yaml:"fixed_step"`
	MaxFrameTime string `yaml:"max_frame_time"`
}

// LoadConfig reads a YAML config file and applies environment overrides.
// A missing path loads an all-defaults config, still honoring environment
// variables.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("game: read config %s: %w", path, err)
		}
		cfg, err = parseConfig(data)
		if err != nil {
			return Config{}, fmt.Errorf("game: %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("game: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	var cfg Config
	var err error
	if fc.FixedStep != "" {
		if cfg.FixedStep, err = time.ParseDuration(fc.FixedStep); err != nil {
			return Config{}, fmt.Errorf("fixed_step: %w", err)
		}
	}
	if fc.MaxFrameTime != "" {
		if cfg.MaxFrameTime, err = time.ParseDuration(fc.MaxFrameTime); err != nil {
			return Config{}, fmt.Errorf("max_frame_time: %w", err)
		}
	}
	return cfg, nil
}

// Validate checks that the configured durations make sense together.
func (c Config) Validate() error {
	if c.FixedStep < 0 {
		return fmt.Errorf("game: fixed_step must not be negative, got %s", c.FixedStep)
	}
	if c.MaxFrameTime < 0 {
		return fmt.Errorf("game: max_frame_time must not be negative, got %s", c.MaxFrameTime)
	}
	if c.FixedStep > 0 && c.MaxFrameTime > 0 && c.MaxFrameTime < c.FixedStep {
		return fmt.Errorf("game: max_frame_time %s is shorter than fixed_step %s",
			c.MaxFrameTime, c.FixedStep)
	}
	return nil
}

// Options converts the config into loop options.
func (c Config) Options() []Option {
	return []Option{
		WithFixedStep(c.FixedStep),
		WithMaxFrameTime(c.MaxFrameTime),
	}
}
