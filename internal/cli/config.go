// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modregex/synth"
)

// Config is the YAML configuration file of the CLI. Flags override it.
//
//	synthesis:
//	  max_nodes: 262144
//	  max_steps: 16777216
//	  max_states: 1024
//	  timeout: 30s
//	  order: min-degree
//	  minimize: false
//	  jobs: 4
//	render:
//	  anchors: false
//	  char_classes: false
//	logging:
//	  level: debug
//	  color: false
type Config struct {
	Synthesis SynthesisConfig `yaml:"synthesis"`
	Render    RenderConfig    `yaml:"render"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SynthesisConfig holds the budget and elimination policy.
type SynthesisConfig struct {
	MaxNodes  int           `yaml:"max_nodes"`
	MaxSteps  int           `yaml:"max_steps"`
	MaxStates int           `yaml:"max_states"`
	Timeout   time.Duration `yaml:"timeout"`
	Order     string        `yaml:"order"`
	Minimize  bool          `yaml:"minimize"`
	Jobs      int           `yaml:"jobs"` // parallel remainders for synth --all
}

// RenderConfig holds the output style.
type RenderConfig struct {
	Anchors     bool `yaml:"anchors"`
	CharClasses bool `yaml:"char_classes"`
}

// LoggingConfig configures the tint console handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Color bool   `yaml:"color"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Synthesis: SynthesisConfig{
			MaxNodes:  synth.DefaultMaxNodes,
			MaxSteps:  synth.DefaultMaxSteps,
			MaxStates: synth.DefaultMaxStates,
			Order:     synth.OrderAscending.String(),
			Minimize:  true,
			Jobs:      4,
		},
		Render:  RenderConfig{Anchors: true, CharClasses: true},
		Logging: LoggingConfig{Level: "info", Color: true},
	}
}

// LoadConfig reads path over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err = decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks values the library would reject later with a less
// specific message.
func (c Config) Validate() error {
	if _, err := synth.ParseOrder(c.Synthesis.Order); err != nil {
		return err
	}
	if c.Synthesis.Jobs <= 0 {
		return fmt.Errorf("synthesis.jobs must be positive, got %d", c.Synthesis.Jobs)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}

	return nil
}
