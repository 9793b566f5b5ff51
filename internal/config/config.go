// Package config loads pipeline configuration from defaults, an
// optional YAML file, and GRIDLIFT-prefixed environment variables, in
// that precedence order, then validates the result.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Combine  CombineConfig  `yaml:"combine" envconfig:"COMBINE"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout stderr"`
}

// PathsConfig holds the input and output directories.
type PathsConfig struct {
	InputDir  string `yaml:"input_dir" envconfig:"INPUT_DIR" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// PipelineConfig tunes extraction and cleaning.
type PipelineConfig struct {
	Preset       string  `yaml:"preset" envconfig:"PRESET" validate:"oneof=none minimal standard aggressive"`
	RowThreshold float64 `yaml:"row_threshold" envconfig:"ROW_THRESHOLD" validate:"gt=0,lte=1"`
	ColThreshold float64 `yaml:"col_threshold" envconfig:"COL_THRESHOLD" validate:"gt=0,lte=1"`
	GapTolerance int     `yaml:"gap_tolerance" envconfig:"GAP_TOLERANCE" validate:"gte=0"`
	Workers      int     `yaml:"workers" envconfig:"WORKERS" validate:"gte=1"`
	Tracing      bool    `yaml:"tracing" envconfig:"TRACING"`
}

// CombineConfig controls the multi-source combination stage.
type CombineConfig struct {
	Enabled         bool     `yaml:"enabled" envconfig:"ENABLED"`
	AddSource       bool     `yaml:"add_source" envconfig:"ADD_SOURCE"`
	IgnoreIndex     bool     `yaml:"ignore_index" envconfig:"IGNORE_INDEX"`
	IncludeMetadata []string `yaml:"include_metadata" envconfig:"INCLUDE_METADATA"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Paths: PathsConfig{
			InputDir:  "input",
			OutputDir: "output",
		},
		Pipeline: PipelineConfig{
			Preset:       "standard",
			RowThreshold: 0.4,
			ColThreshold: 0.3,
			GapTolerance: 2,
			Workers:      4,
		},
		Combine: CombineConfig{
			Enabled:     true,
			IgnoreIndex: true,
		},
	}
}

// Load builds the configuration: defaults, overridden by the YAML file
// at configFile when it exists, overridden by environment variables.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("GRIDLIFT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
