// SPDX-License-Identifier: MIT

// Package config loads bava settings from an optional YAML file, applies
// BAVA_* environment overrides and validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full bava configuration.
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Batch  BatchConfig  `yaml:"batch"`
	Log    LogConfig    `yaml:"log"`
	Plot   PlotConfig   `yaml:"plot"`
}

// ParserConfig controls tracing ingestion.
type ParserConfig struct {
	DistanceThreshold   float64 `yaml:"distance_threshold"`    // BAVA_DISTANCE_THRESHOLD
	IncludeTrailingPath bool    `yaml:"include_trailing_path"` // BAVA_INCLUDE_TRAILING_PATH
	MaxPaths            int     `yaml:"max_paths"`             // BAVA_MAX_PATHS (0 = unlimited)
}

// BatchConfig controls multi-subject loading.
type BatchConfig struct {
	Workers        int           `yaml:"workers"`         // BAVA_WORKERS
	SubjectTimeout time.Duration `yaml:"subject_timeout"` // BAVA_SUBJECT_TIMEOUT (0 = none)
	SkipMissing    bool          `yaml:"skip_missing"`
	Pattern        string        `yaml:"pattern"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level      string `yaml:"level"`  // BAVA_LOG_LEVEL
	Format     string `yaml:"format"` // BAVA_LOG_FORMAT
	File       string `yaml:"file"`   // BAVA_LOG_FILE (empty = stderr)
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// PlotConfig controls scene styling.
type PlotConfig struct {
	EdgeWidth   float64 `yaml:"edge_width"`
	NodeSize    float64 `yaml:"node_size"`
	NodeOpacity float64 `yaml:"node_opacity"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{DistanceThreshold: 10},
		Batch: BatchConfig{
			Workers:     4,
			SkipMissing: true,
			Pattern:     "*.swc",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxAgeDays: 28,
		},
		Plot: PlotConfig{EdgeWidth: 5, NodeSize: 3.5, NodeOpacity: 0.5},
	}
}

// Load reads path (skipped when empty) over the defaults, applies the
// environment and validates. Unknown YAML keys are rejected.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) applyEnv() error {
	var err error
	if c.Parser.DistanceThreshold, err = envFloat("BAVA_DISTANCE_THRESHOLD", c.Parser.DistanceThreshold); err != nil {
		return err
	}
	if c.Parser.IncludeTrailingPath, err = envBool("BAVA_INCLUDE_TRAILING_PATH", c.Parser.IncludeTrailingPath); err != nil {
		return err
	}
	if c.Parser.MaxPaths, err = envInt("BAVA_MAX_PATHS", c.Parser.MaxPaths); err != nil {
		return err
	}
	if c.Batch.Workers, err = envInt("BAVA_WORKERS", c.Batch.Workers); err != nil {
		return err
	}
	timeout := envOrDefault("BAVA_SUBJECT_TIMEOUT", "")
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("BAVA_SUBJECT_TIMEOUT: %w", err)
		}
		c.Batch.SubjectTimeout = d
	}
	c.Log.Level = envOrDefault("BAVA_LOG_LEVEL", c.Log.Level)
	c.Log.Format = envOrDefault("BAVA_LOG_FORMAT", c.Log.Format)
	c.Log.File = envOrDefault("BAVA_LOG_FILE", c.Log.File)

	return nil
}

// Validate reports the first out-of-range setting, wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case !(c.Parser.DistanceThreshold > 0):
		return fmt.Errorf("%w: parser.distance_threshold must be positive (%v)", ErrInvalidConfig, c.Parser.DistanceThreshold)
	case c.Parser.MaxPaths < 0:
		return fmt.Errorf("%w: parser.max_paths must be >= 0 (%d)", ErrInvalidConfig, c.Parser.MaxPaths)
	case c.Batch.Workers < 1:
		return fmt.Errorf("%w: batch.workers must be >= 1 (%d)", ErrInvalidConfig, c.Batch.Workers)
	case c.Batch.SubjectTimeout < 0:
		return fmt.Errorf("%w: batch.subject_timeout must be >= 0 (%s)", ErrInvalidConfig, c.Batch.SubjectTimeout)
	case c.Batch.Pattern == "":
		return fmt.Errorf("%w: batch.pattern is empty", ErrInvalidConfig)
	case c.Log.MaxSizeMB < 0 || c.Log.MaxAgeDays < 0:
		return fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalidConfig)
	case !(c.Plot.EdgeWidth > 0) || !(c.Plot.NodeSize > 0):
		return fmt.Errorf("%w: plot sizes must be positive", ErrInvalidConfig)
	case !(c.Plot.NodeOpacity >= 0 && c.Plot.NodeOpacity <= 1):
		return fmt.Errorf("%w: plot.node_opacity must be in [0,1] (%v)", ErrInvalidConfig, c.Plot.NodeOpacity)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := envOrDefault(key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, fallback float64) (float64, error) {
	v := envOrDefault(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := envOrDefault(key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
