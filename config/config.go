// Package config provides configuration management for supplynet.
//
// Config file locations (priority order):
//  1. $SUPPLYNET_CONFIG
//  2. ./supplynet.yaml
//  3. $XDG_CONFIG_HOME/supplynet/config.yaml
//  4. ~/.config/supplynet/config.yaml
//  5. /etc/supplynet/config.yaml
//
// Missing values are filled from DefaultConfig.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/supplynet/analyzer"
	"github.com/katalvlaran/supplynet/optimizer"
)

// ErrInvalidConfig wraps every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the on-disk configuration.
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Routing  RoutingConfig  `yaml:"routing"`
}

// DatabaseConfig locates the dataset repository.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// AnalysisConfig tunes the network analyzer.
type AnalysisConfig struct {
	CriticalNodeCount  int               `yaml:"critical_node_count"`
	ResilienceStrategy analyzer.Strategy `yaml:"resilience_strategy"`
}

// RoutingConfig tunes the route optimizer.
type RoutingConfig struct {
	TopK    int                `yaml:"top_k"`
	Weights *optimizer.Weights `yaml:"weights,omitempty"`
}

// Load finds and loads the config file, or returns defaults if none is found.
// The second return value is the path used, "" for defaults.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads and validates the config at path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes the config to path, creating its directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	w := optimizer.DefaultWeights()
	return &Config{
		Version:  1,
		Database: DatabaseConfig{Path: "./supplynet.db"},
		Log:      LogConfig{Level: "info", Format: "text"},
		Analysis: AnalysisConfig{
			CriticalNodeCount:  analyzer.DefaultOptions().CriticalNodeCount,
			ResilienceStrategy: analyzer.StrategyReferencePair,
		},
		Routing: RoutingConfig{
			TopK:    optimizer.DefaultOptions().TopK,
			Weights: &w,
		},
	}
}

// applyDefaults fills in missing values.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Analysis.CriticalNodeCount == 0 {
		c.Analysis.CriticalNodeCount = d.Analysis.CriticalNodeCount
	}
	if c.Analysis.ResilienceStrategy == "" {
		c.Analysis.ResilienceStrategy = d.Analysis.ResilienceStrategy
	}
	if c.Routing.TopK == 0 {
		c.Routing.TopK = d.Routing.TopK
	}
	if c.Routing.Weights == nil {
		c.Routing.Weights = d.Routing.Weights
	}
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, fmt.Errorf("log.format %q: want text or json", c.Log.Format))
	}
	if c.Analysis.CriticalNodeCount <= 0 {
		errs = append(errs, fmt.Errorf("analysis.critical_node_count %d: must be positive", c.Analysis.CriticalNodeCount))
	}
	if !c.Analysis.ResilienceStrategy.Valid() {
		errs = append(errs, fmt.Errorf("analysis.resilience_strategy %q: unknown", c.Analysis.ResilienceStrategy))
	}
	if c.Routing.TopK <= 0 {
		errs = append(errs, fmt.Errorf("routing.top_k %d: must be positive", c.Routing.TopK))
	}
	if c.Routing.Weights != nil {
		if err := c.Routing.Weights.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("routing.weights: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// AnalyzerOptions converts the analysis section into analyzer options.
func (c *Config) AnalyzerOptions() []analyzer.Option {
	return []analyzer.Option{
		analyzer.WithCriticalNodeCount(c.Analysis.CriticalNodeCount),
		analyzer.WithResilienceStrategy(c.Analysis.ResilienceStrategy),
	}
}

// OptimizerOptions converts the routing section into optimizer options.
func (c *Config) OptimizerOptions() []optimizer.Option {
	opts := []optimizer.Option{optimizer.WithTopK(c.Routing.TopK)}
	if c.Routing.Weights != nil {
		opts = append(opts, optimizer.WithWeights(*c.Routing.Weights))
	}
	return opts
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q: %w", s, err)
	}
	return lvl, nil
}
