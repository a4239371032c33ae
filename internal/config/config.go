package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mattn/sexpcalc"
	"github.com/mattn/sexpcalc/internal/logging"
)

// Config is the on-disk configuration of the sexpcalc command.
type Config struct {
	Strategy  string `yaml:"strategy"`
	MaxDepth  int    `yaml:"max_depth"`
	MaxLength int    `yaml:"max_length"`
	LogLevel  string `yaml:"log_level"`
	Listen    string `yaml:"listen"`
	Trace     bool   `yaml:"trace"`
}

func Default() Config {
	return Config{
		Strategy:  sexpcalc.StrategyTree.String(),
		MaxDepth:  sexpcalc.DefaultMaxDepth,
		MaxLength: sexpcalc.DefaultMaxLength,
		LogLevel:  "warn",
		Listen:    ":8080",
	}
}

// Load reads a YAML file over the defaults. An empty path, or a missing
// file, yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if _, err := sexpcalc.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive: %d", c.MaxDepth)
	}
	if c.MaxLength <= 0 {
		return fmt.Errorf("max_length must be positive: %d", c.MaxLength)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Options translates c into evaluator options.
func (c Config) Options() ([]sexpcalc.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, _ := sexpcalc.ParseStrategy(c.Strategy)
	return []sexpcalc.Option{
		sexpcalc.WithStrategy(s),
		sexpcalc.WithMaxDepth(c.MaxDepth),
		sexpcalc.WithMaxLength(c.MaxLength),
	}, nil
}
