// Package config loads the settings of the termplot command from YAML files
// and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"honnef.co/go/termplot"
)

// Config holds all termplot configuration.
type Config struct {
	Plot    PlotConfig    `yaml:"plot"`
	Search  SearchConfig  `yaml:"search"`
	Domain  DomainConfig  `yaml:"domain"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlotConfig configures rendering.
type PlotConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	DomainPadding float64 `yaml:"domain_padding"`
	RangePadding  float64 `yaml:"range_padding"`
	Axes          bool    `yaml:"axes"`
	Glyphs        string  `yaml:"glyphs"` // auto, dots, blocks, braille
}

// SearchConfig configures the stationary point search.
type SearchConfig struct {
	Cuts      int `yaml:"cuts"`
	MaxDepth  int `yaml:"max_depth"`
	MaxPoints int `yaml:"max_points"`
	Divisor   int `yaml:"divisor"`
	Workers   int `yaml:"workers"`
}

// DomainConfig configures domain discovery.
type DomainConfig struct {
	Padding           float64 `yaml:"padding"`
	SinglePointMargin float64 `yaml:"single_point_margin"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	so := termplot.DefaultSearchOptions()
	do := termplot.DefaultDomainOptions()
	po := termplot.DefaultPlotOptions()
	return &Config{
		Plot: PlotConfig{
			Width:         60,
			Height:        10,
			DomainPadding: po.DomainPadding,
			RangePadding:  po.RangePadding,
			Axes:          po.Axes,
			Glyphs:        "auto",
		},
		Search: SearchConfig{
			Cuts:      so.Cuts,
			MaxDepth:  so.MaxDepth,
			MaxPoints: so.MaxPoints,
			Divisor:   so.Divisor,
			Workers:   1,
		},
		Domain: DomainConfig{
			Padding:           do.Padding,
			SinglePointMargin: do.SinglePointMargin,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the per-user configuration file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "termplot.yaml"
	}
	return filepath.Join(dir, "termplot", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override both.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	for _, o := range []struct {
		name string
		dst  *int
	}{
		{"TERMPLOT_WIDTH", &c.Plot.Width},
		{"TERMPLOT_HEIGHT", &c.Plot.Height},
		{"TERMPLOT_WORKERS", &c.Search.Workers},
	} {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", o.name, err)
		}
		*o.dst = n
	}
	if level := os.Getenv("TERMPLOT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	return nil
}

// Validate checks the configuration for settings the plot functions cannot
// use.
func (c *Config) Validate() error {
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}
	if c.Plot.DomainPadding < 0 || c.Plot.RangePadding < 0 {
		return fmt.Errorf("%w: negative padding", ErrInvalid)
	}
	// Zero domain and search settings select the library defaults, so they
	// cannot be configured.
	if !(c.Domain.Padding > 0) {
		return fmt.Errorf("%w: domain padding %g is not positive", ErrInvalid, c.Domain.Padding)
	}
	if !(c.Domain.SinglePointMargin > 0) {
		return fmt.Errorf("%w: single point margin %g is not positive", ErrInvalid, c.Domain.SinglePointMargin)
	}
	if c.Search.Cuts <= 0 || c.Search.MaxDepth <= 0 || c.Search.MaxPoints <= 0 || c.Search.Divisor < 2 {
		return fmt.Errorf("%w: search settings %+v", ErrInvalid, c.Search)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalid, c.Search.Workers)
	}
	if _, err := c.Glyphs(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return l, nil
}

// Glyphs returns the configured scatter glyph set. The zero set lets the plot
// pick one.
func (c *Config) Glyphs() (termplot.Subdivision, error) {
	switch c.Plot.Glyphs {
	case "", "auto":
		return termplot.Subdivision{}, nil
	case "dots":
		return termplot.Dots, nil
	case "blocks":
		return termplot.Blocks, nil
	case "braille":
		return termplot.Braille, nil
	default:
		return termplot.Subdivision{}, fmt.Errorf("%w: glyphs %q", ErrInvalid, c.Plot.Glyphs)
	}
}

// SearchOptions converts the search section.
func (c *Config) SearchOptions() termplot.SearchOptions {
	so := termplot.DefaultSearchOptions()
	so.Cuts = c.Search.Cuts
	so.MaxDepth = c.Search.MaxDepth
	so.MaxPoints = c.Search.MaxPoints
	so.Divisor = c.Search.Divisor
	so.Workers = c.Search.Workers
	return so
}

// DomainOptions converts the domain and search sections.
func (c *Config) DomainOptions() termplot.DomainOptions {
	do := termplot.DefaultDomainOptions()
	do.Padding = c.Domain.Padding
	do.SinglePointMargin = c.Domain.SinglePointMargin
	do.Search = c.SearchOptions()
	return do
}

// PlotOptions converts the whole configuration.
func (c *Config) PlotOptions() termplot.PlotOptions {
	po := termplot.DefaultPlotOptions()
	po.Size = termplot.Sz(c.Plot.Width, c.Plot.Height)
	po.DomainPadding = c.Plot.DomainPadding
	po.RangePadding = c.Plot.RangePadding
	po.Axes = c.Plot.Axes
	po.Glyphs, _ = c.Glyphs()
	po.DomainOptions = c.DomainOptions()
	return po
}
