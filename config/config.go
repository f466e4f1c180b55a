// Package config provides configuration loading and access for the renderer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all renderer configuration parameters. The embedded defaults
// reproduce the fixed heatmap: a 256x256 radial sine field in a 600x600
// window.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Shaders   ShadersConfig   `yaml:"shaders"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// FieldConfig holds scalar field generation parameters.
type FieldConfig struct {
	Width  int     `yaml:"width"`  // Grid cells per row
	Height int     `yaml:"height"` // Grid rows
	Scale  float64 `yaml:"scale"`  // Radial sine frequency
}

// ShadersConfig holds shader source file locations.
type ShadersConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds between perf log lines
	PerfWindow  int     `yaml:"perf_window"`  // Frames averaged per perf sample
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Cells int // Field.Width * Field.Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config and backfills
// unusable values with the built-in defaults.
func (c *Config) computeDerived() {
	if c.Screen.Width <= 0 {
		c.Screen.Width = 600
	}
	if c.Screen.Height <= 0 {
		c.Screen.Height = 600
	}
	if c.Screen.Title == "" {
		c.Screen.Title = "OpenGL Heatmap"
	}

	if c.Field.Width <= 0 {
		c.Field.Width = 256
	}
	if c.Field.Height <= 0 {
		c.Field.Height = 256
	}
	if c.Field.Scale == 0 {
		c.Field.Scale = 30.0
	}

	if c.Shaders.Vertex == "" {
		c.Shaders.Vertex = "shaders/vertex_shader.glsl"
	}
	if c.Shaders.Fragment == "" {
		c.Shaders.Fragment = "shaders/fragment_shader.glsl"
	}

	if c.Telemetry.StatsWindow <= 0 {
		c.Telemetry.StatsWindow = 5.0
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 120
	}

	c.Derived.Cells = c.Field.Width * c.Field.Height
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
