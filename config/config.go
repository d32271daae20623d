// Package config provides configuration loading for the demo host and the
// effect presets. Defaults are embedded; a user YAML file overlays them
// key by key. Load returns an explicit *Config rather than filling a
// package-level instance, so independent hosts (and tests) do not interfere.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/emberfx/particle"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all demo host configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Effects holds per-effect preset overrides, applied on top of the
	// engine defaults by EffectConfig. Kept as raw nodes so absent keys
	// keep their defaults.
	Effects map[string]yaml.Node `yaml:"effects"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds simulation parameters for the demo scene.
type SimConfig struct {
	DT           float64 `yaml:"dt"`            // seconds per tick
	EmitterCount int     `yaml:"emitter_count"` // drifting emitter entities
	WorldExtent  float32 `yaml:"world_extent"`  // emitters bounce within +-extent
	GroundY      float32 `yaml:"ground_y"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields present
		// in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// EffectConfig resolves the preset for the given effect: engine defaults
// overlaid with any keys from the effects section. Returns nil (meaning
// "engine defaults") when no preset exists.
func (c *Config) EffectConfig(effect particle.Type) (*particle.Config, error) {
	node, ok := c.Effects[string(effect)]
	if !ok {
		return nil, nil
	}
	resolved := particle.DefaultConfig(effect)
	if err := node.Decode(&resolved); err != nil {
		return nil, fmt.Errorf("decoding %q preset: %w", effect, err)
	}
	return &resolved, nil
}

// WriteYAML writes the configuration to a YAML file (used to snapshot the
// effective config next to run output).
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
