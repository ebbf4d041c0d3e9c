package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the preview host configuration. Every field has a usable
// default so the tool runs with no config file at all.
type Config struct {
	// Screen is the schema document to load when the command line names none.
	Screen string `yaml:"screen"`

	// Palette selects the semantic palette by name: "default" or
	// "highContrast".
	Palette string `yaml:"palette"`

	Cache    CacheConfig   `yaml:"cache"`
	Fixtures FixtureConfig `yaml:"fixtures"`
}

// CacheConfig configures the render cache the demo host drives.
type CacheConfig struct {
	// Capacity is the entry budget; zero disables caching.
	Capacity int `yaml:"capacity"`

	// TTL is the age sweep interval as a duration string, e.g. "45s".
	// Empty disables the sweep.
	TTL string `yaml:"ttl"`
}

// FixtureConfig configures the generated route data screens render against.
type FixtureConfig struct {
	// Jobs is how many service stops the fixture route carries.
	Jobs int `yaml:"jobs"`
}

// defaultConfigFile is picked up from the working directory when --config
// names nothing.
const defaultConfigFile = "pestgenie.yaml"

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Palette: "default",
		Cache: CacheConfig{
			Capacity: 128,
			TTL:      "45s",
		},
		Fixtures: FixtureConfig{
			Jobs: 6,
		},
	}
}

// LoadConfig loads configuration from a YAML file, layered over defaults. A
// missing file is only an error when the path was given explicitly.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SweepInterval parses the cache TTL, zero when unset or unparseable.
func (c *Config) SweepInterval() time.Duration {
	if c.Cache.TTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
