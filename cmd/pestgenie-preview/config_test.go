package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultsWhenUnset", func(t *testing.T) {
		cfg, err := LoadConfig("")
		if err != nil {
			t.Fatalf("expected defaults, got error %v", err)
		}
		if cfg.Palette != "default" {
			t.Errorf("expected default palette, got %q", cfg.Palette)
		}
		if cfg.Cache.Capacity != 128 {
			t.Errorf("expected capacity 128, got %d", cfg.Cache.Capacity)
		}
		if cfg.Fixtures.Jobs != 6 {
			t.Errorf("expected 6 fixture jobs, got %d", cfg.Fixtures.Jobs)
		}
	})

	t.Run("ExplicitMissingFileFails", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Errorf("expected an error for an explicit missing file")
		}
	})

	t.Run("FileOverlaysDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pestgenie.yaml")
		doc := "screen: route.json\npalette: highContrast\ncache:\n  capacity: 16\n"
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Screen != "route.json" {
			t.Errorf("expected screen route.json, got %q", cfg.Screen)
		}
		if cfg.Palette != "highContrast" {
			t.Errorf("expected highContrast palette, got %q", cfg.Palette)
		}
		if cfg.Cache.Capacity != 16 {
			t.Errorf("expected capacity 16, got %d", cfg.Cache.Capacity)
		}
		// Untouched sections keep their defaults.
		if cfg.Fixtures.Jobs != 6 {
			t.Errorf("expected 6 fixture jobs, got %d", cfg.Fixtures.Jobs)
		}
		if cfg.Cache.TTL != "45s" {
			t.Errorf("expected default ttl 45s, got %q", cfg.Cache.TTL)
		}
	})

	t.Run("MalformedFileFails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pestgenie.yaml")
		if err := os.WriteFile(path, []byte("cache: [not a mapping"), 0644); err != nil {
			t.Fatalf("writing config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("expected a parse error")
		}
	})
}

func TestSweepInterval(t *testing.T) {
	t.Run("Parses", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{TTL: "45s"}}
		if got := cfg.SweepInterval(); got != 45*time.Second {
			t.Errorf("expected 45s, got %v", got)
		}
	})

	t.Run("EmptyDisables", func(t *testing.T) {
		cfg := &Config{}
		if got := cfg.SweepInterval(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("UnparseableDisables", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{TTL: "soon"}}
		if got := cfg.SweepInterval(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("NegativeDisables", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{TTL: "-1s"}}
		if got := cfg.SweepInterval(); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}
