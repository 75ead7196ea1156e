package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -5 }, ErrInvalidDimensions},
		{"zero enemies", func(c *Config) { c.EnemyCount = 0 }, ErrInvalidEnemyCount},
		{"padding too large", func(c *Config) { c.Padding = 300 }, ErrInvalidPadding},
		{"negative padding", func(c *Config) { c.Padding = -1 }, ErrInvalidPadding},
		{"padding leaves no height", func(c *Config) { c.Padding = float64(c.Height) / 2 }, ErrInvalidPadding},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }, ErrInvalidInterval},
		{"negative score interval", func(c *Config) { c.ScoreInterval = -time.Second }, ErrInvalidInterval},
		{"negative radius", func(c *Config) { c.EnemyRadius = -1 }, ErrInvalidRadius},
		{"bad trigger", func(c *Config) { c.TriggerMode = "sometimes" }, ErrInvalidTriggerMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Validate() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	cfg.EnemyCount = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidDimensions) || !errors.Is(err, ErrInvalidEnemyCount) {
		t.Fatalf("expected both errors, got %v", err)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{"enemy_count": 5, "tick_interval_ms": 1000, "trigger_mode": "level", "seed": 42}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.EnemyCount != 5 || cfg.TickInterval != time.Second || cfg.TriggerMode != TriggerLevel || cfg.Seed != 42 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Width != DefaultWidth || cfg.ScoreInterval != DefaultScoreInterval {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"width": 0}`)); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchout.json")
	if err := os.WriteFile(path, []byte(`{"padding": 10}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Padding != 10 {
		t.Fatalf("padding = %v, want 10", cfg.Padding)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
