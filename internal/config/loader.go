// internal/config/loader.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// fileConfig — формат JSON-файла настроек. Отсутствующие поля берутся из Default.
type fileConfig struct {
	Width           *int     `json:"width,omitempty"`
	Height          *int     `json:"height,omitempty"`
	EnemyCount      *int     `json:"enemy_count,omitempty"`
	Padding         *float64 `json:"padding,omitempty"`
	TickIntervalMs  *int64   `json:"tick_interval_ms,omitempty"`
	ScoreIntervalMs *int64   `json:"score_interval_ms,omitempty"`
	PlayerRadius    *float64 `json:"player_radius,omitempty"`
	EnemyRadius     *float64 `json:"enemy_radius,omitempty"`
	TriggerMode     *string  `json:"trigger_mode,omitempty"`
	Seed            *int64   `json:"seed,omitempty"`
}

// Load reads a JSON settings file on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes JSON settings on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg := fc.apply(Default())
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg Config) Config {
	if fc.Width != nil {
		cfg.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.Height = *fc.Height
	}
	if fc.EnemyCount != nil {
		cfg.EnemyCount = *fc.EnemyCount
	}
	if fc.Padding != nil {
		cfg.Padding = *fc.Padding
	}
	if fc.TickIntervalMs != nil {
		cfg.TickInterval = time.Duration(*fc.TickIntervalMs) * time.Millisecond
	}
	if fc.ScoreIntervalMs != nil {
		cfg.ScoreInterval = time.Duration(*fc.ScoreIntervalMs) * time.Millisecond
	}
	if fc.PlayerRadius != nil {
		cfg.PlayerRadius = *fc.PlayerRadius
	}
	if fc.EnemyRadius != nil {
		cfg.EnemyRadius = *fc.EnemyRadius
	}
	if fc.TriggerMode != nil {
		cfg.TriggerMode = TriggerMode(*fc.TriggerMode)
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	return cfg
}
