// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"log/slog"
)

// Flags — общие флаги командной строки для cmd/game и cmd/sim.
// Нулевые значения не переопределяют файл и значения по умолчанию.
type Flags struct {
	Path     string
	Seed     int64
	Enemies  int
	Trigger  string
	LogLevel string
}

// RegisterFlags регистрирует флаги в fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "path to a JSON settings file")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed (0 = time based)")
	fs.IntVar(&f.Enemies, "enemies", 0, "number of enemies (0 = default)")
	fs.StringVar(&f.Trigger, "trigger", "", `collision trigger mode: "edge" or "level"`)
	fs.StringVar(&f.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	return f
}

// Resolve собирает итоговую конфигурацию: значения по умолчанию, файл, флаги.
func (f *Flags) Resolve() (Config, error) {
	cfg := Default()
	if f.Path != "" {
		loaded, err := Load(f.Path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.Enemies != 0 {
		cfg.EnemyCount = f.Enemies
	}
	if f.Trigger != "" {
		cfg.TriggerMode = TriggerMode(f.Trigger)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// Level разбирает -log-level.
func (f *Flags) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("failed to parse log level: %w", err)
	}
	return level, nil
}
