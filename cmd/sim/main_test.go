package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go-watch-out/internal/app"
	"go-watch-out/internal/config"
)

func newSession(t *testing.T, mutate ...func(*config.Config)) *app.Session {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	for _, m := range mutate {
		m(&cfg)
	}
	s, err := app.NewSession(cfg, app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestRunCoversDuration(t *testing.T) {
	s := newSession(t)
	run(context.Background(), s, time.Second, 30*time.Millisecond)
	if got := s.Snapshot().Elapsed; got != time.Second {
		t.Fatalf("elapsed = %s, want 1s", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run(ctx, s, time.Minute, time.Second)
	if got := s.Snapshot().Elapsed; got != 0 {
		t.Fatalf("elapsed = %s after cancelled run, want 0", got)
	}
}

func TestRunCoarseStepKeepsEveryScoreTick(t *testing.T) {
	// нулевые радиусы: столкновений нет, счёт зависит только от времени
	s := newSession(t, func(c *config.Config) {
		c.PlayerRadius = 0
		c.EnemyRadius = 0
	})
	run(context.Background(), s, 10*time.Second, time.Second)

	snap := s.Snapshot()
	if snap.Elapsed != 10*time.Second {
		t.Fatalf("elapsed = %s, want 10s", snap.Elapsed)
	}
	if want := int(10 * time.Second / config.DefaultScoreInterval); snap.Score != want {
		t.Fatalf("score = %d, want %d", snap.Score, want)
	}
	if legs := s.MotionSystem.Legs(); legs != 6 {
		t.Fatalf("legs = %d, want 6 (immediate + one per 2s)", legs)
	}
}
