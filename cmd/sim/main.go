// cmd/sim/main.go
//
// sim прогоняет партию без окна с фиксированным шагом и печатает итог.
// Игрок стоит на месте, поэтому счёт зависит только от seed.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"go-watch-out/internal/app"
	"go-watch-out/internal/config"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	duration := flag.Duration("duration", 30*time.Second, "simulated game time")
	step := flag.Duration("step", time.Second/60, "simulation step")
	flag.Parse()

	level, err := flags.Level()
	if err != nil {
		slog.Error("bad flags", "error", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := flags.Resolve()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if *step <= 0 || *duration <= 0 {
		logger.Error("duration and step must be positive", "duration", *duration, "step", *step)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session, err := app.NewSession(cfg, app.WithLogger(logger))
	if err != nil {
		logger.Error("failed to start session", "error", err)
		os.Exit(1)
	}
	run(ctx, session, *duration, *step)
	session.Stop()

	snap := session.Snapshot()
	logger.InfoContext(ctx, "simulation finished",
		"elapsed", snap.Elapsed,
		"score", snap.Score,
		"best", snap.Best,
		"collisions", snap.Collisions,
	)
}

// run шагает сессию до duration или до отмены ctx. Шаг дробится так, чтобы
// ни один таймер не просрочился больше чем на период: иначе планировщик
// упрётся в scheduler.MaxCatchUp и потеряет тики счёта.
func run(ctx context.Context, session *app.Session, duration, step time.Duration) {
	cfg := session.Config()
	maxStep := min(cfg.ScoreInterval, cfg.TickInterval)
	for simulated := time.Duration(0); simulated < duration; simulated += step {
		select {
		case <-ctx.Done():
			return
		default:
		}
		for left := min(step, duration-simulated); left > 0; {
			dt := min(left, maxStep)
			session.Update(dt)
			left -= dt
		}
	}
}
