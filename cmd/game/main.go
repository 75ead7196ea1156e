// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"go-watch-out/internal/app"
	"go-watch-out/internal/audio"
	"go-watch-out/internal/config"
	"go-watch-out/internal/event"
	"go-watch-out/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

const startFromGame = false // true — начинать сразу с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	level, err := flags.Level()
	if err != nil {
		slog.Error("bad flags", "error", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := flags.Resolve()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	hit := audio.NewHitSound(ebitenaudio.NewContext(audio.SampleRate))
	env := state.Env{
		NewSession: func() (*app.Session, error) {
			return app.NewSession(cfg, app.WithLogger(logger))
		},
		Listeners: map[event.EventType][]event.Listener{
			event.EnemyCollided: {hit},
		},
		Logger: logger,
	}

	sm := state.NewStateMachine()
	if startFromGame {
		session, err := env.NewSession()
		if err != nil {
			logger.Error("failed to start session", "error", err)
			os.Exit(1)
		}
		sm.SetState(state.NewGameState(sm, env, session))
	} else {
		sm.SetState(state.NewMenuState(sm, env, 0))
	}

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Width,
		height:         cfg.Height,
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Watch Out")
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
