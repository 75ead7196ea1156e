// internal/state/env.go
package state

import (
	"log/slog"

	"go-watch-out/internal/app"
	"go-watch-out/internal/event"
)

// SessionFactory создаёт новую партию при каждом старте из меню.
type SessionFactory func() (*app.Session, error)

// Env — зависимости состояний, общие для всех партий.
type Env struct {
	NewSession SessionFactory
	// Listeners подписываются на события каждой новой сессии (звук и т.п.).
	Listeners map[event.EventType][]event.Listener
	Logger    *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}
