// internal/system/score.go
package system

import (
	"go-watch-out/internal/entity"
	"go-watch-out/internal/event"
)

// ScoreSystem ведёт счёт: прирост по таймеру и сброс при касании врага.
type ScoreSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewScoreSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, dispatcher: dispatcher}
}

// Increment увеличивает текущий счёт на единицу.
func (s *ScoreSystem) Increment() {
	s.ecs.Score.Current++
	s.publish()
}

// RecordCollision обновляет рекорд и обнуляет счёт. Возвращает счёт до сброса.
func (s *ScoreSystem) RecordCollision() int {
	score := s.ecs.Score
	before := score.Current
	score.Best = max(score.Best, score.Current)
	score.Current = 0
	s.publish()
	return before
}

func (s *ScoreSystem) Current() int { return s.ecs.Score.Current }
func (s *ScoreSystem) Best() int    { return s.ecs.Score.Best }

func (s *ScoreSystem) publish() {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScoreData{Current: s.ecs.Score.Current, Best: s.ecs.Score.Best},
	})
}
