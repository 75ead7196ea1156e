// internal/system/collision.go
package system

import (
	"go-watch-out/internal/config"
	"go-watch-out/internal/entity"
	"go-watch-out/internal/event"
	"go-watch-out/internal/types"
	"go-watch-out/internal/utils"
)

// body — снимок круга на момент начала тика.
type body struct {
	entity  types.EntityID
	enemyID int
	x, y, r float64
}

// CollisionSystem проверяет касание игрока с врагами и сбрасывает счёт.
type CollisionSystem struct {
	ecs        *entity.ECS
	score      *ScoreSystem
	dispatcher *event.Dispatcher
	mode       config.TriggerMode
	touching   map[types.EntityID]bool // для режима edge
	snapshot   []body
}

func NewCollisionSystem(ecs *entity.ECS, score *ScoreSystem, mode config.TriggerMode, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:        ecs,
		score:      score,
		dispatcher: dispatcher,
		mode:       mode,
		touching:   make(map[types.EntityID]bool),
	}
}

// Collides — касаются ли два круга (граница включительно).
func Collides(x1, y1, r1, x2, y2, r2 float64) bool {
	return utils.Distance(x1, y1, x2, y2) <= r1+r2
}

// Tick выполняет одну проверку столкновений. Возвращает число сбросов счёта.
func (s *CollisionSystem) Tick() int {
	playerID := s.ecs.PlayerID
	ppos, ok := s.ecs.Positions[playerID]
	if !ok {
		return 0
	}
	player := body{entity: playerID, x: ppos.X, y: ppos.Y}
	if c, ok := s.ecs.Colliders[playerID]; ok {
		player.r = c.Radius
	}

	s.snapshot = s.snapshot[:0]
	for _, id := range s.ecs.EnemyOrder {
		pos := s.ecs.Positions[id]
		b := body{entity: id, enemyID: s.ecs.Enemies[id].ID, x: pos.X, y: pos.Y}
		if c, ok := s.ecs.Colliders[id]; ok {
			b.r = c.Radius
		}
		s.snapshot = append(s.snapshot, b)
	}

	resets := 0
	for _, enemy := range s.snapshot {
		hit := Collides(player.x, player.y, player.r, enemy.x, enemy.y, enemy.r)

		wasTouching := s.touching[enemy.entity]
		s.touching[enemy.entity] = hit
		if !hit {
			continue
		}
		if s.mode == config.TriggerEdge && wasTouching {
			continue
		}

		before := s.score.RecordCollision()
		resets++
		if s.dispatcher != nil {
			s.dispatcher.Dispatch(event.Event{
				Type: event.EnemyCollided,
				Data: event.CollisionData{
					EnemyID:     enemy.enemyID,
					ScoreBefore: before,
					Distance:    utils.Distance(player.x, player.y, enemy.x, enemy.y),
				},
			})
		}
	}
	return resets
}

// Touching сообщает, пересекается ли враг с игроком по данным последнего тика.
func (s *CollisionSystem) Touching(id types.EntityID) bool {
	return s.touching[id]
}
