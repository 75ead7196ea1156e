// internal/system/motion.go
package system

import (
	"time"

	"go-watch-out/internal/component"
	"go-watch-out/internal/config"
	"go-watch-out/internal/entity"
	"go-watch-out/internal/event"
	"go-watch-out/internal/utils"
	"go-watch-out/pkg/scale"
)

// MotionSystem раз в период выдаёт каждому врагу новую случайную цель и
// плавно перемещает его к ней.
type MotionSystem struct {
	ecs         *entity.ECS
	rng         *utils.PRNGService
	axes        scale.Axes
	legDuration float64 // секунды
	dispatcher  *event.Dispatcher
	legs        int
}

func NewMotionSystem(ecs *entity.ECS, rng *utils.PRNGService, axes scale.Axes, legDuration time.Duration, dispatcher *event.Dispatcher) *MotionSystem {
	return &MotionSystem{
		ecs:         ecs,
		rng:         rng,
		axes:        axes,
		legDuration: legDuration.Seconds(),
		dispatcher:  dispatcher,
	}
}

// Advance начинает новое перемещение для всех врагов в порядке создания.
// Цель выбирается в нормализованном пространстве, хранится в пикселях.
func (s *MotionSystem) Advance() {
	for _, id := range s.ecs.EnemyOrder {
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		collider := s.ecs.Colliders[id]

		nx := s.rng.Range(0, config.NormalizedMax)
		ny := s.rng.Range(0, config.NormalizedMax)
		enemy.TargetX, enemy.TargetY = nx, ny
		tx, ty := s.axes.Map(nx, ny)

		// первое перемещение — появление: радиус растёт от текущего (0)
		fromRadius := enemy.NominalRadius
		if enemy.Legs == 0 {
			fromRadius = collider.Radius
		}
		collider.Radius = fromRadius

		s.ecs.Legs[id] = &component.Leg{
			FromX:      pos.X,
			FromY:      pos.Y,
			ToX:        tx,
			ToY:        ty,
			FromRadius: fromRadius,
			ToRadius:   enemy.NominalRadius,
			Duration:   s.legDuration,
		}
		enemy.Legs++
	}
	s.legs++

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(event.Event{
			Type: event.LegStarted,
			Data: event.LegData{Leg: s.legs, Enemies: len(s.ecs.EnemyOrder)},
		})
	}
}

// Update интерполирует позиции врагов.
func (s *MotionSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyOrder {
		leg, ok := s.ecs.Legs[id]
		if !ok {
			continue
		}
		leg.Elapsed = min(leg.Elapsed+deltaTime, leg.Duration)
		t := leg.Progress()

		pos := s.ecs.Positions[id]
		pos.X = utils.Lerp(leg.FromX, leg.ToX, t)
		pos.Y = utils.Lerp(leg.FromY, leg.ToY, t)
		if c, ok := s.ecs.Colliders[id]; ok {
			c.Radius = utils.Lerp(leg.FromRadius, leg.ToRadius, t)
		}
	}
}

// Legs — сколько раз враги получали новые цели.
func (s *MotionSystem) Legs() int {
	return s.legs
}
