// internal/system/player.go
package system

import (
	"go-watch-out/internal/entity"
	"go-watch-out/internal/utils"
)

// PlayerSystem перемещает игрока по запросам ввода и держит его внутри поля.
type PlayerSystem struct {
	ecs           *entity.ECS
	width, height float64
}

func NewPlayerSystem(ecs *entity.ECS, width, height float64) *PlayerSystem {
	return &PlayerSystem{ecs: ecs, width: width, height: height}
}

// MoveTo ставит игрока в точку (x, y) с ограничением по полю.
func (s *PlayerSystem) MoveTo(x, y float64) {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	s.move(x-pos.X, y-pos.Y, x, y)
}

// MoveBy смещает игрока на (dx, dy) с ограничением по полю.
func (s *PlayerSystem) MoveBy(dx, dy float64) {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return
	}
	s.move(dx, dy, pos.X+dx, pos.Y+dy)
}

func (s *PlayerSystem) move(dx, dy, x, y float64) {
	id := s.ecs.PlayerID
	pos := s.ecs.Positions[id]
	player, ok := s.ecs.Players[id]
	if !ok {
		return
	}

	pos.X = utils.Clamp(x, player.Padding, s.width-player.Padding)
	pos.Y = utils.Clamp(y, player.Padding, s.height-player.Padding)

	// при нулевом смещении atan2 даёт 0 — сохраняем прежний угол
	if dx != 0 || dy != 0 {
		player.Angle = utils.HeadingDegrees(dx, dy)
	}
}

// Position возвращает текущие координаты игрока.
func (s *PlayerSystem) Position() (float64, float64) {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// Angle возвращает направление игрока в градусах.
func (s *PlayerSystem) Angle() float64 {
	if p, ok := s.ecs.Players[s.ecs.PlayerID]; ok {
		return p.Angle
	}
	return 0
}

// Contains сообщает, попадает ли точка в игрока с запасом margin.
func (s *PlayerSystem) Contains(x, y, margin float64) bool {
	pos, ok := s.ecs.Positions[s.ecs.PlayerID]
	if !ok {
		return false
	}
	r := margin
	if c, ok := s.ecs.Colliders[s.ecs.PlayerID]; ok {
		r += c.Radius
	}
	return utils.Distance(pos.X, pos.Y, x, y) <= r
}
