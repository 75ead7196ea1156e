// internal/system/render.go
package system

import (
	"go-watch-out/internal/config"
	"go-watch-out/internal/entity"
	"go-watch-out/pkg/render"
)

// RenderSystem переводит состояние ECS в фигуры для Sink.
type RenderSystem struct {
	ecs       *entity.ECS
	collision *CollisionSystem
	shapes    []render.Shape
}

// NewRenderSystem создаёт систему отрисовки. collision может быть nil,
// тогда враги, касающиеся игрока, не подсвечиваются.
func NewRenderSystem(ecs *entity.ECS, collision *CollisionSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, collision: collision}
}

// Shapes возвращает фигуры кадра: враги в порядке создания, игрок последним.
// Срез переиспользуется между вызовами.
func (s *RenderSystem) Shapes() []render.Shape {
	s.shapes = s.shapes[:0]
	for _, id := range s.ecs.EnemyOrder {
		pos := s.ecs.Positions[id]
		r := s.ecs.Renderables[id]
		shape := render.Shape{
			ID:     s.ecs.Enemies[id].ID,
			Kind:   render.KindCircle,
			X:      pos.X,
			Y:      pos.Y,
			Radius: s.ecs.Colliders[id].Radius,
		}
		if r != nil {
			shape.Color, shape.Stroke = r.Color, r.Stroke
		}
		if s.collision != nil && s.collision.Touching(id) {
			shape.Color = render.LightenColor(shape.Color, config.TouchHighlight)
		}
		s.shapes = append(s.shapes, shape)
	}

	if pos, ok := s.ecs.Positions[s.ecs.PlayerID]; ok {
		shape := render.Shape{
			ID:   -1,
			Kind: render.KindPlayer,
			X:    pos.X,
			Y:    pos.Y,
		}
		if c, ok := s.ecs.Colliders[s.ecs.PlayerID]; ok {
			shape.Radius = c.Radius
		}
		if p, ok := s.ecs.Players[s.ecs.PlayerID]; ok {
			shape.Rotation = p.Angle
		}
		if r, ok := s.ecs.Renderables[s.ecs.PlayerID]; ok {
			shape.Color, shape.Stroke = r.Color, r.Stroke
		}
		s.shapes = append(s.shapes, shape)
	}
	return s.shapes
}

// Draw отдаёт все фигуры кадра в sink.
func (s *RenderSystem) Draw(sink render.Sink) {
	for _, shape := range s.Shapes() {
		sink.DrawShape(shape)
	}
}
