package system

import (
	"go-watch-out/internal/component"
	"go-watch-out/internal/config"
	"go-watch-out/internal/entity"
	"go-watch-out/pkg/render"
)

const (
	testWidth   = float64(config.DefaultWidth)
	testHeight  = float64(config.DefaultHeight)
	testPadding = config.DefaultPadding
)

func newTestWorld(enemies int) *entity.ECS {
	ecs := entity.NewECS()
	for i := 0; i < enemies; i++ {
		ecs.AddEnemy(component.Position{}, config.DefaultEnemyRadius, component.Renderable{
			Kind:  render.KindCircle,
			Color: config.EnemyColor,
		})
	}
	ecs.AddPlayer(component.Position{X: 350, Y: 225}, config.DefaultPlayerRadius, testPadding, component.Renderable{
		Kind:  render.KindPlayer,
		Color: config.PlayerColor,
	})
	return ecs
}

// placeEnemy ставит врага в точку с указанным радиусом, минуя движение.
func placeEnemy(ecs *entity.ECS, enemyID int, x, y, r float64) {
	id, _ := ecs.EnemyByID(enemyID)
	ecs.Positions[id].X, ecs.Positions[id].Y = x, y
	ecs.Colliders[id].Radius = r
}

func placePlayer(ecs *entity.ECS, x, y float64) {
	pos := ecs.Positions[ecs.PlayerID]
	pos.X, pos.Y = x, y
}
