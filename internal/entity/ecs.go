// internal/entity/ecs.go
package entity

import (
	"go-watch-out/internal/component"
	"go-watch-out/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Colliders   map[types.EntityID]*component.Collider
	Legs        map[types.EntityID]*component.Leg
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player
	Renderables map[types.EntityID]*component.Renderable
	EnemyOrder  []types.EntityID // враги в порядке создания
	PlayerID    types.EntityID
	Score       *component.Score
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Legs:        make(map[types.EntityID]*component.Leg),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Players:     make(map[types.EntityID]*component.Player),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Score:       &component.Score{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy регистрирует врага; номер врага равен порядку создания.
func (ecs *ECS) AddEnemy(pos component.Position, radius float64, r component.Renderable) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Colliders[id] = &component.Collider{Radius: 0}
	ecs.Enemies[id] = &component.Enemy{
		ID:            len(ecs.EnemyOrder),
		TargetX:       -1,
		TargetY:       -1,
		NominalRadius: radius,
	}
	ecs.Renderables[id] = &r
	ecs.EnemyOrder = append(ecs.EnemyOrder, id)
	return id
}

// AddPlayer регистрирует единственного игрока.
func (ecs *ECS) AddPlayer(pos component.Position, radius, padding float64, r component.Renderable) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Colliders[id] = &component.Collider{Radius: radius}
	ecs.Players[id] = &component.Player{Padding: padding}
	ecs.Renderables[id] = &r
	ecs.PlayerID = id
	return id
}

// EnemyByID ищет сущность врага по его стабильному номеру.
func (ecs *ECS) EnemyByID(enemyID int) (types.EntityID, bool) {
	if enemyID < 0 || enemyID >= len(ecs.EnemyOrder) {
		return 0, false
	}
	return ecs.EnemyOrder[enemyID], true
}
