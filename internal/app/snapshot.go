// internal/app/snapshot.go
package app

import "time"

// PlayerView — состояние игрока для чтения.
type PlayerView struct {
	X, Y   float64
	Radius float64
	Angle  float64
}

// EnemyView — состояние врага для чтения.
type EnemyView struct {
	ID               int
	X, Y             float64
	Radius           float64
	TargetX, TargetY float64 // нормализованная цель
}

// Snapshot — копия состояния сессии, не связанная с ECS.
type Snapshot struct {
	Player     PlayerView
	Enemies    []EnemyView
	Score      int
	Best       int
	Collisions int
	Elapsed    time.Duration
}

// Snapshot возвращает копию текущего состояния; враги в порядке создания.
func (s *Session) Snapshot() Snapshot {
	ecs := s.ECS
	snap := Snapshot{
		Enemies:    make([]EnemyView, 0, len(ecs.EnemyOrder)),
		Score:      ecs.Score.Current,
		Best:       ecs.Score.Best,
		Collisions: s.collisions,
		Elapsed:    s.Scheduler.Elapsed(),
	}
	if pos, ok := ecs.Positions[ecs.PlayerID]; ok {
		snap.Player = PlayerView{X: pos.X, Y: pos.Y, Angle: s.PlayerSystem.Angle()}
		if c, ok := ecs.Colliders[ecs.PlayerID]; ok {
			snap.Player.Radius = c.Radius
		}
	}
	for _, id := range ecs.EnemyOrder {
		enemy := ecs.Enemies[id]
		pos := ecs.Positions[id]
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:      enemy.ID,
			X:       pos.X,
			Y:       pos.Y,
			Radius:  ecs.Colliders[id].Radius,
			TargetX: enemy.TargetX,
			TargetY: enemy.TargetY,
		})
	}
	return snap
}
