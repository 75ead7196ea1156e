package entity

import (
	"testing"

	"go-watch-out/internal/component"
)

func TestAddEnemyAssignsStableIDs(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 3; i++ {
		ecs.AddEnemy(component.Position{X: float64(i)}, 5, component.Renderable{})
	}
	ecs.AddPlayer(component.Position{}, 5, 20, component.Renderable{})

	if len(ecs.EnemyOrder) != 3 {
		t.Fatalf("enemy order length = %d, want 3", len(ecs.EnemyOrder))
	}
	for i, id := range ecs.EnemyOrder {
		if got := ecs.Enemies[id].ID; got != i {
			t.Fatalf("enemy %d has ID %d", i, got)
		}
		if got := ecs.Colliders[id].Radius; got != 0 {
			t.Fatalf("enemy %d spawned with radius %v, want 0", i, got)
		}
		found, ok := ecs.EnemyByID(i)
		if !ok || found != id {
			t.Fatalf("EnemyByID(%d) = %v,%v want %v", i, found, ok, id)
		}
	}
	if _, ok := ecs.EnemyByID(3); ok {
		t.Fatalf("EnemyByID(3) should not exist")
	}
	if _, ok := ecs.Players[ecs.PlayerID]; !ok {
		t.Fatalf("player not registered")
	}
	if ecs.PlayerID == ecs.EnemyOrder[2] {
		t.Fatalf("entity ids reused")
	}
}
