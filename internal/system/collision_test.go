package system

import (
	"testing"

	"go-watch-out/internal/config"
	"go-watch-out/internal/event"
	"go-watch-out/internal/event/mocks"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

func newTestCollision(enemies int, mode config.TriggerMode, d *event.Dispatcher) (*CollisionSystem, *ScoreSystem) {
	ecs := newTestWorld(enemies)
	score := NewScoreSystem(ecs, d)
	return NewCollisionSystem(ecs, score, mode, d), score
}

func TestTickResetsOnOverlap(t *testing.T) {
	c, score := newTestCollision(1, config.TriggerLevel, nil)
	placePlayer(c.ecs, 50, 50)
	placeEnemy(c.ecs, 0, 50, 50, 5)
	c.ecs.Score.Current = 4

	if n := c.Tick(); n != 1 {
		t.Fatalf("resets = %d, want 1", n)
	}
	if score.Current() != 0 || score.Best() != 4 {
		t.Fatalf("score %d best %d, want 0 and 4", score.Current(), score.Best())
	}
}

func TestTickIgnoresDistantEnemy(t *testing.T) {
	c, score := newTestCollision(1, config.TriggerLevel, nil)
	placePlayer(c.ecs, 50, 50)
	placeEnemy(c.ecs, 0, 90, 90, 5)
	c.ecs.Score.Current = 4

	if n := c.Tick(); n != 0 {
		t.Fatalf("resets = %d, want 0", n)
	}
	if score.Current() != 4 {
		t.Fatalf("score changed to %d", score.Current())
	}
}

func TestTouchingAtExactRadiusSum(t *testing.T) {
	c, _ := newTestCollision(1, config.TriggerLevel, nil)
	placePlayer(c.ecs, 100, 100)
	placeEnemy(c.ecs, 0, 110, 100, 5)
	if n := c.Tick(); n != 1 {
		t.Fatalf("distance == r1+r2 must collide")
	}
}

func TestLevelTriggerFiresEveryTick(t *testing.T) {
	c, score := newTestCollision(1, config.TriggerLevel, nil)
	placePlayer(c.ecs, 200, 200)
	placeEnemy(c.ecs, 0, 202, 200, 5)

	for i := 0; i < 3; i++ {
		score.Increment()
		if n := c.Tick(); n != 1 {
			t.Fatalf("tick %d: resets = %d, want 1", i, n)
		}
		if score.Current() != 0 {
			t.Fatalf("tick %d: score not reset", i)
		}
	}
}

func TestEdgeTriggerFiresOncePerEntry(t *testing.T) {
	c, score := newTestCollision(1, config.TriggerEdge, nil)
	placePlayer(c.ecs, 200, 200)
	placeEnemy(c.ecs, 0, 202, 200, 5)

	if n := c.Tick(); n != 1 {
		t.Fatalf("entry tick resets = %d, want 1", n)
	}
	for i := 0; i < 3; i++ {
		score.Increment()
		if n := c.Tick(); n != 0 {
			t.Fatalf("overlap tick %d fired again", i)
		}
	}
	if score.Current() != 3 {
		t.Fatalf("score = %d while staying in overlap, want 3", score.Current())
	}

	placeEnemy(c.ecs, 0, 300, 300, 5) // вышел
	c.Tick()
	placeEnemy(c.ecs, 0, 200, 200, 5) // снова вошёл
	if n := c.Tick(); n != 1 {
		t.Fatalf("re-entry resets = %d, want 1", n)
	}
	if score.Best() != 3 || score.Current() != 0 {
		t.Fatalf("score %d best %d, want 0 and 3", score.Current(), score.Best())
	}
}

func TestTickChecksEnemiesInCreationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := event.NewDispatcher()
	l := mocks.NewMockListener(ctrl)
	d.Subscribe(event.EnemyCollided, l)

	c, _ := newTestCollision(4, config.TriggerLevel, d)
	placePlayer(c.ecs, 300, 300)
	for i := 0; i < 4; i++ {
		placeEnemy(c.ecs, i, 500, 100, 5)
	}
	placeEnemy(c.ecs, 1, 300, 300, 5)
	placeEnemy(c.ecs, 3, 303, 304, 5)
	c.ecs.Score.Current = 9

	var got []event.CollisionData
	l.EXPECT().OnEvent(gomock.Any()).Do(func(e event.Event) {
		got = append(got, e.Data.(event.CollisionData))
	}).Times(2)

	c.Tick()
	if got[0].EnemyID != 1 || got[1].EnemyID != 3 {
		t.Fatalf("collision order = %+v", got)
	}
	if got[0].ScoreBefore != 9 || got[1].ScoreBefore != 0 {
		t.Fatalf("scores before reset = %d, %d", got[0].ScoreBefore, got[1].ScoreBefore)
	}
	if got[1].Distance != 5 {
		t.Fatalf("distance = %v, want 5", got[1].Distance)
	}
}

func TestCollidesIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x1 := rapid.Float64Range(0, 700).Draw(t, "x1")
		y1 := rapid.Float64Range(0, 450).Draw(t, "y1")
		x2 := rapid.Float64Range(0, 700).Draw(t, "x2")
		y2 := rapid.Float64Range(0, 450).Draw(t, "y2")
		r1 := rapid.Float64Range(0, 50).Draw(t, "r1")
		r2 := rapid.Float64Range(0, 50).Draw(t, "r2")
		if Collides(x1, y1, r1, x2, y2, r2) != Collides(x2, y2, r2, x1, y1, r1) {
			t.Fatalf("collision not symmetric")
		}
	})
}
