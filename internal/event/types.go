// internal/event/types.go
package event

const (
	ScoreChanged   EventType = "ScoreChanged"   // изменился счёт или рекорд
	EnemyCollided  EventType = "EnemyCollided"  // игрок коснулся врага
	LegStarted     EventType = "LegStarted"     // враги получили новые цели
	SessionStopped EventType = "SessionStopped" // сессия остановлена
)

// ScoreData — данные события ScoreChanged.
type ScoreData struct {
	Current int
	Best    int
}

// CollisionData — данные события EnemyCollided.
type CollisionData struct {
	EnemyID     int
	ScoreBefore int
	Distance    float64
}

// LegData — данные события LegStarted.
type LegData struct {
	Leg     int // номер перемещения, с 1
	Enemies int
}
