// internal/component/movement.go
package component

// Position — компонент позиции в пикселях.
type Position struct {
	X, Y float64
}

// Leg — одно линейное перемещение от старой позиции к новой цели.
// Радиус интерполируется вместе с позицией (эффект появления).
type Leg struct {
	FromX, FromY      float64
	ToX, ToY          float64
	FromRadius        float64
	ToRadius          float64
	Elapsed, Duration float64 // секунды
}

// Progress возвращает долю пройденного пути в [0, 1].
func (l *Leg) Progress() float64 {
	if l.Duration <= 0 || l.Elapsed >= l.Duration {
		return 1
	}
	if l.Elapsed <= 0 {
		return 0
	}
	return l.Elapsed / l.Duration
}

// Done сообщает, завершено ли перемещение.
func (l *Leg) Done() bool {
	return l.Progress() >= 1
}
