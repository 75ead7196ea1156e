// internal/component/score.go
package component

// Score — текущий счёт и лучший результат за сессию.
type Score struct {
	Current int
	Best    int
}
