// internal/component/player.go
package component

// Player хранит состояние игрока, которого тащит пользователь.
type Player struct {
	Angle   float64 // направление последнего смещения, градусы; только для отрисовки
	Padding float64
}
