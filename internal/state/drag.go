// internal/state/drag.go
package state

// dragTracker превращает абсолютные координаты указателя в относительные
// смещения. Перетаскивание начинается только с нажатия на игрока.
type dragTracker struct {
	active       bool
	lastX, lastY float64
}

// Press начинает перетаскивание, если нажатие пришлось на цель.
func (d *dragTracker) Press(x, y float64, onTarget bool) bool {
	if !onTarget {
		return false
	}
	d.active = true
	d.lastX, d.lastY = x, y
	return true
}

// Move возвращает смещение с прошлого вызова.
func (d *dragTracker) Move(x, y float64) (dx, dy float64, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	dx, dy = x-d.lastX, y-d.lastY
	d.lastX, d.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}

func (d *dragTracker) Release() {
	d.active = false
}

func (d *dragTracker) Active() bool {
	return d.active
}
