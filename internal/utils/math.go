// internal/utils/math.go
package utils

import "math"

// Lerp выполняет линейную интерполяцию. При t == 1 результат точно равен to.
func Lerp(from, to, t float64) float64 {
	return from*(1-t) + to*t
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}

// HeadingDegrees — направление смещения (dx, dy) в градусах, как atan2.
func HeadingDegrees(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// Distance — евклидово расстояние между двумя точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}
