// internal/component/collider.go
package component

// Collider — круг столкновения вокруг Position.
type Collider struct {
	Radius float64
}
