// internal/component/enemy.go
package component

// Enemy — дрейфующий враг.
type Enemy struct {
	ID            int     // стабильный номер 0..N-1, не переиспользуется
	TargetX       float64 // последняя цель в нормализованном пространстве [0,100)
	TargetY       float64
	NominalRadius float64
	Legs          int // сколько перемещений уже начато
}
