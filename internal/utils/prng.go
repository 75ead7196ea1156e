// internal/utils/prng.go
package utils

import (
	"math"
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел с известным сидом.
// Единственный источник недетерминизма игры: одинаковый сид даёт одинаковые
// траектории врагов.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает фактически использованный сид.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Range возвращает случайное число в полуинтервале [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	v := min + s.rng.Float64()*(max-min)
	if v >= max {
		// округление может дать ровно max
		v = math.Nextafter(max, min)
	}
	return v
}
