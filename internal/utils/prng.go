// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps the standard generator so the whole game can run
// on a predictable (seeded) source. Scenario tests inject fixed seeds.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. Seed 0 means
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float64 in [lo, hi).
func (s *PRNGService) Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// IntRange returns a random int in [lo, hi].
func (s *PRNGService) IntRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// ChooseWeighted picks an index from a weight table: it sums the
// weights, draws a number in that range, and walks forward to the
// entry the draw lands in. Non-positive totals fall back to index 0.
func (s *PRNGService) ChooseWeighted(weights []int) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	r := s.Intn(total)
	upto := 0
	for i, w := range weights {
		if upto+w > r {
			return i
		}
		upto += w
	}
	return len(weights) - 1
}
