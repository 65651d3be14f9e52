package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/roulette/internal/random Source

// Source is the single random source of a game. Bullet placement, free
// spins and automatic target choice all draw from it so that a seeded
// source replays the same game.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// Rand provides seeded random numbers
type Rand struct {
	random *rand.Rand
}

// Config for the random source
type Config struct {
	// Optional seed for replays and tests
	Seed int64
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a uniform value in [0, n)
func (r *Rand) Intn(n int) int {
	return r.random.Intn(n)
}

// Between returns a uniform value in the inclusive range [min, max].
func Between(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.Intn(max-min+1)
}

// Sample picks count distinct elements of values uniformly, without
// replacement. values is not modified. count is clamped to len(values).
func Sample(src Source, values []int, count int) []int {
	if count > len(values) {
		count = len(values)
	}
	if count <= 0 {
		return []int{}
	}

	pool := make([]int, len(values))
	copy(pool, values)

	// partial Fisher-Yates over the first count slots
	for i := 0; i < count; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:count]
}
