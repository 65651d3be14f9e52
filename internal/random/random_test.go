package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSourcesReplay(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestBetweenIsInclusive(t *testing.T) {
	src := New(&Config{Seed: 7})
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := Between(src, 10, 12)
		require.GreaterOrEqual(t, v, 10)
		require.LessOrEqual(t, v, 12)
		seen[v] = true
	}
	assert.Len(t, seen, 3)

	assert.Equal(t, 4, Between(src, 4, 4))
}

func TestSample(t *testing.T) {
	src := New(&Config{Seed: 3})
	values := []int{0, 1, 2, 3, 4, 5}

	t.Run("distinct members", func(t *testing.T) {
		got := Sample(src, values, 4)
		require.Len(t, got, 4)
		seen := map[int]bool{}
		for _, v := range got {
			assert.Contains(t, values, v)
			assert.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	})

	t.Run("clamps to population", func(t *testing.T) {
		assert.ElementsMatch(t, values, Sample(src, values, 10))
	})

	t.Run("zero count", func(t *testing.T) {
		assert.Empty(t, Sample(src, values, 0))
	})

	t.Run("input untouched", func(t *testing.T) {
		Sample(src, values, 6)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, values)
	})
}
