package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRandomSource_SameSeedSameSequence(t *testing.T) {
	a := NewRandomSource(7)
	b := NewRandomSource(7)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRandomSource_IntNNonPositive(t *testing.T) {
	rnd := NewRandomSource(1)
	assert.Equal(t, 0, rnd.IntN(0))
	assert.Equal(t, 0, rnd.IntN(-3))
}

func TestBetween_Inclusive(t *testing.T) {
	rnd := NewRandomSource(3)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := between(rnd, 5, 7)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 7)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 4, between(rnd, 4, 4))
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	original := append([]string(nil), items...)

	got := sample(NewRandomSource(11), items, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, original, items)
	assert.Subset(t, items, got)

	assert.Len(t, sample(NewRandomSource(11), items, 10), 5)
}

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, SeedFromString("abc"), SeedFromString("abc"))
	assert.NotEqual(t, SeedFromString("abc"), SeedFromString("abd"))
	assert.NotZero(t, SeedFromString(""))
}
