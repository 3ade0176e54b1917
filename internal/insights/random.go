package insights

import (
	"hash/fnv"
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource is the only source of randomness used by the fallback
// generator. Tests substitute a seeded or scripted implementation.
type RandomSource interface {
	// IntN returns a value in [0, n). It returns 0 when n <= 0.
	IntN(n int) int
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe source. A zero seed draws one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// SeedFromString derives a non-zero seed from an arbitrary string
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	if sum := h.Sum64(); sum != 0 {
		return sum
	}
	return 1
}

func (l *lockedSource) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedSource) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// between returns a value in [lo, hi]
func between(rnd RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.IntN(hi-lo+1)
}

// shuffled returns a shuffled copy of items
func shuffled[T any](rnd RandomSource, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// sample returns up to n items from a shuffled copy of items
func sample[T any](rnd RandomSource, items []T, n int) []T {
	out := shuffled(rnd, items)
	if n < len(out) {
		out = out[:n]
	}
	return out
}
