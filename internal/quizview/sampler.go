package quizview

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Sampler picks values for display-only fields.
type Sampler interface {
	// IntBetween returns a uniform value in [lo, hi]; arguments may arrive swapped.
	IntBetween(lo, hi int) int
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// NewRandomSampler draws from the process-wide generator.
func NewRandomSampler() Sampler {
	return globalSampler{}
}

type globalSampler struct{}

func (globalSampler) IntBetween(lo, hi int) int {
	lo, hi = ordered(lo, hi)
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int(rand.Uint64())
	}
	return lo + int(rand.Uint64N(span+1))
}

func (globalSampler) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}

// NewSeededSampler returns a reproducible sampler safe for concurrent use.
func NewSeededSampler(seed uint64) Sampler {
	return &seededSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type seededSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (s *seededSampler) IntBetween(lo, hi int) int {
	lo, hi = ordered(lo, hi)
	span := uint64(hi) - uint64(lo)
	s.mu.Lock()
	defer s.mu.Unlock()
	if span == math.MaxUint64 {
		return int(s.rng.Uint64())
	}
	return lo + int(s.rng.Uint64N(span+1))
}

func (s *seededSampler) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func ordered(lo, hi int) (int, int) {
	if hi < lo {
		return hi, lo
	}
	return lo, hi
}
