package coin

import (
	"math/rand"
	"sync"
)

// RNG is the randomness source used by tosses and reward rolls
type RNG interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRNG struct{}

func (globalRNG) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (globalRNG) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

func (globalRNG) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DefaultRNG returns the process-wide math/rand source. Safe for concurrent use.
func DefaultRNG() RNG {
	return globalRNG{}
}

// lockedRNG serializes access to a private *rand.Rand
type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRNG returns a deterministic source, safe for concurrent use
func NewSeededRNG(seed int64) RNG {
	return &lockedRNG{r: rand.New(rand.NewSource(seed))} //nolint:gosec // Game logic randomness, not security critical
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *lockedRNG) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRNG) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}
