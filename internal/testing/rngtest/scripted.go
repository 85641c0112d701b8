package rngtest

import "sync"

// Scripted is a deterministic RNG that replays queued values.
// Once a queue runs dry it returns the fallback value. Shuffle keeps the input order.
type Scripted struct {
	mu            sync.Mutex
	floats        []float64
	ints          []int
	FallbackFloat float64
	FallbackInt   int
	Shuffles      int
}

// NewScripted creates a Scripted RNG. Fallbacks default to "never hit": 0.999 and 99.
func NewScripted() *Scripted {
	return &Scripted{FallbackFloat: 0.999, FallbackInt: 99}
}

// Floats queues values for Float64
func (s *Scripted) Floats(v ...float64) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.floats = append(s.floats, v...)
	return s
}

// Ints queues values for Intn. Values are reduced modulo n when returned.
func (s *Scripted) Ints(v ...int) *Scripted {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ints = append(s.ints, v...)
	return s
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.floats) == 0 {
		return s.FallbackFloat
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Scripted) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.FallbackInt
	if len(s.ints) > 0 {
		v = s.ints[0]
		s.ints = s.ints[1:]
	}
	if n <= 0 {
		return 0
	}
	return v % n
}

func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Shuffles++
}

// Pending reports how many queued values were not consumed
func (s *Scripted) Pending() (floats, ints int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.floats), len(s.ints)
}
