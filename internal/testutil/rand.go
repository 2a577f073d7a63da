package testutil

import "sync"

// StubRand returns queued Float64 values in order, falling back to 0
// when the queue is exhausted.
type StubRand struct {
	mu     sync.Mutex
	values []float64
}

// NewStubRand creates a StubRand that yields the given values in order.
func NewStubRand(values ...float64) *StubRand {
	return &StubRand{values: values}
}

func (r *StubRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}
