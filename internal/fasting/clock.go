package fasting

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// RandSource abstracts the coach's random variant selection so tests
// can stub the draws. Float64 returns a value in [0, 1).
type RandSource interface {
	Float64() float64
}

// RealRand draws from the shared math/rand source.
type RealRand struct{}

func (RealRand) Float64() float64 { return rand.Float64() }
