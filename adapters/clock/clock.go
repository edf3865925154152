// Package clock provides Clock implementations.
//
// The scaffolder reads the clock exactly once per run, when the project
// spec is assembled. Everything downstream of the spec (license year,
// metadata document, ledger timestamps) derives from that single read,
// which keeps generation reproducible under a fake clock.
package clock

import (
	"sync"
	"time"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// Real returns the actual current time.
type Real struct{}

var _ ports.Clock = Real{}

// Now returns the current time.
func (Real) Now() time.Time {
	return time.Now()
}

// Fake provides a controllable clock for testing.
type Fake struct {
	mu      sync.RWMutex
	current time.Time
}

var _ ports.Clock = (*Fake)(nil)

// NewFake creates a fake clock set to the given time.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Set sets the fake current time.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
}

// Advance moves the fake time forward by duration d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}
