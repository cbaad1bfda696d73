// Package network simulates the round trip the store operations pay before they
// touch state. Production wiring uses a fixed delay; tests use Instant.
package network

import (
	"fmt"
	"time"

	"auction-house/internal/auctionerrors"
)

// Operation names used for per-operation latency
const (
	OpCreate   = "create"
	OpPlaceBid = "placeBid"
	OpLogin    = "login"
	OpRegister = "register"
)

// Link performs one simulated request for the named operation
type Link interface {
	RoundTrip(op string) error
}

// SimulatedLink sleeps for a per-operation delay and optionally fails
type SimulatedLink struct {
	delays       map[string]time.Duration
	defaultDelay time.Duration
	fail         func(op string) bool
	sleep        func(time.Duration)
}

// Option configures a SimulatedLink
type Option func(*SimulatedLink)

// WithDelay sets the latency for a single operation
func WithDelay(op string, d time.Duration) Option {
	return func(l *SimulatedLink) {
		l.delays[op] = d
	}
}

// WithFailure makes RoundTrip fail whenever fail returns true for the operation
func WithFailure(fail func(op string) bool) Option {
	return func(l *SimulatedLink) {
		l.fail = fail
	}
}

// NewSimulatedLink creates a link with defaultDelay for operations without an explicit delay
func NewSimulatedLink(defaultDelay time.Duration, opts ...Option) *SimulatedLink {
	l := &SimulatedLink{
		delays:       make(map[string]time.Duration),
		defaultDelay: defaultDelay,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Instant returns a link with no latency that never fails
func Instant() *SimulatedLink {
	return NewSimulatedLink(0)
}

// RoundTrip waits out the operation's latency and reports a transport failure if configured
func (l *SimulatedLink) RoundTrip(op string) error {
	d, ok := l.delays[op]
	if !ok {
		d = l.defaultDelay
	}
	if d > 0 {
		l.sleep(d)
	}
	if l.fail != nil && l.fail(op) {
		return fmt.Errorf("%s: %w", op, auctionerrors.ErrNetwork)
	}
	return nil
}

// Delay returns the configured latency for op
func (l *SimulatedLink) Delay(op string) time.Duration {
	if d, ok := l.delays[op]; ok {
		return d
	}
	return l.defaultDelay
}
