package scheduler

import (
	"auction-house/utils"
	"fmt"

	"github.com/robfig/cron/v3"
)

// Closer closes auctions whose end time has passed and returns their ids
type Closer interface {
	CloseExpired() []string
}

// ExpiryScheduler periodically clears the active flag of ended auctions
type ExpiryScheduler struct {
	cron   *cron.Cron
	closer Closer
	spec   string
}

// NewExpiryScheduler creates a scheduler running on spec, e.g. "@every 30s"
func NewExpiryScheduler(closer Closer, spec string) *ExpiryScheduler {
	return &ExpiryScheduler{
		cron:   cron.New(cron.WithSeconds()),
		closer: closer,
		spec:   spec,
	}
}

// Start registers the sweep job and starts the cron loop
func (s *ExpiryScheduler) Start() error {
	utils.Info("Starting auction expiry scheduler", map[string]any{"spec": s.spec})

	if _, err := s.cron.AddFunc(s.spec, s.Sweep); err != nil {
		return fmt.Errorf("scheduler: invalid spec %q: %w", s.spec, err)
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish
func (s *ExpiryScheduler) Stop() {
	utils.Info("Stopping auction expiry scheduler", nil)
	<-s.cron.Stop().Done()
}

// Sweep closes expired auctions once
func (s *ExpiryScheduler) Sweep() {
	closed := s.closer.CloseExpired()
	if len(closed) == 0 {
		return
	}
	utils.Info("Closed expired auctions", map[string]any{"count": len(closed), "auction_ids": closed})
}
