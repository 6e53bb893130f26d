package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/application"
)

const DefaultReconciliationInterval = 24 * time.Hour

// ReconciliationScheduler runs the reconciliation sweep on a fixed cadence.
type ReconciliationScheduler struct {
	reconcile *application.ReconcileBookings
	interval  time.Duration
	logger    *logrus.Logger
	stop      chan struct{}
	done      chan struct{}
}

// NewReconciliationScheduler creates a new ReconciliationScheduler
func NewReconciliationScheduler(reconcile *application.ReconcileBookings, interval time.Duration, logger *logrus.Logger) *ReconciliationScheduler {
	if interval <= 0 {
		interval = DefaultReconciliationInterval
	}
	return &ReconciliationScheduler{
		reconcile: reconcile,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop. It blocks until Stop is called or the
// context is cancelled, so callers run it in a goroutine.
func (s *ReconciliationScheduler) Start(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.reconcile.Execute(ctx); err != nil {
				s.logger.WithError(err).Error("reconciliation sweep failed")
			}
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends the sweep loop and waits for it to exit
func (s *ReconciliationScheduler) Stop() {
	close(s.stop)
	<-s.done
}
