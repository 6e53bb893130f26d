package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
)

const DefaultExpirationDelay = 10 * time.Minute

// ExpirationScheduler arms a one-shot timer per booking and publishes
// BOOKING_EXPIRATION_CHECK when it fires. Timers live in process memory:
// a restart loses pending timers, and the reconciliation sweep picks up
// whatever they would have expired.
type ExpirationScheduler struct {
	eventPublisher events.Publisher
	delay          time.Duration
	logger         *logrus.Logger

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewExpirationScheduler creates a new ExpirationScheduler
func NewExpirationScheduler(eventPublisher events.Publisher, delay time.Duration, logger *logrus.Logger) *ExpirationScheduler {
	if delay <= 0 {
		delay = DefaultExpirationDelay
	}
	return &ExpirationScheduler{
		eventPublisher: eventPublisher,
		delay:          delay,
		logger:         logger,
		timers:         make(map[string]*time.Timer),
	}
}

// Schedule arms the expiration timer for a booking. Rearming an already
// scheduled booking resets its timer.
func (s *ExpirationScheduler) Schedule(bookingID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[bookingID]; ok {
		timer.Stop()
	}

	s.timers[bookingID] = time.AfterFunc(s.delay, func() {
		s.fire(bookingID, token)
	})

	s.logger.WithFields(logrus.Fields{
		"booking_id": bookingID,
		"delay":      s.delay.String(),
	}).Info("expiration check scheduled")
}

// Cancel disarms a booking's pending timer, if any
func (s *ExpirationScheduler) Cancel(bookingID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[bookingID]; ok {
		timer.Stop()
		delete(s.timers, bookingID)
	}
}

// Stop disarms every pending timer
func (s *ExpirationScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *ExpirationScheduler) fire(bookingID, token string) {
	s.mu.Lock()
	delete(s.timers, bookingID)
	s.mu.Unlock()

	event := events.NewEvent(events.BookingExpirationCheckEvent, &domain.BookingExpirationCheckPayload{
		BookingID: bookingID,
		Token:     token,
	})

	if err := s.eventPublisher.Publish(context.Background(), event); err != nil {
		s.logger.WithError(err).WithField("booking_id", bookingID).
			Error("failed to publish expiration check")
		return
	}

	s.logger.WithField("booking_id", bookingID).Info("expiration check fired")
}
