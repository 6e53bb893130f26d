package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"golang.org/x/sync/errgroup"
)

const (
	// reconcileLookback bounds how far back settlement events are fetched.
	reconcileLookback = 24 * time.Hour
	// reconcileGrace leaves room for in-flight webhooks before the sweep
	// treats the payment log as authoritative.
	reconcileGrace = 10 * time.Minute

	reconcileConcurrency = 8
)

// ReconcileBookings re-derives booking status from the payment service's
// settlement log and corrects drift. Each booking is written independently
// inside its own guarded transaction; one booking's failure never aborts
// the sweep. This is also the safety net for expirations lost to a restart
// of the in-memory timer.
type ReconcileBookings struct {
	bookingRepository domain.BookingRepository
	payment           domain.PaymentGateway
	logger            *logrus.Logger
}

// NewReconcileBookings creates a new ReconcileBookings use case
func NewReconcileBookings(
	bookingRepository domain.BookingRepository,
	payment domain.PaymentGateway,
	logger *logrus.Logger,
) *ReconcileBookings {
	return &ReconcileBookings{
		bookingRepository: bookingRepository,
		payment:           payment,
		logger:            logger,
	}
}

// Execute runs one reconciliation pass
func (uc *ReconcileBookings) Execute(ctx context.Context) error {
	now := time.Now()
	start := now.Add(-reconcileLookback)
	end := now.Add(-reconcileGrace)

	uc.logger.Info("reconciliation sweep started")

	settlements, err := uc.payment.ListEvents(ctx, start, end)
	if err != nil {
		return errors.Wrap(err, "failed to list payment events")
	}

	latest := latestEventPerBooking(settlements)
	if len(latest) == 0 {
		uc.logger.Info("reconciliation sweep: no settlement events in window")
		return nil
	}

	uc.logger.WithField("bookings", len(latest)).Info("reconciling bookings")

	gr, ctx := errgroup.WithContext(ctx)
	gr.SetLimit(reconcileConcurrency)

	for _, settlement := range latest {
		settlement := settlement
		gr.Go(func() error {
			uc.reconcileOne(ctx, settlement)
			return nil
		})
	}

	// Errors are per-booking and already logged; the group never fails.
	_ = gr.Wait()

	uc.logger.Info("reconciliation sweep finished")
	return nil
}

func (uc *ReconcileBookings) reconcileOne(ctx context.Context, settlement domain.PaymentEvent) {
	log := uc.logger.WithField("booking_id", settlement.BookingID)

	desired, ok := domain.StatusFromPaymentEvent(settlement.EventType, settlement.FinalStatus)
	if !ok {
		return
	}

	applied, err := uc.bookingRepository.UpdateStatus(ctx, settlement.BookingID, desired)
	if err != nil {
		log.WithError(err).Error("failed to reconcile booking status")
		return
	}

	if applied {
		log.WithField("status", string(desired)).Info("booking status reconciled")
	}
}

// latestEventPerBooking reduces the settlement log to the newest event for
// each booking id.
func latestEventPerBooking(settlements []domain.PaymentEvent) map[string]domain.PaymentEvent {
	latest := make(map[string]domain.PaymentEvent)
	for _, settlement := range settlements {
		current, ok := latest[settlement.BookingID]
		if !ok || current.CreatedAt.Before(settlement.CreatedAt) {
			latest[settlement.BookingID] = settlement
		}
	}
	return latest
}
