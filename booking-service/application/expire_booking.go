package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
)

// ExpireBooking handles the one-shot expiration check: it cancels the
// payment intent and, when the booking is still PENDING, fails it and asks
// for the reservation to be released. Bookings already settled by a webhook
// are left alone.
type ExpireBooking struct {
	bookingRepository domain.BookingRepository
	payment           domain.PaymentGateway
	eventPublisher    events.Publisher
	logger            *logrus.Logger
}

// NewExpireBooking creates a new ExpireBooking use case
func NewExpireBooking(
	bookingRepository domain.BookingRepository,
	payment domain.PaymentGateway,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *ExpireBooking {
	return &ExpireBooking{
		bookingRepository: bookingRepository,
		payment:           payment,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute executes the expiration check
func (uc *ExpireBooking) Execute(ctx context.Context, payload *domain.BookingExpirationCheckPayload) error {
	log := uc.logger.WithField("booking_id", payload.BookingID)

	if err := uc.payment.CancelIntent(ctx, payload.BookingID, payload.Token); err != nil {
		return errors.Wrap(err, "failed to cancel payment intent")
	}

	booking, err := uc.bookingRepository.FindByID(ctx, payload.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to load booking")
	}
	if booking == nil || booking.Status != domain.BookingStatusPending {
		log.Info("expiration check: booking already settled, no action needed")
		return nil
	}

	if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusFailed); err != nil {
		return errors.Wrap(err, "failed to mark booking failed")
	}

	if booking.HasReservation() {
		event := events.NewEvent(events.ReservationCancellationRequestedEvent, &domain.ReservationCancellationRequestedPayload{
			PerformanceID: booking.PerformanceID,
			ReservationID: *booking.ReservationID,
			Token:         payload.Token,
		})
		if err := uc.eventPublisher.Publish(ctx, event); err != nil {
			return errors.Wrap(err, "failed to publish reservation cancellation")
		}
	}

	log.Info("booking expired and marked FAILED")
	return nil
}
