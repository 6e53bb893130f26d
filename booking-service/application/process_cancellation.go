package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// ProcessCancellation settles a user-initiated cancellation of a PENDING
// booking: the payment intent is cancelled so the user cannot pay later,
// then the booking is marked CANCELLED.
type ProcessCancellation struct {
	bookingRepository domain.BookingRepository
	payment           domain.PaymentGateway
	logger            *logrus.Logger
}

// NewProcessCancellation creates a new ProcessCancellation use case
func NewProcessCancellation(
	bookingRepository domain.BookingRepository,
	payment domain.PaymentGateway,
	logger *logrus.Logger,
) *ProcessCancellation {
	return &ProcessCancellation{
		bookingRepository: bookingRepository,
		payment:           payment,
		logger:            logger,
	}
}

// Execute executes the cancellation step
func (uc *ProcessCancellation) Execute(ctx context.Context, payload *domain.CancellationRequestedPayload) error {
	if err := uc.payment.CancelIntent(ctx, payload.BookingID, payload.Token); err != nil {
		return errors.Wrap(err, "failed to cancel payment intent")
	}

	if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusCancelled); err != nil {
		return errors.Wrap(err, "failed to mark booking cancelled")
	}

	uc.logger.WithField("booking_id", payload.BookingID).Info("booking cancelled")
	return nil
}
