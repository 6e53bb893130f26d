package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// MarkBookingPaid writes the PAID status for a confirmed payment. It runs as
// its own subscription on PAYMENT_SUCCESS_CONFIRMED, independent of the
// reservation confirmation, so a failure of either does not block the other.
type MarkBookingPaid struct {
	bookingRepository domain.BookingRepository
	logger            *logrus.Logger
}

// NewMarkBookingPaid creates a new MarkBookingPaid use case
func NewMarkBookingPaid(bookingRepository domain.BookingRepository, logger *logrus.Logger) *MarkBookingPaid {
	return &MarkBookingPaid{bookingRepository: bookingRepository, logger: logger}
}

// Execute marks the booking PAID, subject to the status skip rules
func (uc *MarkBookingPaid) Execute(ctx context.Context, bookingID string) error {
	applied, err := uc.bookingRepository.UpdateStatus(ctx, bookingID, domain.BookingStatusPaid)
	if err != nil {
		return errors.Wrap(err, "failed to mark booking paid")
	}

	if applied {
		uc.logger.WithField("booking_id", bookingID).Info("booking marked PAID")
	}
	return nil
}
