package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// CompleteRefund settles a refund confirmed by the payment service: seats
// are returned to inventory when a reservation exists, then the booking is
// marked REFUNDED.
type CompleteRefund struct {
	bookingRepository domain.BookingRepository
	inventory         domain.InventoryGateway
	logger            *logrus.Logger
}

// NewCompleteRefund creates a new CompleteRefund use case
func NewCompleteRefund(
	bookingRepository domain.BookingRepository,
	inventory domain.InventoryGateway,
	logger *logrus.Logger,
) *CompleteRefund {
	return &CompleteRefund{
		bookingRepository: bookingRepository,
		inventory:         inventory,
		logger:            logger,
	}
}

// Execute executes the refund completion step
func (uc *CompleteRefund) Execute(ctx context.Context, payload *domain.RefundCompletedPayload) error {
	booking, err := uc.bookingRepository.FindByID(ctx, payload.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to load booking")
	}
	if booking == nil {
		return errors.Errorf("booking %s not found for refund completion", payload.BookingID)
	}

	if booking.HasReservation() {
		if err := uc.inventory.Refund(ctx, booking.PerformanceID, *booking.ReservationID, payload.Token); err != nil {
			return errors.Wrap(err, "failed to return seats")
		}
	}

	if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusRefunded); err != nil {
		return errors.Wrap(err, "failed to mark booking refunded")
	}

	uc.logger.WithField("booking_id", payload.BookingID).Info("booking refunded")
	return nil
}
