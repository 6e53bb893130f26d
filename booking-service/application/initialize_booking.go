package application

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
)

// InitializeBooking prices the booking and assigns seats, then requests the
// inventory reservation. A performance lookup failure is a compensation
// trigger: the booking is marked FAILED instead of staying PENDING.
type InitializeBooking struct {
	bookingRepository domain.BookingRepository
	inventory         domain.InventoryGateway
	eventPublisher    events.Publisher
	logger            *logrus.Logger
}

// NewInitializeBooking creates a new InitializeBooking use case
func NewInitializeBooking(
	bookingRepository domain.BookingRepository,
	inventory domain.InventoryGateway,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *InitializeBooking {
	return &InitializeBooking{
		bookingRepository: bookingRepository,
		inventory:         inventory,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute executes the initialize booking step
func (uc *InitializeBooking) Execute(ctx context.Context, payload *domain.BookingInitializedPayload) error {
	log := uc.logger.WithField("booking_id", payload.BookingID)

	performance, err := uc.inventory.GetPerformance(ctx, payload.PerformanceID, payload.Token)
	if err != nil {
		log.WithError(err).Error("failed to fetch performance, failing booking")
		return uc.failBooking(ctx, payload.BookingID)
	}

	totalAmount := performance.Price * int64(payload.Quantity)
	seatIDs := make([]string, payload.Quantity)
	for i := range seatIDs {
		seatIDs[i] = fmt.Sprintf("A%d", i+1)
	}

	if err := uc.bookingRepository.UpdateDetails(ctx, payload.BookingID, totalAmount, seatIDs); err != nil {
		return errors.Wrap(err, "failed to update booking details")
	}

	booking, err := uc.bookingRepository.FindByID(ctx, payload.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to load booking")
	}
	if booking == nil {
		log.Error("booking disappeared during initialization")
		return nil
	}

	event := events.NewEvent(events.TicketReservationRequestedEvent, &domain.TicketReservationRequestedPayload{
		BookingID:     booking.ID,
		PerformanceID: payload.PerformanceID,
		Quantity:      payload.Quantity,
		UserID:        booking.UserID,
		PaymentMethod: booking.PaymentMethod,
		TotalAmount:   totalAmount,
		Token:         payload.Token,
	})
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish reservation request")
	}

	log.WithField("total_amount", totalAmount).Info("booking initialized")
	return nil
}

func (uc *InitializeBooking) failBooking(ctx context.Context, bookingID string) error {
	if _, err := uc.bookingRepository.UpdateStatus(ctx, bookingID, domain.BookingStatusFailed); err != nil {
		return errors.Wrap(err, "failed to mark booking failed")
	}
	return nil
}
