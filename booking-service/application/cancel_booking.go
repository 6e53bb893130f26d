package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/apperrors"
	"github.com/stagepass/booking-system/shared/events"
)

// CancelBookingCommand represents a user-initiated cancellation
type CancelBookingCommand struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	Token     string `json:"token"`
}

// CancelBookingResponse carries the acknowledgement message
type CancelBookingResponse struct {
	Message string `json:"message"`
}

// CancelBooking starts the cancellation or refund flow depending on the
// booking's current status. A PENDING booking is cancelled outright; a PAID
// booking gets a refund request, and its status only changes once the
// payment service confirms the refund.
type CancelBooking struct {
	bookingRepository domain.BookingRepository
	eventPublisher    events.Publisher
	logger            *logrus.Logger
}

// NewCancelBooking creates a new CancelBooking use case
func NewCancelBooking(
	bookingRepository domain.BookingRepository,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *CancelBooking {
	return &CancelBooking{
		bookingRepository: bookingRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute executes the cancel booking use case
func (uc *CancelBooking) Execute(ctx context.Context, cmd *CancelBookingCommand) (*CancelBookingResponse, error) {
	booking, err := uc.bookingRepository.FindByID(ctx, cmd.BookingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booking")
	}
	if booking == nil {
		return nil, apperrors.NewNotFound("Booking not found.")
	}
	if booking.UserID != cmd.UserID {
		return nil, apperrors.NewUnauthorized("Booking not owned by user.")
	}

	switch booking.Status {
	case domain.BookingStatusPending:
		event := events.NewEvent(events.CancellationRequestedEvent, &domain.CancellationRequestedPayload{
			BookingID:     booking.ID,
			PerformanceID: booking.PerformanceID,
			ReservationID: booking.ReservationID,
			Token:         cmd.Token,
		})
		if err := uc.eventPublisher.Publish(ctx, event); err != nil {
			return nil, errors.Wrap(err, "failed to publish cancellation request")
		}
		return &CancelBookingResponse{Message: "Booking cancellation process initiated."}, nil

	case domain.BookingStatusPaid:
		uc.logger.WithField("booking_id", booking.ID).Info("initiating refund")

		event := events.NewEvent(events.RefundRequestedEvent, &domain.RefundRequestedPayload{
			BookingID: booking.ID,
			UserID:    cmd.UserID,
			Token:     cmd.Token,
		})
		if err := uc.eventPublisher.Publish(ctx, event); err != nil {
			return nil, errors.Wrap(err, "failed to publish refund request")
		}
		return &CancelBookingResponse{Message: "Refund process initiated."}, nil
	}

	return nil, apperrors.NewBadRequest("Booking cannot be cancelled in current status.")
}
