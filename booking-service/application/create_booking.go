package application

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/apperrors"
	"github.com/stagepass/booking-system/shared/events"
)

// ExpirationScheduler schedules the one-shot expiration check for a booking.
type ExpirationScheduler interface {
	Schedule(bookingID, token string)
}

// CreateBookingCommand represents the command to create a booking
type CreateBookingCommand struct {
	UserID        string `json:"userId"`
	PerformanceID int64  `json:"performanceId"`
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"paymentMethod"`
	Token         string `json:"token"`
}

// CreateBookingResponse represents the response after creating a booking
type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
}

// CreateBooking creates a PENDING booking and kicks off the workflow by
// publishing BOOKING_INITIALIZED.
type CreateBooking struct {
	bookingRepository domain.BookingRepository
	eventPublisher    events.Publisher
	expiration        ExpirationScheduler
	ticketLimit       int
	logger            *logrus.Logger
}

// NewCreateBooking creates a new CreateBooking use case
func NewCreateBooking(
	bookingRepository domain.BookingRepository,
	eventPublisher events.Publisher,
	expiration ExpirationScheduler,
	ticketLimit int,
	logger *logrus.Logger,
) *CreateBooking {
	if ticketLimit <= 0 {
		ticketLimit = domain.MaxTicketsPerUser
	}
	return &CreateBooking{
		bookingRepository: bookingRepository,
		eventPublisher:    eventPublisher,
		expiration:        expiration,
		ticketLimit:       ticketLimit,
		logger:            logger,
	}
}

// Execute executes the create booking use case
func (uc *CreateBooking) Execute(ctx context.Context, cmd *CreateBookingCommand) (*CreateBookingResponse, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.bookingRepository.CountActiveTickets(ctx, cmd.UserID, cmd.PerformanceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active tickets")
	}

	if existing+cmd.Quantity > uc.ticketLimit {
		return nil, apperrors.NewConflict(fmt.Sprintf(
			"You cannot book more than %d tickets. Already booked: %d.", uc.ticketLimit, existing,
		))
	}

	booking := domain.NewBooking(cmd.UserID, cmd.PerformanceID, cmd.Quantity, cmd.PaymentMethod)
	if err := uc.bookingRepository.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	uc.expiration.Schedule(booking.ID, cmd.Token)

	event := events.NewEvent(events.BookingInitializedEvent, &domain.BookingInitializedPayload{
		BookingID:     booking.ID,
		PerformanceID: cmd.PerformanceID,
		Quantity:      cmd.Quantity,
		Token:         cmd.Token,
	})
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish booking initialized event")
	}

	uc.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    cmd.UserID,
	}).Info("booking created")

	return &CreateBookingResponse{BookingID: booking.ID}, nil
}

func (uc *CreateBooking) validateCommand(cmd *CreateBookingCommand) error {
	if cmd.UserID == "" {
		return apperrors.NewUnauthorized("User identification is missing.")
	}
	if cmd.Token == "" {
		return apperrors.NewUnauthorized("Authorization token is missing.")
	}
	if cmd.PerformanceID == 0 || cmd.Quantity <= 0 || cmd.PaymentMethod == "" {
		return apperrors.NewBadRequest("performanceId, quantity, and paymentMethod are required.")
	}
	return nil
}
