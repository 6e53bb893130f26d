package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
)

// ReserveTickets asks the inventory service to hold seats and records the
// reservation id on the booking. A reservation failure compensates by
// marking the booking FAILED; no completion event is ever published then.
type ReserveTickets struct {
	bookingRepository domain.BookingRepository
	inventory         domain.InventoryGateway
	eventPublisher    events.Publisher
	logger            *logrus.Logger
}

// NewReserveTickets creates a new ReserveTickets use case
func NewReserveTickets(
	bookingRepository domain.BookingRepository,
	inventory domain.InventoryGateway,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *ReserveTickets {
	return &ReserveTickets{
		bookingRepository: bookingRepository,
		inventory:         inventory,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute executes the ticket reservation step
func (uc *ReserveTickets) Execute(ctx context.Context, payload *domain.TicketReservationRequestedPayload) error {
	log := uc.logger.WithField("booking_id", payload.BookingID)

	reservation, err := uc.inventory.Reserve(ctx, payload.PerformanceID, payload.Quantity, payload.Token)
	if err != nil {
		log.WithError(err).Error("failed to reserve tickets, failing booking")
		if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusFailed); err != nil {
			return errors.Wrap(err, "failed to mark booking failed")
		}
		return nil
	}

	if err := uc.bookingRepository.UpdateReservationID(ctx, payload.BookingID, reservation.ReservationID); err != nil {
		log.WithError(err).Error("failed to persist reservation id, failing booking")
		if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusFailed); err != nil {
			return errors.Wrap(err, "failed to mark booking failed")
		}
		return nil
	}

	event := events.NewEvent(events.TicketReservationCompletedEvent, &domain.TicketReservationCompletedPayload{
		BookingID:     payload.BookingID,
		UserID:        payload.UserID,
		TotalAmount:   payload.TotalAmount,
		PaymentMethod: payload.PaymentMethod,
		PerformanceID: payload.PerformanceID,
		ReservationID: reservation.ReservationID,
		Token:         payload.Token,
	})
	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish reservation completed")
	}

	log.WithField("reservation_id", reservation.ReservationID).Info("tickets reserved")
	return nil
}
