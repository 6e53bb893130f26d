package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// CreatePaymentIntent asks the payment service to open a payment intent for
// a reserved booking. An intent failure compensates by marking the booking
// FAILED.
type CreatePaymentIntent struct {
	bookingRepository domain.BookingRepository
	payment           domain.PaymentGateway
	logger            *logrus.Logger
}

// NewCreatePaymentIntent creates a new CreatePaymentIntent use case
func NewCreatePaymentIntent(
	bookingRepository domain.BookingRepository,
	payment domain.PaymentGateway,
	logger *logrus.Logger,
) *CreatePaymentIntent {
	return &CreatePaymentIntent{
		bookingRepository: bookingRepository,
		payment:           payment,
		logger:            logger,
	}
}

// Execute executes the payment intent creation step
func (uc *CreatePaymentIntent) Execute(ctx context.Context, payload *domain.TicketReservationCompletedPayload) error {
	log := uc.logger.WithField("booking_id", payload.BookingID)

	intent := &domain.PaymentIntentRequest{
		UserID:        payload.UserID,
		BookingID:     payload.BookingID,
		PaymentMethod: payload.PaymentMethod,
		Amount:        payload.TotalAmount,
		PerformanceID: payload.PerformanceID,
		ReservationID: payload.ReservationID,
	}

	if err := uc.payment.CreateIntent(ctx, intent, payload.Token); err != nil {
		log.WithError(err).Error("failed to create payment intent, failing booking")
		if _, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusFailed); err != nil {
			return errors.Wrap(err, "failed to mark booking failed")
		}
		return nil
	}

	log.Info("payment intent created")
	return nil
}
