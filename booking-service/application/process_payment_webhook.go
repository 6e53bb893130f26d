package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
)

// ProcessPaymentWebhook reacts to payment outcomes reported by the payment
// service. Webhooks may arrive out of order and more than once; the status
// skip rules make every branch idempotent, and a FAILURE webhook can never
// regress a booking that is already PAID.
type ProcessPaymentWebhook struct {
	bookingRepository domain.BookingRepository
	eventPublisher    events.Publisher
	logger            *logrus.Logger
}

// NewProcessPaymentWebhook creates a new ProcessPaymentWebhook use case
func NewProcessPaymentWebhook(
	bookingRepository domain.BookingRepository,
	eventPublisher events.Publisher,
	logger *logrus.Logger,
) *ProcessPaymentWebhook {
	return &ProcessPaymentWebhook{
		bookingRepository: bookingRepository,
		eventPublisher:    eventPublisher,
		logger:            logger,
	}
}

// Execute executes the webhook processing step
func (uc *ProcessPaymentWebhook) Execute(ctx context.Context, payload *domain.PaymentWebhookReceivedPayload) error {
	log := uc.logger.WithFields(logrus.Fields{
		"booking_id": payload.BookingID,
		"status":     string(payload.Status),
	})

	booking, err := uc.bookingRepository.FindByID(ctx, payload.BookingID)
	if err != nil {
		return errors.Wrap(err, "failed to load booking")
	}
	if booking == nil {
		log.Error("booking not found for webhook processing")
		return nil
	}

	switch payload.Status {
	case domain.WebhookStatusSuccess:
		applied, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusPaid)
		if err != nil {
			return errors.Wrap(err, "failed to mark booking paid")
		}
		if !applied {
			log.Info("booking already settled, skipping")
			return nil
		}
		if booking.HasReservation() {
			event := events.NewEvent(events.PaymentSuccessConfirmedEvent, &domain.PaymentSuccessConfirmedPayload{
				BookingID:     booking.ID,
				PerformanceID: booking.PerformanceID,
				ReservationID: *booking.ReservationID,
				Token:         payload.Token,
			})
			if err := uc.eventPublisher.Publish(ctx, event); err != nil {
				return errors.Wrap(err, "failed to publish payment success confirmation")
			}
		}
		log.Info("booking confirmed as PAID")

	case domain.WebhookStatusFailure:
		applied, err := uc.bookingRepository.UpdateStatus(ctx, payload.BookingID, domain.BookingStatusFailed)
		if err != nil {
			return errors.Wrap(err, "failed to mark booking failed")
		}
		if !applied {
			log.Info("failure webhook skipped by status rules")
			return nil
		}
		if booking.HasReservation() {
			event := events.NewEvent(events.PaymentFailureConfirmedEvent, &domain.PaymentFailureConfirmedPayload{
				PerformanceID: booking.PerformanceID,
				ReservationID: *booking.ReservationID,
				Token:         payload.Token,
			})
			if err := uc.eventPublisher.Publish(ctx, event); err != nil {
				return errors.Wrap(err, "failed to publish payment failure confirmation")
			}
		}
		log.Info("booking marked FAILED")

	case domain.WebhookStatusRefunded:
		if booking.Status == domain.BookingStatusRefunded {
			log.Info("booking already REFUNDED, skipping")
			return nil
		}
		event := events.NewEvent(events.RefundCompletedEvent, &domain.RefundCompletedPayload{
			BookingID: payload.BookingID,
			Token:     payload.Token,
		})
		if err := uc.eventPublisher.Publish(ctx, event); err != nil {
			return errors.Wrap(err, "failed to publish refund completed")
		}

	default:
		log.Warn("unknown webhook status, ignoring")
	}

	return nil
}
