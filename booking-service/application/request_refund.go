package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// RequestRefund asks the payment service to return the money for a PAID
// booking. Seats and booking status are only touched once the payment
// service reports the refund as completed.
type RequestRefund struct {
	payment domain.PaymentGateway
	logger  *logrus.Logger
}

// NewRequestRefund creates a new RequestRefund use case
func NewRequestRefund(payment domain.PaymentGateway, logger *logrus.Logger) *RequestRefund {
	return &RequestRefund{payment: payment, logger: logger}
}

// Execute requests the refund from the payment service
func (uc *RequestRefund) Execute(ctx context.Context, payload *domain.RefundRequestedPayload) error {
	if err := uc.payment.Refund(ctx, payload.BookingID, payload.Token); err != nil {
		return errors.Wrap(err, "failed to request refund")
	}

	uc.logger.WithField("booking_id", payload.BookingID).Info("refund requested")
	return nil
}
