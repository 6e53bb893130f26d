package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// ConfirmReservation finalizes the seat allocation after the payment
// service confirms a successful payment.
type ConfirmReservation struct {
	inventory domain.InventoryGateway
	logger    *logrus.Logger
}

// NewConfirmReservation creates a new ConfirmReservation use case
func NewConfirmReservation(inventory domain.InventoryGateway, logger *logrus.Logger) *ConfirmReservation {
	return &ConfirmReservation{inventory: inventory, logger: logger}
}

// Execute confirms the reservation with the inventory service
func (uc *ConfirmReservation) Execute(ctx context.Context, payload *domain.PaymentSuccessConfirmedPayload) error {
	if err := uc.inventory.Confirm(ctx, payload.PerformanceID, payload.ReservationID, payload.Token); err != nil {
		return errors.Wrap(err, "failed to confirm reservation")
	}

	uc.logger.WithField("reservation_id", payload.ReservationID).Info("reservation confirmed")
	return nil
}
