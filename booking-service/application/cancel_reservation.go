package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

// CancelReservation releases seats held by the inventory service. It backs
// both RESERVATION_CANCELLATION_REQUESTED (expiration, user cancel) and
// PAYMENT_FAILURE_CONFIRMED (payment failed after seats were held).
type CancelReservation struct {
	inventory domain.InventoryGateway
	logger    *logrus.Logger
}

// NewCancelReservation creates a new CancelReservation use case
func NewCancelReservation(inventory domain.InventoryGateway, logger *logrus.Logger) *CancelReservation {
	return &CancelReservation{inventory: inventory, logger: logger}
}

// Execute cancels the reservation with the inventory service
func (uc *CancelReservation) Execute(ctx context.Context, performanceID, reservationID int64, token string) error {
	if err := uc.inventory.Cancel(ctx, performanceID, reservationID, token); err != nil {
		return errors.Wrap(err, "failed to cancel reservation")
	}

	uc.logger.WithField("reservation_id", reservationID).Info("reservation cancelled")
	return nil
}
