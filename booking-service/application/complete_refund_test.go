package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/booking-service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCompleteRefund_Execute(t *testing.T) {
	payload := &domain.RefundCompletedPayload{BookingID: "b1", Token: "t"}

	t.Run("returns seats and marks refunded", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		inventory := mocks.NewMockInventoryGateway(t)

		repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
		inventory.EXPECT().Refund(mock.Anything, int64(42), int64(7), "t").Return(nil).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusRefunded).Return(true, nil).Once()

		uc := NewCompleteRefund(repo, inventory, testLogger())
		assert.NoError(t, uc.Execute(context.Background(), payload))
	})

	t.Run("refunds bookings without reservation", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		inventory := mocks.NewMockInventoryGateway(t)

		repo.EXPECT().FindByID(mock.Anything, "b1").
			Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPaid}, nil).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusRefunded).Return(true, nil).Once()

		uc := NewCompleteRefund(repo, inventory, testLogger())
		assert.NoError(t, uc.Execute(context.Background(), payload))
	})

	t.Run("seat return failure is retryable", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		inventory := mocks.NewMockInventoryGateway(t)

		repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
		inventory.EXPECT().Refund(mock.Anything, int64(42), int64(7), "t").Return(errors.New("inventory down")).Once()

		uc := NewCompleteRefund(repo, inventory, testLogger())
		assert.ErrorContains(t, uc.Execute(context.Background(), payload), "failed to return seats")
	})

	t.Run("missing booking is an error", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		inventory := mocks.NewMockInventoryGateway(t)

		repo.EXPECT().FindByID(mock.Anything, "b1").Return(nil, nil).Once()

		uc := NewCompleteRefund(repo, inventory, testLogger())
		assert.Error(t, uc.Execute(context.Background(), payload))
	})
}
