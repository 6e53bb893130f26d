package application

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/booking-service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileBookings_Execute(t *testing.T) {
	now := time.Now()

	t.Run("latest settlement per booking wins", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]domain.PaymentEvent{
			{BookingID: "b1", EventType: domain.PaymentEventSuccess, FinalStatus: "SUCCESS", CreatedAt: now.Add(-time.Hour)},
			{BookingID: "b1", EventType: domain.PaymentEventRefundSuccess, FinalStatus: "REFUNDED", CreatedAt: now.Add(-30 * time.Minute)},
			{BookingID: "b2", EventType: domain.PaymentEventFailure, FinalStatus: "FAILURE", CreatedAt: now.Add(-2 * time.Hour)},
		}, nil).Once()

		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusRefunded).Return(true, nil).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "b2", domain.BookingStatusFailed).Return(true, nil).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		require.NoError(t, uc.Execute(context.Background()))
	})

	t.Run("skipped writes do not fail the sweep", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]domain.PaymentEvent{
			{BookingID: "b1", EventType: domain.PaymentEventFailure, FinalStatus: "FAILURE", CreatedAt: now},
		}, nil).Once()

		// Guarded write refuses the regression; the sweep carries on.
		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(false, nil).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		require.NoError(t, uc.Execute(context.Background()))
	})

	t.Run("one booking's failure does not abort others", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]domain.PaymentEvent{
			{BookingID: "b1", EventType: domain.PaymentEventSuccess, FinalStatus: "SUCCESS", CreatedAt: now},
			{BookingID: "b2", EventType: domain.PaymentEventSuccess, FinalStatus: "SUCCESS", CreatedAt: now},
		}, nil).Once()

		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPaid).Return(false, errors.New("db down")).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "b2", domain.BookingStatusPaid).Return(true, nil).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		require.NoError(t, uc.Execute(context.Background()))
	})

	t.Run("unknown settlement types are ignored", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).Return([]domain.PaymentEvent{
			{BookingID: "b1", EventType: "AUDIT_NOTE", FinalStatus: "N/A", CreatedAt: now},
		}, nil).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		require.NoError(t, uc.Execute(context.Background()))
	})

	t.Run("settlement log failure surfaces", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("payment service down")).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		assert.ErrorContains(t, uc.Execute(context.Background()), "failed to list payment events")
	})

	t.Run("window excludes in-flight webhooks", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)

		payment.EXPECT().ListEvents(mock.Anything, mock.Anything, mock.Anything).
			Run(func(_ context.Context, start, end time.Time) {
				assert.WithinDuration(t, time.Now().Add(-24*time.Hour), start, time.Minute)
				assert.WithinDuration(t, time.Now().Add(-10*time.Minute), end, time.Minute)
			}).
			Return(nil, nil).Once()

		uc := NewReconcileBookings(repo, payment, testLogger())
		require.NoError(t, uc.Execute(context.Background()))
	})
}

func TestLatestEventPerBooking(t *testing.T) {
	now := time.Now()
	settlements := []domain.PaymentEvent{
		{BookingID: "b1", EventType: domain.PaymentEventSuccess, CreatedAt: now.Add(-2 * time.Hour)},
		{BookingID: "b1", EventType: domain.PaymentEventRefundSuccess, CreatedAt: now.Add(-time.Hour)},
		{BookingID: "b2", EventType: domain.PaymentEventFailure, CreatedAt: now},
	}

	latest := latestEventPerBooking(settlements)

	require.Len(t, latest, 2)
	assert.Equal(t, domain.PaymentEventRefundSuccess, latest["b1"].EventType)
	assert.Equal(t, domain.PaymentEventFailure, latest["b2"].EventType)
}
