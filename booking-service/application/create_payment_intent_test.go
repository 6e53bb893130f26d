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

func TestCreatePaymentIntent_Execute(t *testing.T) {
	payload := &domain.TicketReservationCompletedPayload{
		BookingID:     "b1",
		UserID:        "user-1",
		TotalAmount:   100,
		PaymentMethod: "credit_card",
		PerformanceID: 42,
		ReservationID: 7,
		Token:         "t",
	}

	t.Run("creates intent from reservation details", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)
		payment.EXPECT().CreateIntent(mock.Anything, mock.MatchedBy(func(intent *domain.PaymentIntentRequest) bool {
			return intent.BookingID == "b1" && intent.Amount == 100 && intent.ReservationID == 7
		}), "t").Return(nil).Once()

		uc := NewCreatePaymentIntent(repo, payment, testLogger())
		assert.NoError(t, uc.Execute(context.Background(), payload))
	})

	t.Run("intent failure compensates the booking", func(t *testing.T) {
		repo := mocks.NewMockBookingRepository(t)
		payment := mocks.NewMockPaymentGateway(t)
		payment.EXPECT().CreateIntent(mock.Anything, mock.Anything, "t").Return(errors.New("declined")).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(true, nil).Once()

		uc := NewCreatePaymentIntent(repo, payment, testLogger())
		assert.NoError(t, uc.Execute(context.Background(), payload))
	})
}
