package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/booking-service/mocks"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestExpireBooking_Execute(t *testing.T) {
	payload := &domain.BookingExpirationCheckPayload{BookingID: "b1", Token: "t"}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockBookingRepository, *mocks.MockPaymentGateway, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name: "pending booking with reservation is expired",
			setupMocks: func(repo *mocks.MockBookingRepository, payment *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				payment.EXPECT().CancelIntent(mock.Anything, "b1", "t").Return(nil).Once()
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPending), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(true, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic.String() == events.ReservationCancellationRequestedEvent
				})).Return(nil).Once()
			},
		},
		{
			name: "pending booking without reservation fails quietly",
			setupMocks: func(repo *mocks.MockBookingRepository, payment *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				payment.EXPECT().CancelIntent(mock.Anything, "b1", "t").Return(nil).Once()
				repo.EXPECT().FindByID(mock.Anything, "b1").
					Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(true, nil).Once()
			},
		},
		{
			name: "paid booking is left alone",
			setupMocks: func(repo *mocks.MockBookingRepository, payment *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				payment.EXPECT().CancelIntent(mock.Anything, "b1", "t").Return(nil).Once()
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
			},
		},
		{
			name: "missing booking is a no-op",
			setupMocks: func(repo *mocks.MockBookingRepository, payment *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				payment.EXPECT().CancelIntent(mock.Anything, "b1", "t").Return(nil).Once()
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(nil, nil).Once()
			},
		},
		{
			name: "intent cancellation failure is retryable",
			setupMocks: func(repo *mocks.MockBookingRepository, payment *mocks.MockPaymentGateway, publisher *mocks.MockPublisher) {
				payment.EXPECT().CancelIntent(mock.Anything, "b1", "t").Return(errors.New("timeout")).Once()
			},
			expectedError: "failed to cancel payment intent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBookingRepository(t)
			payment := mocks.NewMockPaymentGateway(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, payment, publisher)

			uc := NewExpireBooking(repo, payment, publisher, testLogger())
			err := uc.Execute(context.Background(), payload)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
