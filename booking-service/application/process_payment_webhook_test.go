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

func bookingWithReservation(id string, status domain.BookingStatus) *domain.Booking {
	reservationID := int64(7)
	return &domain.Booking{
		ID:            id,
		UserID:        "user-1",
		PerformanceID: 42,
		Quantity:      2,
		Status:        status,
		ReservationID: &reservationID,
	}
}

func TestProcessPaymentWebhook_Execute(t *testing.T) {
	tests := []struct {
		name          string
		payload       *domain.PaymentWebhookReceivedPayload
		setupMocks    func(*mocks.MockBookingRepository, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "success webhook marks booking paid and confirms reservation",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusSuccess, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPending), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPaid).Return(true, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic.String() == events.PaymentSuccessConfirmedEvent
				})).Return(nil).Once()
			},
		},
		{
			name:    "duplicate success webhook is skipped",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusSuccess, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPaid).Return(false, nil).Once()
			},
		},
		{
			name:    "failure webhook after paid is rejected by status rules",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusFailure, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(false, nil).Once()
			},
		},
		{
			name:    "failure webhook releases held seats",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusFailure, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPending), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusFailed).Return(true, nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic.String() == events.PaymentFailureConfirmedEvent
				})).Return(nil).Once()
			},
		},
		{
			name:    "refunded webhook triggers refund completion",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusRefunded, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPaid), nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.Topic.String() == events.RefundCompletedEvent
				})).Return(nil).Once()
			},
		},
		{
			name:    "refunded webhook on refunded booking is a no-op",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusRefunded, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusRefunded), nil).Once()
			},
		},
		{
			name:    "unknown booking is ignored",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "missing", Status: domain.WebhookStatusSuccess, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, nil).Once()
			},
		},
		{
			name:    "unknown status is ignored",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: "WEIRD", Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPending), nil).Once()
			},
		},
		{
			name:    "status write failure is retryable",
			payload: &domain.PaymentWebhookReceivedPayload{BookingID: "b1", Status: domain.WebhookStatusSuccess, Token: "t"},
			setupMocks: func(repo *mocks.MockBookingRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, "b1").Return(bookingWithReservation("b1", domain.BookingStatusPending), nil).Once()
				repo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPaid).Return(false, errors.New("db down")).Once()
			},
			expectedError: "failed to mark booking paid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBookingRepository(t)
			publisher := mocks.NewMockPublisher(t)
			tt.setupMocks(repo, publisher)

			uc := NewProcessPaymentWebhook(repo, publisher, testLogger())
			err := uc.Execute(context.Background(), tt.payload)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
