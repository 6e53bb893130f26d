package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShouldSkipStatusWrite(t *testing.T) {
	tests := []struct {
		name    string
		current BookingStatus
		desired BookingStatus
		skip    bool
	}{
		{"refunded is terminal against paid", BookingStatusRefunded, BookingStatusPaid, true},
		{"refunded is terminal against failed", BookingStatusRefunded, BookingStatusFailed, true},
		{"refunded is terminal against cancelled", BookingStatusRefunded, BookingStatusCancelled, true},
		{"paid never regresses to failed", BookingStatusPaid, BookingStatusFailed, true},
		{"same status is a no-op", BookingStatusPending, BookingStatusPending, true},
		{"pending to paid applies", BookingStatusPending, BookingStatusPaid, false},
		{"pending to failed applies", BookingStatusPending, BookingStatusFailed, false},
		{"pending to cancelled applies", BookingStatusPending, BookingStatusCancelled, false},
		{"paid to refunded applies", BookingStatusPaid, BookingStatusRefunded, false},
		{"failed to paid applies", BookingStatusFailed, BookingStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.skip, ShouldSkipStatusWrite(tt.current, tt.desired))
		})
	}
}

func TestNewBooking(t *testing.T) {
	booking := NewBooking("user-1", 42, 2, "credit_card")

	assert.Equal(t, BookingStatusPending, booking.Status)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, int64(42), booking.PerformanceID)
	assert.Equal(t, 2, booking.Quantity)
	assert.Nil(t, booking.ReservationID)
	assert.False(t, booking.HasReservation())
	assert.False(t, booking.Timestamps.CreatedAt.IsZero())
}

func TestGenerateBookingID(t *testing.T) {
	at := time.Date(2025, 3, 14, 15, 9, 26, 535_000_000, time.UTC)

	id := generateBookingID(42, "user-1", at)

	assert.Equal(t, "42-user-1-20250314150926535", id)
	assert.Regexp(t, regexp.MustCompile(`^\d+-.+-\d{17}$`), id)
}

func TestStatusFromPaymentEvent(t *testing.T) {
	tests := []struct {
		name        string
		eventType   string
		finalStatus string
		want        BookingStatus
		ok          bool
	}{
		{"payment success", PaymentEventSuccess, "SUCCESS", BookingStatusPaid, true},
		{"refund success", PaymentEventRefundSuccess, "REFUNDED", BookingStatusRefunded, true},
		{"intent cancelled", PaymentEventIntentCanceled, "CANCELLED", BookingStatusCancelled, true},
		{"payment failure", PaymentEventFailure, "FAILURE", BookingStatusFailed, true},
		{"mismatched final status", PaymentEventSuccess, "FAILURE", "", false},
		{"unknown event type", "SOMETHING_ELSE", "SUCCESS", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StatusFromPaymentEvent(tt.eventType, tt.finalStatus)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_HasReservation(t *testing.T) {
	booking := NewBooking("user-1", 1, 1, "wallet")
	assert.False(t, booking.HasReservation())

	reservationID := int64(7)
	booking.ReservationID = &reservationID
	assert.True(t, booking.HasReservation())
}
