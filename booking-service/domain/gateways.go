package domain

import (
	"context"
	"time"
)

// Performance is the remote performance record, of which only the seat price
// matters to the booking workflow.
type Performance struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

// Reservation references seats held by the inventory service.
type Reservation struct {
	ReservationID int64  `json:"reservationId"`
	Status        string `json:"status"`
}

// PaymentIntentRequest is the payload for creating a payment intent.
type PaymentIntentRequest struct {
	UserID        string `json:"userId"`
	BookingID     string `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod"`
	Amount        int64  `json:"amount"`
	PerformanceID int64  `json:"performanceId"`
	ReservationID int64  `json:"reservationId"`
}

// PaymentEvent is one entry of the payment service's settlement log, the
// authoritative source the reconciliation sweep derives status from.
type PaymentEvent struct {
	BookingID   string    `json:"bookingId"`
	EventType   string    `json:"eventType"`
	FinalStatus string    `json:"finalStatus"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Settlement event types reported by the payment service.
const (
	PaymentEventSuccess        = "PAYMENT_SUCCESS"
	PaymentEventRefundSuccess  = "REFUND_SUCCESS"
	PaymentEventIntentCanceled = "INTENT_CANCELLED"
	PaymentEventFailure        = "PAYMENT_FAILURE"
)

// StatusFromPaymentEvent maps a settlement (eventType, finalStatus) pair to
// the booking status it implies. Unknown pairs map to nothing.
func StatusFromPaymentEvent(eventType, finalStatus string) (BookingStatus, bool) {
	switch {
	case eventType == PaymentEventSuccess && finalStatus == "SUCCESS":
		return BookingStatusPaid, true
	case eventType == PaymentEventRefundSuccess && finalStatus == "REFUNDED":
		return BookingStatusRefunded, true
	case eventType == PaymentEventIntentCanceled && finalStatus == "CANCELLED":
		return BookingStatusCancelled, true
	case eventType == PaymentEventFailure && finalStatus == "FAILURE":
		return BookingStatusFailed, true
	}
	return "", false
}

// InventoryGateway is the client contract for the performance/inventory
// service.
type InventoryGateway interface {
	GetPerformance(ctx context.Context, performanceID int64, token string) (*Performance, error)
	Reserve(ctx context.Context, performanceID int64, seatCount int, token string) (*Reservation, error)
	Confirm(ctx context.Context, performanceID, reservationID int64, token string) error
	Cancel(ctx context.Context, performanceID, reservationID int64, token string) error
	Refund(ctx context.Context, performanceID, reservationID int64, token string) error
}

// PaymentGateway is the client contract for the payment service.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, intent *PaymentIntentRequest, token string) error
	Refund(ctx context.Context, bookingID, token string) error
	CancelIntent(ctx context.Context, bookingID, token string) error
	ListEvents(ctx context.Context, start, end time.Time) ([]PaymentEvent, error)
}
