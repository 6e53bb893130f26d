package domain

// Typed payloads for the booking workflow events, one variant per catalog
// entry. Producers inside this service use these structs; the bus still
// validates required fields at the trust boundary for payloads arriving as
// raw JSON (webhook ingress, distributed transport).

// WebhookStatus is the outcome reported by the payment service webhook.
type WebhookStatus string

const (
	WebhookStatusSuccess  WebhookStatus = "SUCCESS"
	WebhookStatusFailure  WebhookStatus = "FAILURE"
	WebhookStatusRefunded WebhookStatus = "REFUNDED"
)

type BookingInitializedPayload struct {
	BookingID     string `json:"bookingId"`
	PerformanceID int64  `json:"performanceId"`
	Quantity      int    `json:"quantity"`
	Token         string `json:"token"`
}

type TicketReservationRequestedPayload struct {
	BookingID     string `json:"bookingId"`
	PerformanceID int64  `json:"performanceId"`
	Quantity      int    `json:"quantity"`
	UserID        string `json:"userId"`
	PaymentMethod string `json:"paymentMethod"`
	TotalAmount   int64  `json:"totalAmount"`
	Token         string `json:"token"`
}

type TicketReservationCompletedPayload struct {
	BookingID     string `json:"bookingId"`
	UserID        string `json:"userId"`
	TotalAmount   int64  `json:"totalAmount"`
	PaymentMethod string `json:"paymentMethod"`
	PerformanceID int64  `json:"performanceId"`
	ReservationID int64  `json:"reservationId"`
	Token         string `json:"token"`
}

type BookingExpirationCheckPayload struct {
	BookingID string `json:"bookingId"`
	Token     string `json:"token"`
}

type CancellationRequestedPayload struct {
	BookingID     string `json:"bookingId"`
	PerformanceID int64  `json:"performanceId"`
	ReservationID *int64 `json:"reservationId"`
	Token         string `json:"token"`
}

type ReservationCancellationRequestedPayload struct {
	PerformanceID int64  `json:"performanceId"`
	ReservationID int64  `json:"reservationId"`
	Token         string `json:"token"`
}

type RefundRequestedPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Token     string `json:"token"`
}

type RefundCompletedPayload struct {
	BookingID string `json:"bookingId"`
	Token     string `json:"token"`
}

type PaymentSuccessConfirmedPayload struct {
	BookingID     string `json:"bookingId"`
	PerformanceID int64  `json:"performanceId"`
	ReservationID int64  `json:"reservationId"`
	Token         string `json:"token"`
}

type PaymentFailureConfirmedPayload struct {
	PerformanceID int64  `json:"performanceId"`
	ReservationID int64  `json:"reservationId"`
	Token         string `json:"token"`
}

type PaymentWebhookReceivedPayload struct {
	BookingID string        `json:"bookingId"`
	Status    WebhookStatus `json:"status"`
	Token     string        `json:"token"`
}
