package events

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/stagepass/booking-system/shared/models"
)

var (
	ErrInvalidTopic    = errors.New("invalid topic")
	ErrInvalidReceiver = errors.New("receiver should be a pointer")
)

// Topic represents an event topic with pattern matching support
type Topic string

func NewTopic(topic string) (Topic, error) {
	if topic == "" {
		return "", ErrInvalidTopic
	}
	return Topic(topic), nil
}

func (t Topic) String() string {
	return string(t)
}

// Matches reports whether the topic matches the given pattern.
// "*" matches a single dot-separated segment, "#" matches any suffix.
func (t Topic) Matches(pattern Topic) bool {
	if pattern == "#" {
		return true
	}

	patternParts := strings.Split(pattern.String(), ".")
	topicParts := strings.Split(t.String(), ".")

	return matchPattern(patternParts, topicParts)
}

func matchPattern(patternParts, topicParts []string) bool {
	if len(patternParts) == 0 {
		return len(topicParts) == 0
	}

	if patternParts[0] == "#" {
		return true
	}

	if len(topicParts) == 0 {
		return false
	}

	if patternParts[0] == "*" || patternParts[0] == topicParts[0] {
		return matchPattern(patternParts[1:], topicParts[1:])
	}

	return false
}

// Metadata represents event metadata
type Metadata map[string]string

func (m Metadata) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Metadata) Set(key string, value string) {
	m[key] = value
}

func (m Metadata) Clone() Metadata {
	clone := Metadata{}
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Event represents a domain event on the booking workflow bus
type Event struct {
	ID            models.ID   `json:"id"`
	Topic         Topic       `json:"topic"`
	Data          interface{} `json:"data"`
	Metadata      Metadata    `json:"metadata"`
	Timestamp     time.Time   `json:"timestamp"`
	CorrelationID models.ID   `json:"correlation_id"`
}

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, events ...*Event) error
}

// Subscriber subscribes a handler to a topic pattern
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler EventHandler) error
}

// EventHandler handles domain events
type EventHandler interface {
	HandlerID() string
	Handle(ctx context.Context, event *Event) error
}

// EventHandlerFunc adapts a function to the EventHandler interface
type EventHandlerFunc struct {
	id string
	fn func(ctx context.Context, event *Event) error
}

func NewEventHandlerFunc(id string, fn func(ctx context.Context, event *Event) error) *EventHandlerFunc {
	return &EventHandlerFunc{id: id, fn: fn}
}

func (h *EventHandlerFunc) HandlerID() string {
	return h.id
}

func (h *EventHandlerFunc) Handle(ctx context.Context, event *Event) error {
	return h.fn(ctx, event)
}

// NewEvent creates a new domain event
func NewEvent(topic Topic, data interface{}) *Event {
	return &Event{
		ID:        models.GenerateUUID(),
		Topic:     topic,
		Data:      data,
		Metadata:  make(Metadata),
		Timestamp: time.Now(),
	}
}

// WithCorrelationID sets correlation ID
func (e *Event) WithCorrelationID(correlationID models.ID) *Event {
	e.CorrelationID = correlationID
	return e
}

// WithMetadata adds metadata
func (e *Event) WithMetadata(key string, value string) *Event {
	if e.Metadata == nil {
		e.Metadata = make(Metadata)
	}
	e.Metadata.Set(key, value)
	return e
}

// MarshalPayload marshals the event payload
func (e *Event) MarshalPayload() (json.RawMessage, error) {
	if b, ok := e.Data.([]byte); ok {
		return b, nil
	}

	if b, ok := e.Data.(json.RawMessage); ok {
		return b, nil
	}

	return json.Marshal(e.Data)
}

// UnmarshalPayload unmarshals the event payload into the given receiver
func (e *Event) UnmarshalPayload(v interface{}) error {
	raw, err := e.MarshalPayload()
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, v)
}

// Clone creates a copy of the event
func (e *Event) Clone() *Event {
	return &Event{
		ID:            e.ID,
		Topic:         e.Topic,
		Data:          e.Data,
		Metadata:      e.Metadata.Clone(),
		Timestamp:     e.Timestamp,
		CorrelationID: e.CorrelationID,
	}
}

// Booking workflow event catalog. The names are part of the wire contract
// with the payment and inventory services and must not change.
const (
	BookingInitializedEvent               = "BOOKING_INITIALIZED"
	TicketReservationRequestedEvent       = "TICKET_RESERVATION_REQUESTED"
	TicketReservationCompletedEvent       = "TICKET_RESERVATION_COMPLETED"
	BookingExpirationCheckEvent           = "BOOKING_EXPIRATION_CHECK"
	CancellationRequestedEvent            = "CANCELLATION_REQUESTED"
	ReservationCancellationRequestedEvent = "RESERVATION_CANCELLATION_REQUESTED"
	RefundRequestedEvent                  = "REFUND_REQUESTED"
	RefundCompletedEvent                  = "REFUND_COMPLETED"
	PaymentSuccessConfirmedEvent          = "PAYMENT_SUCCESS_CONFIRMED"
	PaymentFailureConfirmedEvent          = "PAYMENT_FAILURE_CONFIRMED"
	PaymentWebhookReceivedEvent           = "PAYMENT_WEBHOOK_RECEIVED"
)
