package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		pattern string
		matches bool
	}{
		{"exact match", "BOOKING_INITIALIZED", "BOOKING_INITIALIZED", true},
		{"exact mismatch", "BOOKING_INITIALIZED", "REFUND_REQUESTED", false},
		{"hash matches everything", "BOOKING_INITIALIZED", "#", true},
		{"star matches single segment", "booking.created", "booking.*", true},
		{"star does not span segments", "booking.created.v2", "booking.*", false},
		{"hash suffix matches deep topics", "booking.created.v2", "booking.#", true},
		{"segment mismatch", "payment.created", "booking.*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, Topic(tt.topic).Matches(Topic(tt.pattern)))
		})
	}
}

func TestNewTopic_Empty(t *testing.T) {
	_, err := NewTopic("")
	assert.ErrorIs(t, err, ErrInvalidTopic)
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(BookingInitializedEvent, map[string]string{"bookingId": "b1"})

	assert.False(t, event.ID.IsEmpty())
	assert.Equal(t, Topic(BookingInitializedEvent), event.Topic)
	assert.False(t, event.Timestamp.IsZero())
	assert.True(t, event.CorrelationID.IsEmpty())
}

func TestEvent_UnmarshalPayload(t *testing.T) {
	type payload struct {
		BookingID string `json:"bookingId"`
		Quantity  int    `json:"quantity"`
	}

	event := NewEvent(BookingInitializedEvent, &payload{BookingID: "42-u1-20250101", Quantity: 2})

	var decoded payload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, "42-u1-20250101", decoded.BookingID)
	assert.Equal(t, 2, decoded.Quantity)
}

func TestEvent_UnmarshalPayload_RawBytes(t *testing.T) {
	event := NewEvent(RefundCompletedEvent, []byte(`{"bookingId":"b1","token":"t"}`))

	var decoded map[string]string
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, "b1", decoded["bookingId"])
}

func TestEvent_Clone_IsolatesMetadata(t *testing.T) {
	event := NewEvent(RefundRequestedEvent, nil).WithMetadata("source", "api")

	clone := event.Clone()
	clone.Metadata.Set("source", "sweep")

	source, _ := event.Metadata.Get("source")
	assert.Equal(t, "api", source)
}
