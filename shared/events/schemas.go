package events

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/shared/apperrors"
)

// Schema lists the payload fields an event must carry.
type Schema struct {
	Required []string
}

// schemas is the static catalog of event payload shapes. Events published
// with a topic absent from this catalog are delivered unvalidated; the bus
// logs them so new producers surface in monitoring before a schema lands.
var schemas = map[string]Schema{
	BookingInitializedEvent: {
		Required: []string{"bookingId", "performanceId", "quantity", "token"},
	},
	TicketReservationRequestedEvent: {
		Required: []string{"bookingId", "performanceId", "quantity", "userId", "paymentMethod", "totalAmount", "token"},
	},
	TicketReservationCompletedEvent: {
		Required: []string{"bookingId", "userId", "totalAmount", "paymentMethod", "performanceId", "reservationId", "token"},
	},
	BookingExpirationCheckEvent: {
		Required: []string{"bookingId", "token"},
	},
	// reservationId is nullable here: cancellation may arrive before the
	// inventory reservation ever succeeded.
	CancellationRequestedEvent: {
		Required: []string{"bookingId", "performanceId", "token"},
	},
	ReservationCancellationRequestedEvent: {
		Required: []string{"performanceId", "reservationId", "token"},
	},
	RefundRequestedEvent: {
		Required: []string{"bookingId", "userId", "token"},
	},
	RefundCompletedEvent: {
		Required: []string{"bookingId", "token"},
	},
	PaymentSuccessConfirmedEvent: {
		Required: []string{"bookingId", "performanceId", "reservationId", "token"},
	},
	PaymentFailureConfirmedEvent: {
		Required: []string{"performanceId", "reservationId", "token"},
	},
	PaymentWebhookReceivedEvent: {
		Required: []string{"bookingId", "status", "token"},
	},
}

// SchemaFor returns the registered schema for a topic, if any.
func SchemaFor(topic string) (Schema, bool) {
	s, ok := schemas[topic]
	return s, ok
}

// ValidatePayload checks the payload against the schema registered for the
// topic. A missing schema is not an error; the caller decides how to treat
// unvalidated events.
func ValidatePayload(topic string, payload interface{}) error {
	schema, ok := schemas[topic]
	if !ok {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal payload for validation")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return apperrors.NewValidationError(topic, "payload is not an object")
	}

	for _, name := range schema.Required {
		value, present := fields[name]
		if !present {
			return apperrors.NewValidationError(topic, "missing required field "+name)
		}
		if string(value) == "null" || string(value) == `""` {
			return apperrors.NewValidationError(topic, "required field "+name+" is empty")
		}
	}

	return nil
}
