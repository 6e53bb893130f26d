package handlers

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/application"
	"github.com/stagepass/booking-system/booking-service/domain"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stagepass/booking-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// BookingEventHandlers routes workflow events to their use cases. One
// dispatcher instance subscribes to every catalog topic; the PAID status
// write runs on its own subscription so confirming the reservation and
// recording the payment cannot fail each other.
type BookingEventHandlers struct {
	initializeBooking   *application.InitializeBooking
	reserveTickets      *application.ReserveTickets
	createPaymentIntent *application.CreatePaymentIntent
	expireBooking       *application.ExpireBooking
	processCancellation *application.ProcessCancellation
	cancelReservation   *application.CancelReservation
	confirmReservation  *application.ConfirmReservation
	markBookingPaid     *application.MarkBookingPaid
	requestRefund       *application.RequestRefund
	completeRefund      *application.CompleteRefund
	processWebhook      *application.ProcessPaymentWebhook
	telemetry           *telemetry.Telemetry
	logger              *logrus.Logger
}

// NewBookingEventHandlers creates the workflow event dispatcher
func NewBookingEventHandlers(
	initializeBooking *application.InitializeBooking,
	reserveTickets *application.ReserveTickets,
	createPaymentIntent *application.CreatePaymentIntent,
	expireBooking *application.ExpireBooking,
	processCancellation *application.ProcessCancellation,
	cancelReservation *application.CancelReservation,
	confirmReservation *application.ConfirmReservation,
	markBookingPaid *application.MarkBookingPaid,
	requestRefund *application.RequestRefund,
	completeRefund *application.CompleteRefund,
	processWebhook *application.ProcessPaymentWebhook,
	tel *telemetry.Telemetry,
	logger *logrus.Logger,
) *BookingEventHandlers {
	return &BookingEventHandlers{
		initializeBooking:   initializeBooking,
		reserveTickets:      reserveTickets,
		createPaymentIntent: createPaymentIntent,
		expireBooking:       expireBooking,
		processCancellation: processCancellation,
		cancelReservation:   cancelReservation,
		confirmReservation:  confirmReservation,
		markBookingPaid:     markBookingPaid,
		requestRefund:       requestRefund,
		completeRefund:      completeRefund,
		processWebhook:      processWebhook,
		telemetry:           tel,
		logger:              logger,
	}
}

// HandlerID implements events.EventHandler
func (h *BookingEventHandlers) HandlerID() string {
	return "booking-workflow"
}

// Handle implements events.EventHandler
func (h *BookingEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	topic := event.Topic.String()

	if h.telemetry != nil {
		spanCtx, span := h.telemetry.StartSpan(ctx, "event.handle."+topic)
		defer span.End()
		ctx = spanCtx
		h.telemetry.RecordCounter(ctx, "booking_events_handled_total",
			"Workflow events routed to a handler", 1,
			attribute.String("topic", topic))
	}

	switch topic {
	case events.BookingInitializedEvent:
		var payload domain.BookingInitializedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.initializeBooking.Execute(ctx, &payload)

	case events.TicketReservationRequestedEvent:
		var payload domain.TicketReservationRequestedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.reserveTickets.Execute(ctx, &payload)

	case events.TicketReservationCompletedEvent:
		var payload domain.TicketReservationCompletedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.createPaymentIntent.Execute(ctx, &payload)

	case events.BookingExpirationCheckEvent:
		var payload domain.BookingExpirationCheckPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.expireBooking.Execute(ctx, &payload)

	case events.CancellationRequestedEvent:
		var payload domain.CancellationRequestedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.processCancellation.Execute(ctx, &payload)

	case events.ReservationCancellationRequestedEvent:
		var payload domain.ReservationCancellationRequestedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.cancelReservation.Execute(ctx, payload.PerformanceID, payload.ReservationID, payload.Token)

	case events.RefundRequestedEvent:
		var payload domain.RefundRequestedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.requestRefund.Execute(ctx, &payload)

	case events.RefundCompletedEvent:
		var payload domain.RefundCompletedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.completeRefund.Execute(ctx, &payload)

	case events.PaymentSuccessConfirmedEvent:
		var payload domain.PaymentSuccessConfirmedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.confirmReservation.Execute(ctx, &payload)

	case events.PaymentFailureConfirmedEvent:
		var payload domain.PaymentFailureConfirmedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.cancelReservation.Execute(ctx, payload.PerformanceID, payload.ReservationID, payload.Token)

	case events.PaymentWebhookReceivedEvent:
		var payload domain.PaymentWebhookReceivedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.processWebhook.Execute(ctx, &payload)

	default:
		h.logger.WithField("topic", topic).Warn("no handler for topic")
		return nil
	}
}

// Register subscribes the dispatcher to every workflow topic, plus the
// dedicated PAID writer on PAYMENT_SUCCESS_CONFIRMED.
func (h *BookingEventHandlers) Register(ctx context.Context, subscriber events.Subscriber) error {
	topics := []string{
		events.BookingInitializedEvent,
		events.TicketReservationRequestedEvent,
		events.TicketReservationCompletedEvent,
		events.BookingExpirationCheckEvent,
		events.CancellationRequestedEvent,
		events.ReservationCancellationRequestedEvent,
		events.RefundRequestedEvent,
		events.RefundCompletedEvent,
		events.PaymentSuccessConfirmedEvent,
		events.PaymentFailureConfirmedEvent,
		events.PaymentWebhookReceivedEvent,
	}

	for _, topic := range topics {
		if err := subscriber.Subscribe(ctx, topic, h); err != nil {
			return errors.Wrapf(err, "failed to subscribe to %s", topic)
		}
	}

	paidWriter := events.NewEventHandlerFunc("booking-paid-writer", func(ctx context.Context, event *events.Event) error {
		var payload domain.PaymentSuccessConfirmedPayload
		if err := event.UnmarshalPayload(&payload); err != nil {
			return errors.Wrap(err, "failed to decode payload")
		}
		return h.markBookingPaid.Execute(ctx, payload.BookingID)
	})
	if err := subscriber.Subscribe(ctx, events.PaymentSuccessConfirmedEvent, paidWriter); err != nil {
		return errors.Wrap(err, "failed to subscribe paid writer")
	}

	return nil
}
