package infrastructure

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/shared/apperrors"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus(retry events.RetryPolicy) *MemoryEventBus {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewMemoryEventBus(logger, retry)
}

type recordingHandler struct {
	id string

	mu       sync.Mutex
	events   []*events.Event
	attempts []time.Time
	failures int32
}

func (h *recordingHandler) HandlerID() string { return h.id }

func (h *recordingHandler) Handle(_ context.Context, event *events.Event) error {
	h.mu.Lock()
	h.events = append(h.events, event)
	h.attempts = append(h.attempts, time.Now())
	h.mu.Unlock()

	if atomic.LoadInt32(&h.failures) > 0 {
		atomic.AddInt32(&h.failures, -1)
		return errors.New("transient failure")
	}
	return nil
}

func (h *recordingHandler) received() []*events.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*events.Event(nil), h.events...)
}

func (h *recordingHandler) attemptTimes() []time.Time {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]time.Time(nil), h.attempts...)
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{"bookingId": "b1", "token": "t"}
}

func TestMemoryEventBus_PublishReturnsBeforeDelivery(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	started := make(chan struct{})
	release := make(chan struct{})
	handler := events.NewEventHandlerFunc("blocker", func(context.Context, *events.Event) error {
		close(started)
		<-release
		return nil
	})
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, handler))

	err := bus.Publish(context.Background(), events.NewEvent(events.RefundCompletedEvent, validPayload()))
	require.NoError(t, err)

	// Publish already returned; the handler has not finished yet.
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("handler never started")
	}
	close(release)
	bus.Wait()
}

func TestMemoryEventBus_DeliversToAllMatchingSubscriptions(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	first := &recordingHandler{id: "first"}
	second := &recordingHandler{id: "second"}
	other := &recordingHandler{id: "other"}

	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, first))
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, second))
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundRequestedEvent, other))

	require.NoError(t, bus.Publish(context.Background(), events.NewEvent(events.RefundCompletedEvent, validPayload())))
	bus.Wait()

	assert.Len(t, first.received(), 1)
	assert.Len(t, second.received(), 1)
	assert.Empty(t, other.received())
}

func TestMemoryEventBus_RetriesWithBackoff(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	handler := &recordingHandler{id: "flaky", failures: 2}
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, handler))

	require.NoError(t, bus.Publish(context.Background(), events.NewEvent(events.RefundCompletedEvent, validPayload())))
	bus.Wait()

	attempts := handler.attemptTimes()
	require.Len(t, attempts, 3)
	assert.GreaterOrEqual(t, attempts[1].Sub(attempts[0]), 100*time.Millisecond)
	assert.GreaterOrEqual(t, attempts[2].Sub(attempts[1]), 200*time.Millisecond)
	assert.Zero(t, bus.Dropped())
}

func TestMemoryEventBus_DropsAfterExhaustingRetries(t *testing.T) {
	bus := newTestBus(events.RetryPolicy{MaxAttempts: 3, InitialBackoff: time.Millisecond, Multiplier: 2})

	handler := &recordingHandler{id: "broken", failures: 100}
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, handler))

	require.NoError(t, bus.Publish(context.Background(), events.NewEvent(events.RefundCompletedEvent, validPayload())))
	bus.Wait()

	assert.Len(t, handler.received(), 3)
	assert.Equal(t, int64(1), bus.Dropped())
}

func TestMemoryEventBus_RejectsInvalidPayload(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	handler := &recordingHandler{id: "subscriber"}
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, handler))

	event := events.NewEvent(events.RefundCompletedEvent, map[string]interface{}{"bookingId": "b1"})
	err := bus.Publish(context.Background(), event)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	bus.Wait()
	assert.Empty(t, handler.received())
}

func TestMemoryEventBus_DeliversUnregisteredTopics(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	handler := &recordingHandler{id: "subscriber"}
	require.NoError(t, bus.Subscribe(context.Background(), "CUSTOM_TOPIC", handler))

	require.NoError(t, bus.Publish(context.Background(), events.NewEvent("CUSTOM_TOPIC", map[string]string{"anything": "goes"})))
	bus.Wait()

	assert.Len(t, handler.received(), 1)
}

func TestMemoryEventBus_AssignsCorrelationID(t *testing.T) {
	bus := newTestBus(events.DefaultRetryPolicy())

	handler := &recordingHandler{id: "subscriber"}
	require.NoError(t, bus.Subscribe(context.Background(), events.RefundCompletedEvent, handler))

	event := events.NewEvent(events.RefundCompletedEvent, validPayload())
	require.True(t, event.CorrelationID.IsEmpty())

	require.NoError(t, bus.Publish(context.Background(), event))
	bus.Wait()

	received := handler.received()
	require.Len(t, received, 1)
	assert.False(t, received[0].CorrelationID.IsEmpty())
}
