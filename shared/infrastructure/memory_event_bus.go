package infrastructure

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stagepass/booking-system/shared/models"
)

var (
	_ events.Publisher  = (*MemoryEventBus)(nil)
	_ events.Subscriber = (*MemoryEventBus)(nil)
)

type subscription struct {
	pattern events.Topic
	handler events.EventHandler
}

// MemoryEventBus is an in-process, asynchronous event bus. Publish returns
// before any handler runs; every subscribed handler gets its own bounded
// retry loop, and a handler that exhausts its retries is dropped after
// logging (dead-letter is simulated, not persisted).
//
// The bus is an explicit instance wired at process start, never a package
// global, so tests can run isolated buses.
type MemoryEventBus struct {
	mux           sync.RWMutex
	subscriptions []subscription
	retry         events.RetryPolicy
	logger        *logrus.Logger
	wg            sync.WaitGroup
	dropped       atomic.Int64
}

// NewMemoryEventBus creates a new in-process event bus.
func NewMemoryEventBus(logger *logrus.Logger, retry events.RetryPolicy) *MemoryEventBus {
	return &MemoryEventBus{
		retry:  retry,
		logger: logger,
	}
}

// Publish validates each event against the schema catalog and schedules
// delivery to every matching subscription. A validation failure rejects the
// whole call and nothing is delivered. Events without a registered schema
// are delivered anyway and logged as unvalidated.
func (b *MemoryEventBus) Publish(ctx context.Context, evts ...*events.Event) error {
	for _, event := range evts {
		if err := events.ValidatePayload(event.Topic.String(), event.Data); err != nil {
			b.logger.WithFields(logrus.Fields{
				"topic":          event.Topic.String(),
				"correlation_id": event.CorrelationID.String(),
			}).WithError(err).Error("event payload failed schema validation")
			return err
		}

		if _, ok := events.SchemaFor(event.Topic.String()); !ok {
			b.logger.WithField("topic", event.Topic.String()).
				Warn("no schema registered for event, delivering unvalidated")
		}

		if event.CorrelationID.IsEmpty() {
			event.CorrelationID = models.GenerateUUID()
		}

		b.logger.WithFields(logrus.Fields{
			"topic":          event.Topic.String(),
			"correlation_id": event.CorrelationID.String(),
		}).Info("publishing event")

		b.mux.RLock()
		for _, sub := range b.subscriptions {
			if !event.Topic.Matches(sub.pattern) {
				continue
			}
			b.wg.Add(1)
			go b.deliver(sub, event.Clone())
		}
		b.mux.RUnlock()
	}

	return nil
}

// Subscribe registers a handler for a topic pattern. Each matching event is
// delivered to the handler independently of any other subscription.
func (b *MemoryEventBus) Subscribe(_ context.Context, topic string, handler events.EventHandler) error {
	pattern, err := events.NewTopic(topic)
	if err != nil {
		return err
	}

	b.mux.Lock()
	b.subscriptions = append(b.subscriptions, subscription{pattern: pattern, handler: handler})
	b.mux.Unlock()

	b.logger.WithFields(logrus.Fields{
		"topic":   topic,
		"handler": handler.HandlerID(),
	}).Debug("handler subscribed")

	return nil
}

// deliver runs the retry loop for a single handler and event. Delivery is
// detached from the publisher's context: the triggering request has already
// returned by the time handlers run.
func (b *MemoryEventBus) deliver(sub subscription, event *events.Event) {
	defer b.wg.Done()

	log := b.logger.WithFields(logrus.Fields{
		"topic":          event.Topic.String(),
		"handler":        sub.handler.HandlerID(),
		"correlation_id": event.CorrelationID.String(),
	})

	for attempt := 1; attempt <= b.retry.MaxAttempts; attempt++ {
		err := sub.handler.Handle(context.Background(), event)
		if err == nil {
			return
		}

		log.WithError(err).Errorf("handler failed (attempt %d/%d)", attempt, b.retry.MaxAttempts)

		if attempt == b.retry.MaxAttempts {
			// TODO: persist exhausted events to a durable dead-letter store
			// for operator replay instead of dropping them.
			b.dropped.Add(1)
			log.Error("handler exhausted retries, dropping event (dead-letter simulated)")
			return
		}

		time.Sleep(b.retry.Backoff(attempt))
	}
}

// Wait blocks until all in-flight deliveries have finished.
func (b *MemoryEventBus) Wait() {
	b.wg.Wait()
}

// Dropped returns the number of events dropped after exhausting retries.
func (b *MemoryEventBus) Dropped() int64 {
	return b.dropped.Load()
}

// Close waits for in-flight deliveries with a bounded grace period.
func (b *MemoryEventBus) Close() error {
	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		b.logger.Warn("timed out waiting for in-flight event deliveries")
	}
	return nil
}
