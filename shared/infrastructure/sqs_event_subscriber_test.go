package infrastructure

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQSClient struct {
	mu       sync.Mutex
	messages []types.Message
	deleted  []string
}

func (f *fakeSQSClient) ReceiveMessage(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &sqs.ReceiveMessageOutput{Messages: f.messages}
	f.messages = nil
	return out, nil
}

func (f *fakeSQSClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (f *fakeSQSClient) push(messages ...types.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, messages...)
}

func (f *fakeSQSClient) deletedHandles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

type countingHandler struct {
	id  string
	err error

	mu     sync.Mutex
	topics []string
}

func (h *countingHandler) HandlerID() string { return h.id }

func (h *countingHandler) Handle(_ context.Context, event *events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.topics = append(h.topics, event.Topic.String())
	return h.err
}

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics)
}

func newTestSQSSubscriber(client sqsAPI) *SQSEventSubscriber {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &SQSEventSubscriber{
		client:              client,
		queueURL:            "http://localhost:4566/000000000000/booking-events",
		logger:              logger,
		inbound:             make(chan *sqsMessage, 10),
		outbound:            make(chan *sqsMessage, 10),
		workers:             2,
		cleaners:            1,
		maxMessages:         5,
		sleepAfterEmptyRecv: 5 * time.Millisecond,
		sleepAfterError:     5 * time.Millisecond,
	}
}

func queueMessage(t *testing.T, topic, payload string) types.Message {
	t.Helper()
	body, err := json.Marshal(&snsMessage{
		ID:        "m-" + topic,
		Topic:     topic,
		Payload:   json.RawMessage(payload),
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	return types.Message{
		Body:          aws.String(string(body)),
		ReceiptHandle: aws.String("rh-" + topic),
	}
}

func TestSQSEventSubscriber_MultipleSubscriptionsShareOnePump(t *testing.T) {
	client := &fakeSQSClient{}
	s := newTestSQSSubscriber(client)
	defer s.Close()

	refunds := &countingHandler{id: "refunds"}
	webhooks := &countingHandler{id: "webhooks"}

	ctx := context.Background()
	require.NoError(t, s.Subscribe(ctx, events.RefundCompletedEvent, refunds))
	require.NoError(t, s.Subscribe(ctx, events.PaymentWebhookReceivedEvent, webhooks))

	client.push(queueMessage(t, events.RefundCompletedEvent, `{"bookingId":"b1","token":"t"}`))

	require.Eventually(t, func() bool {
		return refunds.count() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, webhooks.count())

	require.Eventually(t, func() bool {
		return len(client.deletedHandles()) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSQSEventSubscriber_FanOutToEveryMatchingHandler(t *testing.T) {
	client := &fakeSQSClient{}
	s := newTestSQSSubscriber(client)
	defer s.Close()

	confirmer := &countingHandler{id: "confirmer"}
	paidWriter := &countingHandler{id: "paid-writer"}

	ctx := context.Background()
	require.NoError(t, s.Subscribe(ctx, events.PaymentSuccessConfirmedEvent, confirmer))
	require.NoError(t, s.Subscribe(ctx, events.PaymentSuccessConfirmedEvent, paidWriter))

	client.push(queueMessage(t, events.PaymentSuccessConfirmedEvent,
		`{"bookingId":"b1","performanceId":42,"reservationId":7,"token":"t"}`))

	require.Eventually(t, func() bool {
		return confirmer.count() == 1 && paidWriter.count() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestSQSEventSubscriber_FailedHandlerLeavesMessage(t *testing.T) {
	client := &fakeSQSClient{}
	s := newTestSQSSubscriber(client)
	defer s.Close()

	failing := &countingHandler{id: "failing", err: errors.New("boom")}
	require.NoError(t, s.Subscribe(context.Background(), events.RefundCompletedEvent, failing))

	client.push(queueMessage(t, events.RefundCompletedEvent, `{"bookingId":"b1","token":"t"}`))

	require.Eventually(t, func() bool {
		return failing.count() == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, client.deletedHandles())
}
