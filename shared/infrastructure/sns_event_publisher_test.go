package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stagepass/booking-system/shared/apperrors"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNSClient struct {
	mu     sync.Mutex
	inputs []*sns.PublishBatchInput
}

func (f *fakeSNSClient) PublishBatch(_ context.Context, params *sns.PublishBatchInput, _ ...func(*sns.Options)) (*sns.PublishBatchOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, params)
	return &sns.PublishBatchOutput{}, nil
}

func (f *fakeSNSClient) batches() []*sns.PublishBatchInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*sns.PublishBatchInput(nil), f.inputs...)
}

func TestSNSEventPublisher_AssignsCorrelationIDWhenAbsent(t *testing.T) {
	client := &fakeSNSClient{}
	p := &SNSEventPublisher{client: client, topicArn: "arn:aws:sns:us-east-1:000000000000:booking-events"}

	event := events.NewEvent(events.Topic(events.RefundCompletedEvent),
		map[string]interface{}{"bookingId": "b1", "token": "t"})
	require.True(t, event.CorrelationID.IsEmpty())

	require.NoError(t, p.Publish(context.Background(), event))
	assert.False(t, event.CorrelationID.IsEmpty())

	require.Len(t, client.batches(), 1)
	entries := client.batches()[0].PublishBatchRequestEntries
	require.Len(t, entries, 1)

	var wire snsMessage
	require.NoError(t, json.Unmarshal([]byte(*entries[0].Message), &wire))
	assert.Equal(t, event.CorrelationID.String(), wire.CorrelationID)
}

func TestSNSEventPublisher_KeepsExistingCorrelationID(t *testing.T) {
	client := &fakeSNSClient{}
	p := &SNSEventPublisher{client: client, topicArn: "arn:aws:sns:us-east-1:000000000000:booking-events"}

	event := events.NewEvent(events.Topic(events.RefundCompletedEvent),
		map[string]interface{}{"bookingId": "b1", "token": "t"}).
		WithCorrelationID("corr-1")

	require.NoError(t, p.Publish(context.Background(), event))

	require.Len(t, client.batches(), 1)
	var wire snsMessage
	require.NoError(t, json.Unmarshal([]byte(*client.batches()[0].PublishBatchRequestEntries[0].Message), &wire))
	assert.Equal(t, "corr-1", wire.CorrelationID)
}

func TestSNSEventPublisher_RejectsInvalidPayload(t *testing.T) {
	client := &fakeSNSClient{}
	p := &SNSEventPublisher{client: client, topicArn: "arn:aws:sns:us-east-1:000000000000:booking-events"}

	event := events.NewEvent(events.Topic(events.RefundCompletedEvent),
		map[string]interface{}{"bookingId": "b1"})

	err := p.Publish(context.Background(), event)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, client.batches())
}
