package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stagepass/booking-system/shared/models"
	"golang.org/x/sync/errgroup"
)

var _ events.Publisher = (*SNSEventPublisher)(nil)

const maxBatchSize = 10

// snsAPI is the slice of the SNS client the publisher uses.
type snsAPI interface {
	PublishBatch(ctx context.Context, params *sns.PublishBatchInput, optFns ...func(*sns.Options)) (*sns.PublishBatchOutput, error)
}

// snsMessage is the wire envelope for workflow events mirrored to SNS when
// the service runs with the distributed transport instead of the in-process
// bus.
type snsMessage struct {
	ID            string          `json:"id"`
	Topic         string          `json:"topic"`
	Payload       json.RawMessage `json:"payload"`
	Metadata      events.Metadata `json:"metadata"`
	CorrelationID string          `json:"correlation_id"`
	Timestamp     time.Time       `json:"timestamp"`
}

// SNSEventPublisher publishes booking workflow events to an SNS topic.
type SNSEventPublisher struct {
	client   snsAPI
	topicArn string
}

// NewSNSEventPublisher creates a publisher against the given topic ARN,
// loading AWS config from the environment (works with LocalStack).
func NewSNSEventPublisher(ctx context.Context, topicArn string) (*SNSEventPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &SNSEventPublisher{
		client:   sns.NewFromConfig(cfg),
		topicArn: topicArn,
	}, nil
}

// Publish validates and publishes events in batches of up to 10.
func (p *SNSEventPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	for _, event := range evts {
		if err := events.ValidatePayload(event.Topic.String(), event.Data); err != nil {
			return err
		}

		if event.CorrelationID.IsEmpty() {
			event.CorrelationID = models.GenerateUUID()
		}
	}

	gr, ctx := errgroup.WithContext(ctx)
	for _, batch := range splitToChunks(evts, maxBatchSize) {
		batch := batch
		gr.Go(func() error {
			return p.publishBatch(ctx, batch)
		})
	}

	return gr.Wait()
}

func (p *SNSEventPublisher) publishBatch(ctx context.Context, batch []*events.Event) error {
	entries := make([]types.PublishBatchRequestEntry, len(batch))

	for i, event := range batch {
		payload, err := event.MarshalPayload()
		if err != nil {
			return errors.Wrap(err, "failed to marshal payload")
		}

		body, err := json.Marshal(&snsMessage{
			ID:            event.ID.String(),
			Topic:         event.Topic.String(),
			Payload:       payload,
			Metadata:      event.Metadata,
			CorrelationID: event.CorrelationID.String(),
			Timestamp:     event.Timestamp,
		})
		if err != nil {
			return errors.Wrap(err, "failed to marshal message")
		}

		entries[i] = types.PublishBatchRequestEntry{
			Id:      aws.String(event.ID.String()),
			Message: aws.String(string(body)),
			MessageAttributes: map[string]types.MessageAttributeValue{
				"topic": {
					DataType:    aws.String("String"),
					StringValue: aws.String(event.Topic.String()),
				},
			},
		}
	}

	_, err := p.client.PublishBatch(ctx, &sns.PublishBatchInput{
		TopicArn:                   &p.topicArn,
		PublishBatchRequestEntries: entries,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish batch to SNS")
	}

	return nil
}

// Close implements the publisher lifecycle; SNS clients need no teardown.
func (p *SNSEventPublisher) Close() error {
	return nil
}

func splitToChunks[T any](slice []T, chunkSize int) [][]T {
	var chunks [][]T
	for i := 0; i < len(slice); i += chunkSize {
		end := i + chunkSize
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[i:end])
	}
	return chunks
}
