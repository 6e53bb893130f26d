package infrastructure

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/shared/events"
	"github.com/stagepass/booking-system/shared/models"
)

var _ events.Subscriber = (*SQSEventSubscriber)(nil)

// sqsAPI is the slice of the SQS client the subscriber uses.
type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type sqsMessage struct {
	Message types.Message
	Event   *events.Event
	Err     error
}

type sqsSubscription struct {
	pattern events.Topic
	handler events.EventHandler
}

// SQSEventSubscriber consumes workflow events from an SQS queue when the
// service runs with the distributed transport. A single consumer pump fans
// each message out to every registered pattern/handler pair. Failed messages
// are left to SQS redelivery; successful ones are acknowledged by deletion.
type SQSEventSubscriber struct {
	mux      sync.RWMutex
	client   sqsAPI
	queueURL string
	logger   *logrus.Logger

	subscriptions []sqsSubscription
	inbound       chan *sqsMessage
	outbound      chan *sqsMessage
	cancel        context.CancelFunc
	running       atomic.Bool

	workers             int
	cleaners            int
	maxMessages         int32
	waitTimeSeconds     int32
	visibilityTimeout   int32
	sleepAfterEmptyRecv time.Duration
	sleepAfterError     time.Duration
}

// NewSQSEventSubscriber creates a subscriber for the given queue URL.
func NewSQSEventSubscriber(ctx context.Context, queueURL string, logger *logrus.Logger) (*SQSEventSubscriber, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	return &SQSEventSubscriber{
		client:              sqs.NewFromConfig(cfg),
		queueURL:            queueURL,
		logger:              logger,
		inbound:             make(chan *sqsMessage, 10),
		outbound:            make(chan *sqsMessage, 10),
		workers:             10,
		cleaners:            2,
		maxMessages:         5,
		waitTimeSeconds:     15,
		visibilityTimeout:   30,
		sleepAfterEmptyRecv: 10 * time.Second,
		sleepAfterError:     20 * time.Second,
	}, nil
}

// Subscribe registers a handler for a topic pattern. The first call starts
// the consumer pump; later calls add further pattern/handler pairs to the
// same pump, so the workflow dispatcher and any extra handlers share one
// queue consumer.
func (s *SQSEventSubscriber) Subscribe(ctx context.Context, topic string, handler events.EventHandler) error {
	pattern, err := events.NewTopic(topic)
	if err != nil {
		return err
	}

	s.mux.Lock()
	s.subscriptions = append(s.subscriptions, sqsSubscription{pattern: pattern, handler: handler})
	s.mux.Unlock()

	if s.running.CompareAndSwap(false, true) {
		ctx, cancel := context.WithCancel(ctx)

		s.mux.Lock()
		s.cancel = cancel
		s.mux.Unlock()

		for i := 0; i < s.workers; i++ {
			go s.startWorker(ctx)
		}
		for i := 0; i < s.cleaners; i++ {
			go s.startCleaner(ctx)
		}
		go s.startReader(ctx)
	}

	return nil
}

// Close stops the reader, worker, and cleaner goroutines.
func (s *SQSEventSubscriber) Close() error {
	if !s.running.Load() {
		return nil
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.running.Store(false)
	return nil
}

func (s *SQSEventSubscriber) startReader(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := s.read(ctx); err != nil {
				s.logger.WithError(err).Error("failed to read from SQS")
				time.Sleep(s.sleepAfterError)
			}
		}
	}
}

func (s *SQSEventSubscriber) read(ctx context.Context) error {
	output, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(s.queueURL),
		MaxNumberOfMessages:   s.maxMessages,
		WaitTimeSeconds:       s.waitTimeSeconds,
		VisibilityTimeout:     s.visibilityTimeout,
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return errors.Wrap(err, "failed to receive messages")
	}

	if len(output.Messages) == 0 {
		time.Sleep(s.sleepAfterEmptyRecv)
		return nil
	}

	for _, message := range output.Messages {
		event, err := s.decode(message)
		if err != nil {
			s.logger.WithError(err).Warn("skipping malformed SQS message")
			continue
		}

		select {
		case s.inbound <- &sqsMessage{Message: message, Event: event}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (s *SQSEventSubscriber) decode(message types.Message) (*events.Event, error) {
	var wire snsMessage
	if err := json.Unmarshal([]byte(*message.Body), &wire); err != nil {
		return nil, errors.Wrap(err, "failed to decode message body")
	}

	topic, err := events.NewTopic(wire.Topic)
	if err != nil {
		return nil, err
	}

	metadata := wire.Metadata
	if metadata == nil {
		metadata = make(events.Metadata)
	}

	return &events.Event{
		ID:            models.ID(wire.ID),
		Topic:         topic,
		Data:          wire.Payload,
		Metadata:      metadata,
		Timestamp:     wire.Timestamp,
		CorrelationID: models.ID(wire.CorrelationID),
	}, nil
}

func (s *SQSEventSubscriber) startWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.inbound:
			if message == nil {
				continue
			}
			s.handle(ctx, message)
		}
	}
}

func (s *SQSEventSubscriber) handle(ctx context.Context, message *sqsMessage) {
	s.mux.RLock()
	subs := make([]sqsSubscription, len(s.subscriptions))
	copy(subs, s.subscriptions)
	s.mux.RUnlock()

	// Any failed handler keeps the message on the queue for redelivery.
	for _, sub := range subs {
		if !message.Event.Topic.Matches(sub.pattern) {
			continue
		}
		if err := sub.handler.Handle(ctx, message.Event); err != nil {
			message.Err = err
		}
	}

	select {
	case s.outbound <- message:
	case <-ctx.Done():
	}
}

func (s *SQSEventSubscriber) startCleaner(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case message := <-s.outbound:
			if message == nil || message.Err != nil {
				// Leave failed messages to SQS visibility-timeout redelivery.
				continue
			}
			if _, err := s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
				QueueUrl:      &s.queueURL,
				ReceiptHandle: message.Message.ReceiptHandle,
			}); err != nil {
				s.logger.WithError(err).Error("failed to delete SQS message")
			}
		}
	}
}
