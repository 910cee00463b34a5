package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/hbomb79/Videomania/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	amqpDialAttempts = 5
	amqpDialBackoff  = 5 * time.Second
)

type (
	// AMQPSource consumes object-created notifications, as published by S3
	// compatible object stores (MinIO, Ceph, SNS->SQS bridges), from a durable
	// queue. Only notifications for the watched container are submitted.
	//
	// A delivery is acked once every blob it names has been ingested or skipped.
	// Failed deliveries are nacked and requeued once; a delivery which fails
	// after redelivery is dropped.
	AMQPSource struct {
		url       string
		queue     string
		prefetch  int
		container string
	}

	// deliveryTracker resolves a single delivery after the ingestion of
	// every event it produced has completed.
	deliveryTracker struct {
		sync.Mutex
		delivery  amqp.Delivery
		remaining int
		err       error
	}
)

func NewAMQPSource(config Config, container string) *AMQPSource {
	prefetch := config.AMQPPrefetch
	if prefetch <= 0 {
		prefetch = 1
	}

	return &AMQPSource{url: config.AMQPURL, queue: config.AMQPQueue, prefetch: prefetch, container: container}
}

func (source *AMQPSource) Name() string { return "amqp" }

func (source *AMQPSource) Run(ctx context.Context, submit func(BlobEvent)) error {
	conn, err := source.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	queue, err := ch.QueueDeclare(
		source.queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", source.queue, err)
	}

	if err := ch.Qos(source.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set channel prefetch: %w", err)
	}

	deliveries, err := ch.ConsumeWithContext(ctx,
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume from %s: %w", queue.Name, err)
	}

	log.Emit(logger.SUCCESS, "Consuming blob notifications from queue %s\n", queue.Name)
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("delivery channel closed unexpectedly")
			}

			source.handleDelivery(delivery, submit)
		}
	}
}

func (source *AMQPSource) dial(ctx context.Context) (*amqp.Connection, error) {
	var err error
	for attempt := 1; attempt <= amqpDialAttempts; attempt++ {
		var conn *amqp.Connection
		if conn, err = amqp.Dial(source.url); err == nil {
			return conn, nil
		}

		log.Emit(logger.WARNING, "Failed to connect to AMQP broker (attempt %d/%d): %v\n", attempt, amqpDialAttempts, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(amqpDialBackoff):
		}
	}

	return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
}

// handleDelivery parses the delivery in to blob events and submits those for
// the watched container. Deliveries which name no such blob are acked
// immediately; unparseable deliveries are rejected without requeue.
func (source *AMQPSource) handleDelivery(delivery amqp.Delivery, submit func(BlobEvent)) {
	blobEvents, err := source.parseNotification(delivery.Body)
	if err != nil {
		log.Emit(logger.WARNING, "Discarding malformed blob notification: %v\n", err)
		if err := delivery.Nack(false, false); err != nil {
			log.Emit(logger.ERROR, "Failed to reject delivery %d: %v\n", delivery.DeliveryTag, err)
		}
		return
	}

	if len(blobEvents) == 0 {
		log.Emit(logger.DEBUG, "Ignoring notification with no blobs in container %s\n", source.container)
		if err := delivery.Ack(false); err != nil {
			log.Emit(logger.ERROR, "Failed to ack delivery %d: %v\n", delivery.DeliveryTag, err)
		}
		return
	}

	tracker := &deliveryTracker{delivery: delivery, remaining: len(blobEvents)}
	for _, event := range blobEvents {
		event.Ack = tracker.done
		submit(event)
	}
}

// parseNotification extracts the created blobs in the watched container from
// an S3 event notification body. Object keys are URL encoded in these
// notifications; the decoded key is used.
func (source *AMQPSource) parseNotification(body []byte) ([]BlobEvent, error) {
	var notification events.S3Event
	if err := json.Unmarshal(body, &notification); err != nil {
		return nil, fmt.Errorf("malformed S3 event notification: %w", err)
	}

	created := make([]BlobEvent, 0, len(notification.Records))
	for _, record := range notification.Records {
		if record.EventName != "" && !strings.Contains(record.EventName, "ObjectCreated") {
			continue
		}
		if record.S3.Bucket.Name != source.container || record.S3.Object.URLDecodedKey == "" {
			continue
		}

		created = append(created, BlobEvent{
			Container: record.S3.Bucket.Name,
			BlobName:  record.S3.Object.URLDecodedKey,
			Size:      record.S3.Object.Size,
			Source:    source.Name(),
		})
	}

	return created, nil
}

func (tracker *deliveryTracker) done(err error) {
	tracker.Lock()
	defer tracker.Unlock()

	if err != nil && tracker.err == nil {
		tracker.err = err
	}

	tracker.remaining--
	if tracker.remaining != 0 {
		return
	}

	delivery := tracker.delivery
	if tracker.err == nil {
		if err := delivery.Ack(false); err != nil {
			log.Emit(logger.ERROR, "Failed to ack delivery %d: %v\n", delivery.DeliveryTag, err)
		}
		return
	}

	requeue := !delivery.Redelivered
	if err := delivery.Nack(false, requeue); err != nil {
		log.Emit(logger.ERROR, "Failed to nack delivery %d: %v\n", delivery.DeliveryTag, err)
	}
}
