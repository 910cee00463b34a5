package ingest

import (
	"errors"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type acknowledgement struct {
	tag     uint64
	ack     bool
	requeue bool
}

// fakeAcknowledger records the acks and nacks made against deliveries
type fakeAcknowledger struct {
	sync.Mutex
	calls []acknowledgement
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.Lock()
	defer a.Unlock()
	a.calls = append(a.calls, acknowledgement{tag: tag, ack: true})
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	a.Lock()
	defer a.Unlock()
	a.calls = append(a.calls, acknowledgement{tag: tag, requeue: requeue})
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

const createdNotification = `{
	"EventName": "s3:ObjectCreated:Put",
	"Key": "videos/abc_my+cat.mp4",
	"Records": [
		{
			"eventName": "s3:ObjectCreated:Put",
			"s3": {
				"bucket": {"name": "videos"},
				"object": {"key": "abc_my+cat%281%29.mp4", "size": 2097152}
			}
		}
	]
}`

func newTestAMQPSource() *AMQPSource {
	return NewAMQPSource(Config{AMQPQueue: "test"}, "videos")
}

func TestAMQPSource_ParseNotification(t *testing.T) {
	t.Parallel()

	events, err := newTestAMQPSource().parseNotification([]byte(createdNotification))
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "videos", events[0].Container)
	assert.Equal(t, "abc_my cat(1).mp4", events[0].BlobName, "object keys must be URL decoded")
	assert.Equal(t, int64(2097152), events[0].Size)
	assert.Equal(t, "amqp", events[0].Source)
}

func TestAMQPSource_ParseNotificationFiltering(t *testing.T) {
	t.Parallel()

	body := `{"Records": [
		{"eventName": "s3:ObjectRemoved:Delete", "s3": {"bucket": {"name": "videos"}, "object": {"key": "gone.mp4"}}},
		{"eventName": "s3:ObjectCreated:Put", "s3": {"bucket": {"name": "thumbnails"}, "object": {"key": "abc_thumbnail.jpg"}}},
		{"eventName": "s3:ObjectCreated:CompleteMultipartUpload", "s3": {"bucket": {"name": "videos"}, "object": {"key": "big.mkv"}}}
	]}`

	events, err := newTestAMQPSource().parseNotification([]byte(body))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "big.mkv", events[0].BlobName)

	_, err = newTestAMQPSource().parseNotification([]byte("not json"))
	assert.Error(t, err)

	_, err = newTestAMQPSource().parseNotification([]byte(`{"Records": [{"eventName": "s3:ObjectCreated:Put", "s3": {"bucket": {"name": "videos"}, "object": {"key": "bad%zz.mp4"}}}]}`))
	assert.Error(t, err, "object keys which cannot be URL decoded are malformed")
}

func TestAMQPSource_AcksOnSuccess(t *testing.T) {
	t.Parallel()

	acker := &fakeAcknowledger{}
	var submitted []BlobEvent
	newTestAMQPSource().handleDelivery(
		amqp.Delivery{Acknowledger: acker, DeliveryTag: 7, Body: []byte(createdNotification)},
		func(e BlobEvent) { submitted = append(submitted, e) },
	)

	require.Len(t, submitted, 1)
	assert.Empty(t, acker.calls, "delivery must not be resolved until ingestion completes")

	submitted[0].ack(nil)
	assert.Equal(t, []acknowledgement{{tag: 7, ack: true}}, acker.calls)
}

func TestAMQPSource_NackRequeuesOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary     string
		redelivered bool
		requeue     bool
	}{
		{"first delivery is requeued", false, true},
		{"redelivery is dropped", true, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.summary, func(t *testing.T) {
			t.Parallel()

			acker := &fakeAcknowledger{}
			var submitted []BlobEvent
			newTestAMQPSource().handleDelivery(
				amqp.Delivery{Acknowledger: acker, DeliveryTag: 3, Redelivered: test.redelivered, Body: []byte(createdNotification)},
				func(e BlobEvent) { submitted = append(submitted, e) },
			)

			require.Len(t, submitted, 1)
			submitted[0].ack(errors.New("ffmpeg exploded"))
			assert.Equal(t, []acknowledgement{{tag: 3, requeue: test.requeue}}, acker.calls)
		})
	}
}

func TestAMQPSource_IrrelevantAndMalformedDeliveries(t *testing.T) {
	t.Parallel()

	acker := &fakeAcknowledger{}
	submit := func(BlobEvent) { t.Fatal("nothing should be submitted") }
	source := newTestAMQPSource()

	source.handleDelivery(amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: []byte(`{"Records": []}`)}, submit)
	source.handleDelivery(amqp.Delivery{Acknowledger: acker, DeliveryTag: 2, Body: []byte("garbage")}, submit)

	assert.Equal(t, []acknowledgement{{tag: 1, ack: true}, {tag: 2, requeue: false}}, acker.calls)
}

func TestAMQPSource_MultiRecordDeliveryResolvesOnce(t *testing.T) {
	t.Parallel()

	body := `{"Records": [
		{"eventName": "s3:ObjectCreated:Put", "s3": {"bucket": {"name": "videos"}, "object": {"key": "a.mp4"}}},
		{"eventName": "s3:ObjectCreated:Put", "s3": {"bucket": {"name": "videos"}, "object": {"key": "b.mp4"}}}
	]}`

	acker := &fakeAcknowledger{}
	var submitted []BlobEvent
	newTestAMQPSource().handleDelivery(amqp.Delivery{Acknowledger: acker, DeliveryTag: 9, Body: []byte(body)}, func(e BlobEvent) {
		submitted = append(submitted, e)
	})

	require.Len(t, submitted, 2)
	submitted[0].ack(errors.New("failed"))
	assert.Empty(t, acker.calls)

	submitted[1].ack(nil)
	assert.Equal(t, []acknowledgement{{tag: 9, requeue: true}}, acker.calls)
}
