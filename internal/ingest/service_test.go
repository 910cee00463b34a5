package ingest_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hbomb79/Videomania/internal/ingest"
	"github.com/hbomb79/Videomania/internal/ingest/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// channelSource is an EventSource which submits every event sent on it's
// channel, allowing tests to drive the service as a real source would.
type channelSource struct {
	events chan ingest.BlobEvent
	err    error
}

func (source *channelSource) Name() string { return "test" }

func (source *channelSource) Run(ctx context.Context, submit func(ingest.BlobEvent)) error {
	if source.err != nil {
		return source.err
	}

	for {
		select {
		case event := <-source.events:
			submit(event)
		case <-ctx.Done():
			return nil
		}
	}
}

// ackRecorder collects the results passed to BlobEvent.Ack
type ackRecorder struct {
	sync.Mutex
	results []error
}

func (recorder *ackRecorder) ack(err error) {
	recorder.Lock()
	defer recorder.Unlock()
	recorder.results = append(recorder.results, err)
}

func (recorder *ackRecorder) all() []error {
	recorder.Lock()
	defer recorder.Unlock()
	return append([]error(nil), recorder.results...)
}

func startService(t *testing.T, config ingest.Config, runner ingest.Runner, sources ...ingest.EventSource) *ingest.Service {
	srv := ingest.New(config, runner, sources...)

	wg := sync.WaitGroup{}
	wg.Add(1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		defer wg.Done()
		assert.NoError(t, srv.Run(ctx))
	}()

	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})

	return srv
}

func TestService_SuccessfulIngestIsDropped(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(e ingest.BlobEvent) bool { return e.BlobName == "abc_cat.mp4" }), mock.Anything).
		RunAndReturn(func(_ context.Context, _ ingest.BlobEvent, observer func(ingest.State)) (*ingest.Outcome, error) {
			observer(ingest.Resolved)
			return &ingest.Outcome{VideoID: "video-1", Status: "completed"}, nil
		}).
		Once()

	source := &channelSource{events: make(chan ingest.BlobEvent)}
	srv := startService(t, ingest.Config{IngestionParallelism: 1, RetainTroubled: 10}, runner, source)

	acks := &ackRecorder{}
	source.events <- ingest.BlobEvent{Container: "videos", BlobName: "abc_cat.mp4", Ack: acks.ack}

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		assert.Equal(c, []error{nil}, acks.all())
		assert.Empty(c, srv.AllItems())
	}, 2*time.Second, 10*time.Millisecond)
}

func TestService_FailedIngestIsTroubled(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(nil, errExpected).Once()

	srv := startService(t, ingest.Config{IngestionParallelism: 1, RetainTroubled: 10}, runner)

	acks := &ackRecorder{}
	id := srv.Submit(ingest.BlobEvent{Container: "videos", BlobName: "abc_cat.mp4", Ack: acks.ack})

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		assert.Equal(c, []error{errExpected}, acks.all())

		item := srv.Item(id)
		if assert.NotNil(c, item) {
			assert.Equal(c, ingest.TROUBLED, item.State)
			assert.Equal(c, ingest.Troubled, item.Stage)
			assert.Contains(c, item.Error, errExpected.Error())
		}
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, srv.RemoveItem(id))
	assert.Nil(t, srv.Item(id))
	assert.ErrorIs(t, srv.RemoveItem(id), ingest.ErrItemNotFound)
}

func TestService_TroubledItemsAreBounded(t *testing.T) {
	t.Parallel()

	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).Return(nil, errExpected).Times(4)

	srv := startService(t, ingest.Config{IngestionParallelism: 1, RetainTroubled: 2}, runner)

	acks := &ackRecorder{}
	names := []string{"a.mp4", "b.mp4", "c.mp4", "d.mp4"}
	for _, name := range names {
		srv.Submit(ingest.BlobEvent{Container: "videos", BlobName: name, Ack: acks.ack})
	}

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		assert.Len(c, acks.all(), 4)

		items := srv.AllItems()
		if assert.Len(c, items, 2) {
			assert.Equal(c, "c.mp4", items[0].Event.BlobName)
			assert.Equal(c, "d.mp4", items[1].Event.BlobName)
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestService_CannotRemoveItemBeingIngested(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	runner := mocks.NewMockRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, ingest.BlobEvent, func(ingest.State)) (*ingest.Outcome, error) {
			<-release
			return &ingest.Outcome{Skipped: true}, nil
		}).
		Once()

	srv := startService(t, ingest.Config{IngestionParallelism: 1}, runner)
	id := srv.Submit(ingest.BlobEvent{Container: "videos", BlobName: "abc_cat.mp4"})

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		item := srv.Item(id)
		if assert.NotNil(c, item) {
			assert.Equal(c, ingest.INGESTING, item.State)
		}
	}, 2*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, srv.RemoveItem(id), ingest.ErrItemBusy)
	close(release)

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		assert.Nil(c, srv.Item(id))
	}, 2*time.Second, 10*time.Millisecond)
}

func TestService_SourceFailureStopsService(t *testing.T) {
	t.Parallel()

	srv := ingest.New(ingest.Config{IngestionParallelism: 1}, mocks.NewMockRunner(t), &channelSource{err: errExpected})

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, errExpected)
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop after it's source failed")
	}
}
