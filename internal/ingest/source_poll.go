package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/pkg/logger"
)

type (
	BlobLister interface {
		List(ctx context.Context, container string) ([]blob.Object, error)
	}

	// PollingSource lists the watched container on an interval, and submits
	// any blobs it has not seen before. Blobs which already exist when the
	// source first lists the container are assumed to have been ingested
	// already.
	//
	// Blobs which fail ingestion are forgotten, so that they are submitted
	// again on a later poll, until they have failed MaxAttempts times.
	PollingSource struct {
		sync.Mutex
		lister      BlobLister
		container   string
		interval    time.Duration
		maxAttempts int
		primed      bool
		seen        map[string]*pollEntry
	}

	pollEntry struct {
		attempts int
		inFlight bool
		done     bool
	}
)

func NewPollingSource(config Config, container string, lister BlobLister) *PollingSource {
	maxAttempts := config.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &PollingSource{
		lister:      lister,
		container:   container,
		interval:    config.PollInterval(),
		maxAttempts: maxAttempts,
		seen:        make(map[string]*pollEntry),
	}
}

func (source *PollingSource) Name() string { return "poll" }

func (source *PollingSource) Run(ctx context.Context, submit func(BlobEvent)) error {
	ticker := time.NewTicker(source.interval)
	defer ticker.Stop()

	source.Poll(ctx, submit)
	for {
		select {
		case <-ticker.C:
			source.Poll(ctx, submit)
		case <-ctx.Done():
			return nil
		}
	}
}

// Poll lists the watched container once, submitting every blob which is
// eligible for ingestion. The first successful poll only records the blobs
// it finds.
func (source *PollingSource) Poll(ctx context.Context, submit func(BlobEvent)) {
	objects, err := source.lister.List(ctx, source.container)
	if err != nil {
		log.Emit(logger.WARNING, "Failed to poll container %s: %v\n", source.container, err)
		return
	}

	source.Lock()
	if !source.primed {
		for _, object := range objects {
			source.seen[object.Name] = &pollEntry{done: true}
		}
		source.primed = true
		source.Unlock()

		log.Emit(logger.INFO, "Polling container %s (%d existing blobs ignored)\n", source.container, len(objects))
		return
	}

	pending := make([]BlobEvent, 0)
	for _, object := range objects {
		entry, ok := source.seen[object.Name]
		if !ok {
			entry = &pollEntry{}
			source.seen[object.Name] = entry
		}
		if entry.done || entry.inFlight {
			continue
		}

		entry.inFlight = true
		entry.attempts++
		name := object.Name
		pending = append(pending, BlobEvent{
			Container: source.container,
			BlobName:  name,
			Size:      object.Size,
			Source:    source.Name(),
			Ack:       func(err error) { source.resolve(name, err) },
		})
	}
	source.Unlock()

	for _, event := range pending {
		submit(event)
	}
}

func (source *PollingSource) resolve(name string, err error) {
	source.Lock()
	defer source.Unlock()

	entry, ok := source.seen[name]
	if !ok {
		return
	}

	entry.inFlight = false
	if err == nil {
		entry.done = true
		return
	}

	if entry.attempts >= source.maxAttempts {
		log.Emit(logger.ERROR, "Giving up on %s/%s after %d failed attempts\n", source.container, name, entry.attempts)
		entry.done = true
	}
}
