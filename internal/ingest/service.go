package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/hbomb79/Videomania/pkg/worker"
)

var (
	log = logger.Get("IngestServ")

	ErrItemNotFound = errors.New("ingest item not found")
	ErrItemBusy     = errors.New("ingest item is currently being ingested")
)

type (
	// EventSource delivers blob events to the service. Run must block until
	// the context is cancelled, calling submit for every event it receives.
	EventSource interface {
		Name() string
		Run(ctx context.Context, submit func(BlobEvent)) error
	}

	// Runner executes the ingest workflow for a single blob event.
	Runner interface {
		Run(ctx context.Context, event BlobEvent, observer func(State)) (*Outcome, error)
	}

	// Service is responsible for ingesting blobs as they are created in
	// the videos container. Events arrive from one or more EventSources
	// and are queued as IngestItems, which the services worker pool claims
	// and runs through the ingest Workflow:
	// - The blob is checked against the extension allowlist
	// - The owning video is resolved and the blob staged locally
	// - The derived artifacts are produced and uploaded
	// - The result is persisted against the video
	Service struct {
		*sync.Mutex
		workflow   Runner
		sources    []EventSource
		config     Config
		items      []*IngestItem
		workerPool *worker.WorkerPool
		ctx        context.Context
	}
)

// New creates a new ingest Service. The sources provided are started
// when the service is Run.
func New(config Config, workflow Runner, sources ...EventSource) *Service {
	service := &Service{
		Mutex:      &sync.Mutex{},
		workflow:   workflow,
		sources:    sources,
		config:     config,
		items:      make([]*IngestItem, 0),
		workerPool: worker.NewWorkerPool(),
		ctx:        context.Background(),
	}

	parallelism := config.IngestionParallelism
	if parallelism <= 0 {
		parallelism = 1
	}
	for i := 0; i < parallelism; i++ {
		label := fmt.Sprintf("ingest-worker-%d", i)
		service.workerPool.PushWorker(worker.NewWorker(label, service.PerformItemIngest))
	}

	return service
}

// Run is the main entry point of this service. It starts the worker pool
// and every configured event source, and blocks until the context provided
// is cancelled. If any source fails, Run returns it's error.
func (service *Service) Run(ctx context.Context) error {
	service.Lock()
	service.ctx = ctx
	service.Unlock()

	if err := service.workerPool.Start(); err != nil {
		return err
	}
	defer service.workerPool.Close()

	sourceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(service.sources))
	wg := &sync.WaitGroup{}
	for _, source := range service.sources {
		wg.Add(1)
		go func(source EventSource) {
			defer wg.Done()
			log.Emit(logger.INFO, "Starting %s event source\n", source.Name())
			if err := source.Run(sourceCtx, func(event BlobEvent) { service.Submit(event) }); err != nil && !errors.Is(err, context.Canceled) {
				errs <- fmt.Errorf("%s event source failed: %w", source.Name(), err)
			}
		}(source)
	}

	// Claim anything submitted before the pool was started
	service.workerPool.WakeupWorkers()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errs:
		log.Emit(logger.ERROR, "Ingest service stopping: %v\n", err)
	}

	cancel()
	wg.Wait()
	return err
}

// Submit queues the blob event given for ingestion, returning the ID of
// the new ingest item. Redelivered events are not de-duplicated.
func (service *Service) Submit(event BlobEvent) uuid.UUID {
	service.Lock()
	item := &IngestItem{
		ID:        uuid.New(),
		Event:     event,
		State:     IDLE,
		Stage:     Triggered,
		CreatedAt: time.Now(),
	}
	service.items = append(service.items, item)
	service.Unlock()

	log.Emit(logger.NEW, "Queued %s for ingestion (source=%s)\n", event, event.Source)
	service.workerPool.WakeupWorkers()
	return item.ID
}

// PerformItemIngest is the worker function for the Service, which is called
// by the services WorkerPool.
// This function will claim the first IDLE item it finds and run the ingest
// workflow for it. Successful (or skipped) items are dropped from the service,
// failed items are marked TROUBLED and retained. In either case the events
// Ack is called with the result.
func (service *Service) PerformItemIngest(w worker.Worker) (bool, error) {
	item := service.claimIdleItem()
	if item == nil {
		return false, nil
	}

	outcome, err := service.workflow.Run(service.context(), item.Event, func(stage State) {
		service.Lock()
		defer service.Unlock()
		item.Stage = stage
	})

	service.Lock()
	if err != nil {
		item.State = TROUBLED
		item.Stage = Troubled
		item.Error = err.Error()
		service.trimTroubledItems()
		log.Emit(logger.ERROR, "Ingestion of %s failed: %v\n", item.Event, err)
	} else {
		item.State = COMPLETE
		item.VideoID = outcome.VideoID
		service.removeItem(item.ID)
	}
	service.Unlock()

	item.Event.ack(err)
	return true, nil
}

// RemoveItem looks for an item with the ID provided in the services
// state, and removes it if it's found.
// This method *fails* if the item is currently 'INGESTING' as interrupting
// the ingestion is not possible.
func (service *Service) RemoveItem(itemID uuid.UUID) error {
	service.Lock()
	defer service.Unlock()

	item := service.findItem(itemID)
	if item == nil {
		return ErrItemNotFound
	}
	if item.State == INGESTING {
		return fmt.Errorf("cannot remove item %s: %w", itemID, ErrItemBusy)
	}

	service.removeItem(itemID)
	return nil
}

// Item returns a copy of the item with the ID provided, or nil if no
// such item exists.
func (service *Service) Item(itemID uuid.UUID) *IngestItem {
	service.Lock()
	defer service.Unlock()

	if item := service.findItem(itemID); item != nil {
		cp := *item
		return &cp
	}

	return nil
}

// AllItems returns a copy of every item currently held by the service,
// in the order they were submitted.
func (service *Service) AllItems() []*IngestItem {
	service.Lock()
	defer service.Unlock()

	items := make([]*IngestItem, len(service.items))
	for i, item := range service.items {
		cp := *item
		items[i] = &cp
	}

	return items
}

// claimIdleItem will try and find an IDLE item in the ingest service,
// and set it's state to 'INGESTING' to prevent another
// worker from claiming it once the mutex lock is released.
//
// Note: This function takes ownership of the mutex, and releases it when returning
func (service *Service) claimIdleItem() *IngestItem {
	service.Lock()
	defer service.Unlock()

	for _, item := range service.items {
		if item.State == IDLE {
			item.State = INGESTING
			return item
		}
	}

	return nil
}

func (service *Service) findItem(itemID uuid.UUID) *IngestItem {
	for _, item := range service.items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

func (service *Service) removeItem(itemID uuid.UUID) {
	for k, v := range service.items {
		if v.ID == itemID {
			service.items = append(service.items[:k], service.items[k+1:]...)
			return
		}
	}
}

// trimTroubledItems drops the oldest troubled items until no more
// than the configured number remain.
//
// Note: the caller must hold the mutex
func (service *Service) trimTroubledItems() {
	troubled := 0
	for _, item := range service.items {
		if item.State == TROUBLED {
			troubled++
		}
	}

	excess := troubled - service.config.RetainTroubled
	if excess <= 0 {
		return
	}

	kept := service.items[:0]
	for _, item := range service.items {
		if item.State == TROUBLED && excess > 0 {
			excess--
			continue
		}
		kept = append(kept, item)
	}
	service.items = kept
}

func (service *Service) context() context.Context {
	service.Lock()
	defer service.Unlock()
	return service.ctx
}
