package internal

import (
	"context"
	"fmt"
	"sync"

	"github.com/hbomb79/Videomania/internal/api"
	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/database"
	"github.com/hbomb79/Videomania/internal/ingest"
	"github.com/hbomb79/Videomania/internal/media"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/pkg/logger"
)

var log = logger.Get("Core")

type RunnableService interface {
	Run(context.Context) error
}

// Videomania represents the top-level object for the server, and is responsible
// for connecting to the database and object store, and for running the
// ingest service, temp janitor and REST gateway.
type Videomania struct {
	config VideomaniaConfig
	db     database.Manager

	store         *metadata.Store
	blobs         *blob.Client
	processor     *media.Processor
	ingestService *ingest.Service
	janitor       *media.Janitor
	restGateway   *api.RestGateway
}

func New(config VideomaniaConfig) *Videomania {
	return &Videomania{config: config, db: database.New()}
}

// Run will start all of Videomania by bringing up all required services and connections, such as:
// - Database connection (and migrations)
// - Object store containers
// - Service instances
//
// This function will not return until Videomania is stopped.
// To stop Videomania, the provided context must be cancelled. Errors from which Videomania cannot recover
// will also cause Videomania to stop.
func (videomania *Videomania) Run(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var crashErr error
	crashOnce := sync.Once{}
	crashHandler := func(label string, err error) {
		log.Emit(logger.FATAL, "Service crash (%s)! %s\n", label, err.Error())
		crashOnce.Do(func() { crashErr = fmt.Errorf("%s crashed: %w", label, err) })
		cancel()
	}

	defer videomania.db.Close()
	if err := videomania.initialise(ctx); err != nil {
		return err
	}

	wg := &sync.WaitGroup{}
	videomania.spawnAsyncService(ctx, wg, videomania.ingestService, "ingest-service", crashHandler)
	videomania.spawnAsyncService(ctx, wg, videomania.janitor, "temp-janitor", crashHandler)
	videomania.spawnAsyncService(ctx, wg, videomania.restGateway, "rest-gateway", crashHandler)
	log.Emit(logger.SUCCESS, "Videomania services spawned!\n")

	wg.Wait()
	log.Emit(logger.STOP, "Videomania stopped\n")
	return crashErr
}

// initialise connects to the backing stores and constructs every service
// Videomania runs. Any failure here is fatal.
func (videomania *Videomania) initialise(ctx context.Context) error {
	config := videomania.config

	log.Emit(logger.NEW, "Connecting to database...\n")
	if err := videomania.db.Connect(ctx, config.Database); err != nil {
		return err
	}
	videomania.store = metadata.NewStore(videomania.db)

	log.Emit(logger.NEW, "Connecting to object store...\n")
	blobs, err := blob.New(ctx, config.Blob)
	if err != nil {
		return fmt.Errorf("failed to construct blob client: %w", err)
	}
	for _, container := range config.Blob.Containers() {
		if err := blobs.EnsureContainer(ctx, container); err != nil {
			return fmt.Errorf("failed to ensure container %s exists: %w", container, err)
		}
	}
	videomania.blobs = blobs

	processor, err := media.NewProcessor(ctx, config.Media)
	if err != nil {
		return fmt.Errorf("failed to construct media processor: %w", err)
	}
	videomania.processor = processor
	videomania.janitor = media.NewJanitor(config.Media, processor)

	targets := ingest.Targets{
		VideosContainer:     config.Blob.VideosContainer,
		ThumbnailsContainer: config.Blob.ThumbnailsContainer,
		ProcessedContainer:  config.Blob.ProcessedContainer,
		ThumbnailAtSeconds:  config.Media.ThumbnailAtSeconds,
		ResizeWidth:         config.Media.ResizeWidth,
		ResizeHeight:        config.Media.ResizeHeight,
	}
	workflow := ingest.NewWorkflow(config.Ingest, targets, videomania.store, blobs, processor)
	videomania.ingestService = ingest.New(config.Ingest, workflow, videomania.eventSources()...)

	videomania.restGateway = api.NewRestGateway(&config.RestConfig, api.Dependencies{
		Store:         videomania.store,
		Blobs:         blobs,
		IngestService: videomania.ingestService,
		BlobConfig:    config.Blob,
		AllowFLV:      config.Ingest.AllowFLV,
	})

	return nil
}

func (videomania *Videomania) eventSources() []ingest.EventSource {
	config := videomania.config
	sources := make([]ingest.EventSource, 0, 2)
	if config.Ingest.AMQPURL != "" {
		sources = append(sources, ingest.NewAMQPSource(config.Ingest, config.Blob.VideosContainer))
	}
	if config.Ingest.PollEnabled {
		sources = append(sources, ingest.NewPollingSource(config.Ingest, config.Blob.VideosContainer, videomania.blobs))
	}

	if len(sources) == 0 {
		log.Emit(logger.WARNING, "No ingest event sources configured (set INGEST_AMQP_URL or INGEST_POLL_ENABLED); uploaded videos will not be processed\n")
	}

	return sources
}

// spawnAsyncService will run the provided function/service as it's own
// go-routine, ensuring that the Videomania service waitgroup is updated correctly
func (videomania *Videomania) spawnAsyncService(ctx context.Context, wg *sync.WaitGroup, service RunnableService, serviceLabel string, crashHandler func(string, error)) {
	log.Emit(logger.NEW, "Spawning %s\n", serviceLabel)
	wg.Add(1)

	go func(label string, crash func(string, error)) {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				crash(label, fmt.Errorf("panic %v", r))
			}
		}()

		if err := service.Run(ctx); err != nil {
			crash(label, err)
		}
	}(serviceLabel, crashHandler)
}
