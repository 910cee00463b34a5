package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/hbomb79/Videomania/internal/blob"
	"github.com/hbomb79/Videomania/internal/media"
	"github.com/hbomb79/Videomania/internal/metadata"
	"github.com/hbomb79/Videomania/pkg/logger"
)

type (
	VideoStore interface {
		FindVideoByBlobName(ctx context.Context, blobName string) (*metadata.Video, error)
		UpdateVideoProcessing(ctx context.Context, videoID string, userID string, patch metadata.ProcessingPatch) (*metadata.Video, error)
	}

	BlobStore interface {
		Download(ctx context.Context, container string, blobName string) (io.ReadCloser, int64, error)
		Upload(ctx context.Context, container string, blobName string, body io.Reader, contentType string) error
	}

	MediaProcessor interface {
		PersistStreamToTempFile(ctx context.Context, stream io.Reader, fileName string) (string, error)
		ExtractThumbnail(ctx context.Context, path string, atSeconds int) (string, error)
		TranscodeResize(ctx context.Context, path string, width int, height int) (string, error)
		Probe(ctx context.Context, path string) (*media.Metadata, error)
		DeleteTempFile(path string) error
	}

	// State is a step of the ingest workflow. A run progresses through the states
	// in order, ending in CleanedUp, unless it terminates early as Skipped.
	State int

	// Outcome is the result of a single workflow run which did not fail.
	Outcome struct {
		Skipped    bool
		SkipReason string

		VideoID       string
		ThumbnailBlob string
		ResizedBlob   string
		Status        string
	}

	// Workflow resolves a newly created blob to it's video record, derives a
	// thumbnail, a resized copy and technical metadata from it, and persists
	// the results against the video.
	Workflow struct {
		store     VideoStore
		blobs     BlobStore
		processor MediaProcessor
		targets   Targets
		allowFLV  bool
	}
)

const (
	Triggered State = iota
	Resolved
	Staged
	ThumbnailDone
	ResizeDone
	MetadataExtracted
	Persisted
	CleanedUp
	Skipped
	Troubled
)

var allowedVideoExtensions = []string{".mp4", ".webm", ".avi", ".mov", ".mkv"}

func NewWorkflow(config Config, targets Targets, store VideoStore, blobs BlobStore, processor MediaProcessor) *Workflow {
	return &Workflow{
		store:     store,
		blobs:     blobs,
		processor: processor,
		targets:   targets,
		allowFLV:  config.AllowFLV,
	}
}

// IsAllowed returns true if the file name has an extension the workflow will ingest.
func (workflow *Workflow) IsAllowed(fileName string) bool {
	return AllowedExtension(fileName, workflow.allowFLV)
}

// AllowedExtension returns true if the file name given has a recognised video
// extension. FLV files are only recognised when allowFLV is set.
func AllowedExtension(fileName string, allowFLV bool) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == ".flv" {
		return allowFLV
	}

	return slices.Contains(allowedVideoExtensions, ext)
}

// Run executes the ingest workflow for the blob event given. The observer (which may be
// nil) is notified as each state is reached.
//
// Thumbnail, resize and metadata extraction are independent best-effort steps: a failure
// in any of them is logged and the artifact is left absent, the remaining steps still run,
// and the partial result is persisted. Failures to stage the source or to persist the
// result are returned (after cleanup) so that the trigger can redeliver the event.
//
// Every temp file created by the run is removed before Run returns, regardless of outcome.
func (workflow *Workflow) Run(ctx context.Context, event BlobEvent, observer func(State)) (outcome *Outcome, err error) {
	notify := func(s State) {
		if observer != nil {
			observer(s)
		}
	}

	started := time.Now()
	defer func() {
		ingestDuration.Observe(time.Since(started).Seconds())
		switch {
		case err != nil, outcome == nil:
			ingestRuns.WithLabelValues(outcomeFailed).Inc()
		case outcome.Skipped:
			ingestRuns.WithLabelValues(outcomeSkipped).Inc()
		default:
			ingestRuns.WithLabelValues(outcomeProcessed).Inc()
		}
	}()

	notify(Triggered)
	log.Emit(logger.NEW, "Ingest triggered for %s (%d bytes)\n", event, event.Size)
	if event.Container != workflow.targets.VideosContainer {
		log.Emit(logger.WARNING, "Ignoring %s: not in the %s container\n", event, workflow.targets.VideosContainer)
		notify(Skipped)
		return &Outcome{Skipped: true, SkipReason: "foreign container"}, nil
	}
	if !workflow.IsAllowed(event.BlobName) {
		log.Emit(logger.WARNING, "Ignoring %s: %q is not a recognised video extension\n", event, filepath.Ext(event.BlobName))
		notify(Skipped)
		return &Outcome{Skipped: true, SkipReason: "extension not allowed"}, nil
	}

	video, err := workflow.store.FindVideoByBlobName(ctx, event.BlobName)
	if err != nil {
		if errors.Is(err, metadata.ErrNotFound) {
			log.Emit(logger.WARNING, "Skipping %s: no video record references this blob\n", event)
			notify(Skipped)
			return &Outcome{Skipped: true, SkipReason: "no video record"}, nil
		}

		return nil, fmt.Errorf("failed to resolve video for %s: %w", event, err)
	}
	notify(Resolved)

	run := &workflowRun{workflow: workflow, ctx: ctx, event: event}
	defer func() {
		run.cleanup()
		notify(CleanedUp)
	}()

	if err := run.stage(); err != nil {
		return nil, err
	}
	notify(Staged)

	outcome = &Outcome{VideoID: video.ID}
	patch := metadata.ProcessingPatch{}

	if name, ok := run.derive(artifactThumbnail, workflow.targets.ThumbnailsContainer, "image/jpeg", func() (string, error) {
		return workflow.processor.ExtractThumbnail(ctx, run.source, workflow.targets.ThumbnailAtSeconds)
	}); ok {
		outcome.ThumbnailBlob = name
		patch.ThumbnailURL = &outcome.ThumbnailBlob
	}
	notify(ThumbnailDone)

	if name, ok := run.derive(artifactResized, workflow.targets.ProcessedContainer, "video/mp4", func() (string, error) {
		return workflow.processor.TranscodeResize(ctx, run.source, workflow.targets.ResizeWidth, workflow.targets.ResizeHeight)
	}); ok {
		outcome.ResizedBlob = name
		patch.ResizedVideoURL = &outcome.ResizedBlob
	}
	notify(ResizeDone)

	technical, err := workflow.processor.Probe(ctx, run.source)
	if err != nil {
		log.Emit(logger.WARNING, "Metadata extraction for %s failed, continuing without it: %v\n", event, err)
	} else {
		patch.Metadata = toTechnicalMetadata(technical)
	}
	recordArtifact(artifactMetadata, err == nil)
	notify(MetadataExtracted)

	outcome.Status = metadata.StatusPartial
	if patch.ThumbnailURL != nil && patch.ResizedVideoURL != nil && patch.Metadata != nil {
		outcome.Status = metadata.StatusCompleted
	}

	processed := true
	processedAt := time.Now().UTC()
	patch.Processed = &processed
	patch.ProcessedAt = &processedAt
	patch.Status = &outcome.Status
	if _, err := workflow.store.UpdateVideoProcessing(ctx, video.ID, video.UserID, patch); err != nil {
		return nil, fmt.Errorf("failed to persist processing result for video %s: %w", video.ID, err)
	}
	notify(Persisted)

	log.Emit(logger.SUCCESS, "Ingest of %s complete (video=%s status=%s)\n", event, video.ID, outcome.Status)
	return outcome, nil
}

// workflowRun holds the state of a single run which must be released when it
// completes, namely the temp files it has created.
type workflowRun struct {
	workflow  *Workflow
	ctx       context.Context
	event     BlobEvent
	source    string
	tempFiles []string
}

func (run *workflowRun) stage() error {
	stream, _, err := run.workflow.blobs.Download(run.ctx, run.event.Container, run.event.BlobName)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", run.event, err)
	}
	defer stream.Close()

	path, err := run.workflow.processor.PersistStreamToTempFile(run.ctx, stream, run.event.BlobName)
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", run.event, err)
	}

	run.source = path
	run.tempFiles = append(run.tempFiles, path)
	return nil
}

// derive runs a single derivation and uploads the resulting artifact to the container
// given, under the artifacts file name. Returns the blob name of the artifact and true
// if both the derivation and upload succeeded.
func (run *workflowRun) derive(artifact string, container string, contentType string, derivation func() (string, error)) (string, bool) {
	path, err := derivation()
	if err != nil {
		log.Emit(logger.WARNING, "Unable to derive %s for %s: %v\n", artifact, run.event, err)
		recordArtifact(artifact, false)
		return "", false
	}
	run.tempFiles = append(run.tempFiles, path)

	blobName := filepath.Base(path)
	if err := run.upload(container, blobName, path, contentType); err != nil {
		log.Emit(logger.WARNING, "Unable to upload %s for %s: %v\n", artifact, run.event, err)
		recordArtifact(artifact, false)
		return "", false
	}

	recordArtifact(artifact, true)
	return blobName, true
}

func (run *workflowRun) upload(container string, blobName string, path string, contentType string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return run.workflow.blobs.Upload(run.ctx, container, blobName, file, contentType)
}

func (run *workflowRun) cleanup() {
	for _, path := range run.tempFiles {
		if err := run.workflow.processor.DeleteTempFile(path); err != nil {
			log.Emit(logger.ERROR, "Failed to clean up temp file %s: %v\n", path, err)
		}
	}
	run.tempFiles = nil
}

func toTechnicalMetadata(m *media.Metadata) *metadata.TechnicalMetadata {
	return &metadata.TechnicalMetadata{
		Duration:   m.Duration,
		Width:      m.Width,
		Height:     m.Height,
		VideoCodec: m.VideoCodec,
		AudioCodec: m.AudioCodec,
		FrameRate:  m.FrameRate,
		BitRate:    m.BitRate,
	}
}

func (s State) String() string {
	switch s {
	case Triggered:
		return "TRIGGERED"
	case Resolved:
		return "RESOLVED"
	case Staged:
		return "STAGED"
	case ThumbnailDone:
		return "THUMBNAIL_DONE"
	case ResizeDone:
		return "RESIZE_DONE"
	case MetadataExtracted:
		return "METADATA_EXTRACTED"
	case Persisted:
		return "PERSISTED"
	case CleanedUp:
		return "CLEANED_UP"
	case Skipped:
		return "SKIPPED"
	case Troubled:
		return "TROUBLED"
	}

	return fmt.Sprintf("UNKNOWN[%d]", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var _ BlobStore = (*blob.Client)(nil)
