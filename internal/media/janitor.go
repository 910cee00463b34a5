package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/robfig/cron/v3"
)

type liveFiles interface {
	InUse(path string) bool
}

// Janitor periodically removes stale files from the media temp directory. Each
// ingestion cleans up after itself, so the only files the janitor should ever
// find are those orphaned by a process which exited mid-ingest. Files still
// held by a running ingest are never removed, however old they are.
type Janitor struct {
	tempDir  string
	maxAge   time.Duration
	schedule string
	live     liveFiles
}

// NewJanitor creates a janitor for the configured temp directory. The live
// files provided (usually the Processor) may be nil.
func NewJanitor(config Config, live liveFiles) *Janitor {
	return &Janitor{
		tempDir:  config.ResolvedTempDir(),
		maxAge:   config.TempMaxAge(),
		schedule: config.TempSweepSchedule,
		live:     live,
	}
}

// Run schedules the sweep and blocks until the context is cancelled. An initial
// sweep is performed immediately.
func (janitor *Janitor) Run(ctx context.Context) error {
	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))
	if _, err := scheduler.AddFunc(janitor.schedule, janitor.sweepNow); err != nil {
		return fmt.Errorf("invalid temp sweep schedule %q: %w", janitor.schedule, err)
	}

	janitor.sweepNow()
	scheduler.Start()
	log.Emit(logger.INFO, "Temp janitor started (schedule=%q, maxAge=%s)\n", janitor.schedule, janitor.maxAge)

	<-ctx.Done()
	<-scheduler.Stop().Done()
	log.Emit(logger.STOP, "Temp janitor stopped\n")
	return nil
}

func (janitor *Janitor) sweepNow() {
	if removed, err := janitor.Sweep(time.Now()); err != nil {
		log.Emit(logger.ERROR, "Temp sweep failed: %v\n", err)
	} else if removed > 0 {
		log.Emit(logger.REMOVE, "Temp sweep removed %d stale file(s)\n", removed)
	}
}

// Sweep removes every regular file in the temp dir last modified more than the
// configured max age before 'now' and not in use, returning the number of files removed.
func (janitor *Janitor) Sweep(now time.Time) (int, error) {
	entries, err := os.ReadDir(janitor.tempDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}

		return 0, fmt.Errorf("failed to read temp dir %s: %w", janitor.tempDir, err)
	}

	removed := 0
	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}

		if now.Sub(info.ModTime()) <= janitor.maxAge {
			continue
		}

		path := filepath.Join(janitor.tempDir, entry.Name())
		if janitor.live != nil && janitor.live.InUse(path) {
			log.Verbosef("Skipping stale temp file %s as it is still in use\n", path)
			continue
		}

		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			continue
		}

		log.Debugf("Removed stale temp file %s\n", path)
		removed++
	}

	return removed, errors.Join(errs...)
}

// cronLogger routes the schedulers own logging through the Media logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Verbosef("cron: %s %v\n", msg, keysAndValues)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Errorf("cron: %s: %v %v\n", msg, err, keysAndValues)
}
