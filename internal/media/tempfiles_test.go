package media

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hbomb79/Videomania/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T) *Processor {
	dir := t.TempDir()
	return &Processor{
		tempDir: dir,
		config: Config{
			TempDir:              dir,
			ThumbnailMaxWidth:    640,
			ThumbnailMaxHeight:   360,
			ThumbnailJPEGQuality: 85,
		},
	}
}

func TestNewProcessor_MissingBinary(t *testing.T) {
	t.Parallel()

	_, err := NewProcessor(context.Background(), Config{
		FfmpegBinPath:  "videomania-definitely-not-ffmpeg",
		FfprobeBinPath: "videomania-definitely-not-ffprobe",
		TempDir:        t.TempDir(),
	})
	assert.ErrorContains(t, err, "videomania-definitely-not-ffmpeg")
}

func TestPersistStreamToTempFile(t *testing.T) {
	t.Parallel()
	processor := newTestProcessor(t)

	path, err := processor.PersistStreamToTempFile(context.Background(), strings.NewReader("video bytes"), "nested/dir/abc_cat.mp4")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(processor.TempDir(), "abc_cat.mp4"), path, "only the base name must be used")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "video bytes", string(content))

	require.NoError(t, processor.DeleteTempFile(path))
	assert.NoFileExists(t, path)
	assert.NoError(t, processor.DeleteTempFile(path), "deleting a missing temp file is a no-op")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stream reset") }

func TestPersistStreamToTempFile_FailureLeavesNothing(t *testing.T) {
	t.Parallel()
	processor := newTestProcessor(t)

	_, err := processor.PersistStreamToTempFile(context.Background(), failingReader{}, "cat.mp4")
	assert.ErrorContains(t, err, "stream reset")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = processor.PersistStreamToTempFile(ctx, strings.NewReader("video bytes"), "dog.mp4")
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(processor.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDerivedPath(t *testing.T) {
	t.Parallel()
	processor := newTestProcessor(t)

	assert.Equal(t, filepath.Join(processor.TempDir(), "abc_cat_thumbnail.jpg"), processor.derivedPath("/elsewhere/abc_cat.mp4", thumbnailSuffix))
	assert.Equal(t, filepath.Join(processor.TempDir(), "abc_cat_resized.mp4"), processor.derivedPath("abc_cat.webm", resizedSuffix))
}

func TestFitImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary              string
		width, height        int
		expectedW, expectedH int
	}{
		{"landscape is scaled down", 1920, 1080, 640, 360},
		{"portrait is bounded by height", 1080, 1920, 203, 360},
		{"small images are not enlarged", 320, 180, 320, 180},
	}

	for _, test := range tests {
		test := test
		t.Run(test.summary, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "frame.jpg")
			require.NoError(t, imaging.Save(imaging.New(test.width, test.height, color.White), path))

			require.NoError(t, fitImage(path, 640, 360, 85))

			fitted, err := imaging.Open(path)
			require.NoError(t, err)
			assert.Equal(t, test.expectedW, fitted.Bounds().Dx())
			assert.Equal(t, test.expectedH, fitted.Bounds().Dy())
		})
	}
}

func TestJanitorSweep(t *testing.T) {
	t.Parallel()

	dir, files := helpers.TempDirWithFiles(t,
		helpers.TempFile{Name: "stale.mp4", Age: 3 * time.Hour},
		helpers.TempFile{Name: "stale_thumbnail.jpg", Age: 3 * time.Hour},
		helpers.TempFile{Name: "fresh.mp4"},
	)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), os.ModePerm))

	janitor := NewJanitor(Config{TempDir: dir, TempMaxAgeMinutes: 120, TempSweepSchedule: "@every 30m"}, nil)
	removed, err := janitor.Sweep(time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, files[0])
	assert.NoFileExists(t, files[1])
	assert.FileExists(t, files[2])
	assert.DirExists(t, filepath.Join(dir, "subdir"))
}

func TestJanitorSweep_SkipsFilesInUse(t *testing.T) {
	t.Parallel()
	processor := newTestProcessor(t)

	staged, err := processor.PersistStreamToTempFile(context.Background(), strings.NewReader("long transcode"), "abc_cat.mp4")
	require.NoError(t, err)
	released, err := processor.PersistStreamToTempFile(context.Background(), strings.NewReader("done"), "abc_dog.mp4")
	require.NoError(t, err)
	require.NoError(t, processor.DeleteTempFile(released))

	orphan := filepath.Join(processor.TempDir(), "orphan.mp4")
	require.NoError(t, os.WriteFile(orphan, []byte("orphan"), os.ModePerm))

	janitor := NewJanitor(processor.config, processor)
	removed, err := janitor.Sweep(time.Now().Add(3 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.FileExists(t, staged, "files of an in-flight ingest must survive the sweep")
	assert.NoFileExists(t, orphan)
	assert.True(t, processor.InUse(staged))

	require.NoError(t, processor.DeleteTempFile(staged))
	assert.False(t, processor.InUse(staged))
}

func TestJanitorSweep_MissingDir(t *testing.T) {
	t.Parallel()

	janitor := NewJanitor(Config{TempDir: filepath.Join(t.TempDir(), "missing"), TempMaxAgeMinutes: 1}, nil)
	removed, err := janitor.Sweep(time.Now())
	assert.NoError(t, err)
	assert.Zero(t, removed)
}

func TestJanitorRun_InvalidSchedule(t *testing.T) {
	t.Parallel()

	janitor := NewJanitor(Config{TempDir: t.TempDir(), TempSweepSchedule: "whenever"}, nil)
	assert.ErrorContains(t, janitor.Run(context.Background()), "invalid temp sweep schedule")
}
