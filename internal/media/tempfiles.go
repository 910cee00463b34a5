package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hbomb79/Videomania/pkg/logger"
)

// PersistStreamToTempFile copies the stream to a file inside of the processors temp
// directory. Only the base of the file name given is used. The path to the new file
// is returned; on failure no file is left behind.
func (processor *Processor) PersistStreamToTempFile(ctx context.Context, stream io.Reader, fileName string) (string, error) {
	name := filepath.Base(fileName)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid temp file name %q", fileName)
	}

	path := filepath.Join(processor.tempDir, name)
	processor.trackTempFile(path)
	file, err := os.Create(path)
	if err != nil {
		processor.untrackTempFile(path)
		return "", fmt.Errorf("failed to create temp file %s: %w", path, err)
	}

	written, err := io.Copy(file, &contextReader{ctx: ctx, reader: stream})
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		processor.untrackTempFile(path)
		return "", fmt.Errorf("failed to persist stream to %s: %w", path, err)
	}

	log.Emit(logger.NEW, "Stream saved: %s (%.2f MB)\n", path, float64(written)/(1024*1024))
	return path, nil
}

// DeleteTempFile removes the file at the path given, after which the janitor is
// free to sweep it. A file which does not exist is not an error.
func (processor *Processor) DeleteTempFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove temp file %s: %w", path, err)
	}
	processor.untrackTempFile(path)

	log.Emit(logger.REMOVE, "Cleaned up: %s\n", path)
	return nil
}

// contextReader stops a copy as soon as the context is cancelled.
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	return r.reader.Read(p)
}
