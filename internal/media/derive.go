package media

import (
	"context"
	"fmt"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/floostack/transcoder/ffmpeg"
	"github.com/hbomb79/Videomania/pkg/logger"
)

const (
	thumbnailSuffix = "_thumbnail.jpg"
	resizedSuffix   = "_resized.mp4"
)

// ExtractThumbnail captures a single frame from the video at the timestamp given,
// scaling it down to fit within the configured thumbnail bounds. The path to the
// JPEG thumbnail is returned. If the video is shorter than the timestamp, the
// first frame is used instead.
func (processor *Processor) ExtractThumbnail(ctx context.Context, path string, atSeconds int) (string, error) {
	meta, err := processor.requireVideoStream(ctx, path)
	if err != nil {
		return "", err
	}

	if atSeconds < 0 || (meta.Duration > 0 && float64(atSeconds) >= meta.Duration) {
		atSeconds = 0
	}

	output := processor.derivedPath(path, thumbnailSuffix)
	seek := strconv.Itoa(atSeconds)
	frames := 1
	overwrite := true
	if err := processor.runFfmpeg(ctx, path, output, &ffmpeg.Options{
		SeekTime:  &seek,
		Vframes:   &frames,
		Overwrite: &overwrite,
	}); err != nil {
		return "", fmt.Errorf("failed to extract thumbnail from %s: %w", path, err)
	}

	cfg := processor.config
	if err := fitImage(output, cfg.ThumbnailMaxWidth, cfg.ThumbnailMaxHeight, cfg.ThumbnailJPEGQuality); err != nil {
		_ = processor.DeleteTempFile(output)
		return "", fmt.Errorf("failed to scale thumbnail %s: %w", output, err)
	}

	log.Emit(logger.SUCCESS, "Thumbnail generated: %s\n", output)
	return output, nil
}

// TranscodeResize re-encodes the video to the resolution given, returning the path
// to the resized MP4.
func (processor *Processor) TranscodeResize(ctx context.Context, path string, width int, height int) (string, error) {
	if _, err := processor.requireVideoStream(ctx, path); err != nil {
		return "", err
	}

	output := processor.derivedPath(path, resizedSuffix)
	filter := fmt.Sprintf("scale=%d:%d", width, height)
	format := "mp4"
	overwrite := true
	if err := processor.runFfmpeg(ctx, path, output, &ffmpeg.Options{
		VideoFilter:  &filter,
		OutputFormat: &format,
		Overwrite:    &overwrite,
	}); err != nil {
		return "", fmt.Errorf("failed to resize %s to %dx%d: %w", path, width, height, err)
	}

	log.Emit(logger.SUCCESS, "Video resized to %dx%d: %s\n", width, height, output)
	return output, nil
}

func (processor *Processor) requireVideoStream(ctx context.Context, path string) (*Metadata, error) {
	meta, err := processor.Probe(ctx, path)
	if err != nil {
		return nil, err
	}

	if !meta.HasVideoStream {
		log.Emit(logger.WARNING, "No video stream found in %s\n", path)
		return nil, ErrNoVideoStream
	}

	return meta, nil
}

// fitImage scales the image at the path given down (preserving aspect ratio) so that
// it fits inside of the bounds provided, and re-encodes it in place. Images already
// inside of the bounds are not enlarged.
func fitImage(path string, maxWidth int, maxHeight int, quality int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return err
	}

	fitted := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	return imaging.Save(fitted, path, imaging.JPEGQuality(quality))
}
