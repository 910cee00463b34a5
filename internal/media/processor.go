package media

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/hbomb79/Videomania/pkg/logger"
)

var (
	// ErrNoVideoStream is returned when a derivation is requested for a source
	// which has no decodable video stream. Callers should treat this as a soft
	// failure: the artifact is simply absent.
	ErrNoVideoStream = errors.New("source has no video stream")

	log = logger.Get("Media")

	ffmpegMessageMatcher = regexp.MustCompile(`(?s)message: ({.*})`)
)

// Processor wraps the external ffmpeg/ffprobe toolchain. A Processor is only
// obtainable through NewProcessor, which verifies the toolchain is usable;
// there is no lazy initialisation.
type Processor struct {
	config      Config
	ffmpegPath  string
	ffprobePath string
	tempDir     string

	// Temp files created by this processor which have not yet been deleted
	liveMutex sync.Mutex
	live      map[string]struct{}
}

// NewProcessor resolves and verifies the ffmpeg and ffprobe binaries, and
// creates the temp directory used for staging. It should be called exactly
// once at startup, and the returned processor shared.
func NewProcessor(ctx context.Context, config Config) (*Processor, error) {
	ffmpegPath, err := resolveBinary(ctx, config.FfmpegBinPath)
	if err != nil {
		return nil, err
	}

	ffprobePath, err := resolveBinary(ctx, config.FfprobeBinPath)
	if err != nil {
		return nil, err
	}

	tempDir := config.ResolvedTempDir()
	if err := os.MkdirAll(tempDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create media temp dir %s: %w", tempDir, err)
	}

	log.Emit(logger.SUCCESS, "Media toolchain ready (ffmpeg=%s, ffprobe=%s, temp=%s)\n", ffmpegPath, ffprobePath, tempDir)
	return &Processor{
		config:      config,
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		tempDir:     tempDir,
	}, nil
}

func (processor *Processor) TempDir() string { return processor.tempDir }

// InUse returns true if the path is a temp file created by this processor
// which has not yet been passed to DeleteTempFile.
func (processor *Processor) InUse(path string) bool {
	processor.liveMutex.Lock()
	defer processor.liveMutex.Unlock()

	_, ok := processor.live[filepath.Clean(path)]
	return ok
}

func (processor *Processor) trackTempFile(path string) {
	processor.liveMutex.Lock()
	defer processor.liveMutex.Unlock()

	if processor.live == nil {
		processor.live = make(map[string]struct{})
	}
	processor.live[filepath.Clean(path)] = struct{}{}
}

func (processor *Processor) untrackTempFile(path string) {
	processor.liveMutex.Lock()
	defer processor.liveMutex.Unlock()

	delete(processor.live, filepath.Clean(path))
}

func resolveBinary(ctx context.Context, name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("media toolchain binary %q could not be found: %w", name, err)
	}

	if out, err := exec.CommandContext(ctx, path, "-version").CombinedOutput(); err != nil {
		return "", fmt.Errorf("media toolchain binary %s failed to run: %w (%s)", path, err, strings.TrimSpace(string(out)))
	}

	return path, nil
}

func (processor *Processor) transcoderConfig() *ffmpeg.Config {
	return &ffmpeg.Config{
		ProgressEnabled: true,
		FfmpegBinPath:   processor.ffmpegPath,
		FfprobeBinPath:  processor.ffprobePath,
	}
}

// runFfmpeg executes a single ffmpeg command, blocking until it exits. The
// transcoder does not surface the exit status of ffmpeg, so the existence of
// a non-empty output file is used to determine success. Any partial output
// is removed when the command fails.
func (processor *Processor) runFfmpeg(ctx context.Context, input string, output string, opts *ffmpeg.Options) (err error) {
	_ = os.Remove(output)
	processor.trackTempFile(output)
	defer func() {
		if err != nil {
			processor.untrackTempFile(output)
		}
	}()

	transcoder := ffmpeg.
		New(processor.transcoderConfig()).
		Input(input).
		Output(output).
		WithContext(&ctx)

	progressChannel, err := transcoder.Start(opts)
	if err != nil {
		return parseFfmpegError(err)
	}

	for prog := range progressChannel {
		log.Verbosef("ffmpeg %s -> %s: %.0f%%\n", filepath.Base(input), filepath.Base(output), prog.GetProgress())
	}

	if err := ctx.Err(); err != nil {
		_ = os.Remove(output)
		return err
	}

	if info, err := os.Stat(output); err != nil || info.Size() == 0 {
		_ = os.Remove(output)
		return fmt.Errorf("ffmpeg exited without producing output %s", output)
	}

	return nil
}

// derivedPath returns the temp path for an artifact derived from the source,
// formed from the source file name (without extension) and the suffix given.
func (processor *Processor) derivedPath(source string, suffix string) string {
	base := filepath.Base(source)
	return filepath.Join(processor.tempDir, strings.TrimSuffix(base, filepath.Ext(base))+suffix)
}

// parseFfmpegError picks the relevant message out of the (very verbose)
// error returned by the transcoder. If no message can be found the error
// is returned unchanged.
func parseFfmpegError(err error) error {
	groups := ffmpegMessageMatcher.FindStringSubmatch(err.Error())
	if len(groups) < 2 {
		return err
	}

	var out struct {
		Error struct {
			String string `json:"string"`
		} `json:"error"`
	}
	if jsonErr := json.Unmarshal([]byte(groups[1]), &out); jsonErr != nil || out.Error.String == "" {
		return errors.New(groups[1])
	}

	return errors.New(out.Error.String)
}
