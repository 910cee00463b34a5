package media

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/floostack/transcoder/ffmpeg"
	"github.com/hbomb79/Videomania/pkg/logger"
)

const unknownCodec = "Unknown"

// Metadata is the technical information extracted from a video file.
type Metadata struct {
	Duration   float64
	Width      int
	Height     int
	VideoCodec string
	AudioCodec string
	FrameRate  float64
	BitRate    int64
	FileSize   int64

	HasVideoStream bool
}

type probeStream struct {
	codecType    string
	codecName    string
	width        int
	height       int
	avgFrameRate string
	bitRate      string
}

// Probe extracts the technical metadata of the file at the path given using ffprobe.
// A file with no video stream is not an error; the video fields are left zeroed and
// the codecs reported as 'Unknown'.
func (processor *Processor) Probe(ctx context.Context, path string) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot probe %s: %w", path, err)
	}

	probed, err := ffmpeg.New(processor.transcoderConfig()).Input(path).GetMetadata()
	if err != nil {
		return nil, fmt.Errorf("failed to extract file metadata using ffprobe: %w", parseFfmpegError(err))
	}

	streams := make([]probeStream, 0)
	for _, s := range probed.GetStreams() {
		streams = append(streams, probeStream{
			codecType:    s.GetCodecType(),
			codecName:    s.GetCodecName(),
			width:        s.GetWidth(),
			height:       s.GetHeight(),
			avgFrameRate: s.GetAvgFrameRate(),
			bitRate:      s.GetBitRate(),
		})
	}

	format := probed.GetFormat()
	meta := summarize(format.GetDuration(), format.GetBitRate(), streams)
	meta.FileSize = info.Size()

	log.Emit(logger.INFO, "Probed %s: %.2fs %dx%d video=%s audio=%s\n", path, meta.Duration, meta.Width, meta.Height, meta.VideoCodec, meta.AudioCodec)
	return meta, nil
}

// summarize builds Metadata from the raw ffprobe output. The first video
// and first audio streams are used. If the video stream does not report
// it's own bit rate (common for mkv/webm) the container bit rate is used.
func summarize(duration string, formatBitRate string, streams []probeStream) *Metadata {
	meta := &Metadata{
		Duration:   parseFloat(duration),
		VideoCodec: unknownCodec,
		AudioCodec: unknownCodec,
	}

	var videoFound, audioFound bool
	for _, stream := range streams {
		switch stream.codecType {
		case "video":
			if videoFound {
				continue
			}
			videoFound = true

			meta.HasVideoStream = true
			meta.Width = stream.width
			meta.Height = stream.height
			meta.FrameRate = parseFrameRate(stream.avgFrameRate)
			meta.BitRate = parseInt(stream.bitRate)
			if stream.codecName != "" {
				meta.VideoCodec = stream.codecName
			}
		case "audio":
			if audioFound {
				continue
			}
			audioFound = true

			if stream.codecName != "" {
				meta.AudioCodec = stream.codecName
			}
		}
	}

	if meta.HasVideoStream && meta.BitRate == 0 {
		meta.BitRate = parseInt(formatBitRate)
	}

	return meta
}

// parseFrameRate parses ffprobe's rational frame rates (e.g. "30000/1001"). Plain
// numbers are also accepted. Unparseable or undefined ("0/0") rates yield zero.
func parseFrameRate(rate string) float64 {
	num, den, isRational := strings.Cut(rate, "/")
	if !isRational {
		return parseFloat(rate)
	}

	n, d := parseFloat(num), parseFloat(den)
	if d == 0 {
		return 0
	}

	return n / d
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}

	return v
}

func parseInt(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return v
}
