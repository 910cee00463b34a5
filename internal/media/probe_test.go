package media

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrameRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rate     string
		expected float64
	}{
		{"30/1", 30},
		{"30000/1001", 30000.0 / 1001.0},
		{"25", 25},
		{"0/0", 0},
		{"", 0},
		{"abc/def", 0},
	}

	for _, test := range tests {
		assert.InDelta(t, test.expected, parseFrameRate(test.rate), 0.0001, "parsing %q", test.rate)
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	meta := summarize("12.500000", "900000", []probeStream{
		{codecType: "audio", codecName: "aac"},
		{codecType: "video", codecName: "h264", width: 1920, height: 1080, avgFrameRate: "30/1", bitRate: "800000"},
		{codecType: "video", codecName: "mjpeg", width: 320, height: 240},
		{codecType: "audio", codecName: "opus"},
	})

	assert.True(t, meta.HasVideoStream)
	assert.Equal(t, 12.5, meta.Duration)
	assert.Equal(t, 1920, meta.Width)
	assert.Equal(t, 1080, meta.Height)
	assert.Equal(t, "h264", meta.VideoCodec)
	assert.Equal(t, "aac", meta.AudioCodec)
	assert.Equal(t, 30.0, meta.FrameRate)
	assert.EqualValues(t, 800000, meta.BitRate)
}

func TestSummarize_FallsBackToContainerBitRate(t *testing.T) {
	t.Parallel()

	meta := summarize("3.0", "450000", []probeStream{
		{codecType: "video", codecName: "vp9", width: 640, height: 360, avgFrameRate: "24/1"},
	})

	assert.EqualValues(t, 450000, meta.BitRate)
	assert.Equal(t, unknownCodec, meta.AudioCodec)
}

func TestSummarize_NoVideoStream(t *testing.T) {
	t.Parallel()

	meta := summarize("60.0", "128000", []probeStream{{codecType: "audio", codecName: "mp3"}})

	assert.False(t, meta.HasVideoStream)
	assert.Equal(t, unknownCodec, meta.VideoCodec)
	assert.Equal(t, "mp3", meta.AudioCodec)
	assert.Zero(t, meta.Width)
	assert.Zero(t, meta.BitRate)
}

func TestParseFfmpegError(t *testing.T) {
	t.Parallel()

	raw := `failed to run ffmpeg: exit status 1 message: {"error": {"code": -2, "string": "No such file or directory"}}`
	assert.EqualError(t, parseFfmpegError(errors.New(raw)), "No such file or directory")

	assert.EqualError(t, parseFfmpegError(errors.New("plain failure")), "plain failure")
}
