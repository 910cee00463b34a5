package logger_test

import (
	"testing"

	"github.com/hbomb79/Videomania/pkg/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		want  logger.LogStatus
		known bool
	}{
		{"verbose", logger.VERBOSE, true},
		{" Debug ", logger.DEBUG, true},
		{"warn", logger.WARNING, true},
		{"ERROR", logger.ERROR, true},
		{"chatty", logger.INFO, false},
	}

	for _, tt := range tests {
		got, ok := logger.ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.known, ok, tt.in)
	}
}

func TestLogStatus_GlyphsAndColoursCoverEveryLevel(t *testing.T) {
	t.Parallel()

	for s := logger.VERBOSE; s <= logger.FATAL; s++ {
		assert.NotEmpty(t, s.String())
		assert.NotNil(t, s.Color())
		assert.Equal(t, int(s), s.Level())
	}
}
