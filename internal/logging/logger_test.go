package logging

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestNewLogger(t *testing.T) {
	log := NewLogger(Config{Level: "debug", NoColor: true})
	require.NotNil(t, log)
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewLoggerWithFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "rez.log")
	log := NewLogger(Config{Level: "info", LogFile: logFile, NoColor: true})
	require.NotNil(t, log)

	log.Info().Msg("hello")
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewTestLogger(&buf)
	log.Info().Str("tool", "houdini").Msg("found")

	assert.Contains(t, buf.String(), `"tool":"houdini"`)
	assert.Contains(t, buf.String(), "found")
}

func TestNop(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	log.Error().Msg("discarded")
}
