package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"verbose", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSONOutputHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(Config{Level: LevelWarn, Output: &buf, App: "test"}), "camera")

	logger.Info().Msg("hidden")
	logger.Warn().Float32("drag", 0.9).Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "camera", entry["component"])
	assert.Equal(t, "test", entry["app"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Console: true, Output: &buf})

	logger.Debug().Msg("gesture started")
	assert.Contains(t, buf.String(), "gesture started")
	assert.Contains(t, buf.String(), "oxy-orbit")
}
