package profiler

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickReportsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf))
	start := p.lastTime

	for i := 1; i < 30; i++ {
		assert.False(t, p.tickAt(start.Add(time.Duration(i)*10*time.Millisecond)))
	}
	assert.Empty(t, buf.String())

	require.True(t, p.tickAt(start.Add(time.Second)))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "frame stats", line["message"])
	assert.Equal(t, "profiler", line["component"])
	assert.InDelta(t, 30.0, line["fps"], 1e-9)
	assert.Equal(t, 0, p.frameCount)
}

func TestSetUpdateInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf))
	start := p.lastTime

	p.SetUpdateInterval(0)
	assert.Equal(t, time.Second, p.updateInterval)

	p.SetUpdateInterval(100 * time.Millisecond)
	assert.False(t, p.tickAt(start.Add(50*time.Millisecond)))
	assert.True(t, p.tickAt(start.Add(100*time.Millisecond)))
}
