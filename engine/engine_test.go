package engine

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingListener struct {
	ticks atomic.Int32
	mu    sync.Mutex
	last  float32
}

func (l *countingListener) Update(deltaTime float32) {
	l.ticks.Add(1)
	l.mu.Lock()
	l.last = deltaTime
	l.mu.Unlock()
}

type recordingView struct {
	viewports []common.Rect
}

func (v *recordingView) Begin(viewport common.Rect) {
	v.viewports = append(v.viewports, viewport)
}

func newHeadless(t *testing.T, options ...EngineBuilderOption) *engine {
	t.Helper()
	e, ok := NewEngine(options...).(*engine)
	require.True(t, ok)
	return e
}

func TestSubscribeIsIdempotent(t *testing.T) {
	e := newHeadless(t)
	l := &countingListener{}

	e.Subscribe(l)
	e.Subscribe(l)
	e.Subscribe(nil)
	assert.Len(t, e.listeners, 1)

	e.dispatch(0.016)
	assert.Equal(t, int32(1), l.ticks.Load())
	assert.InDelta(t, 0.016, l.last, 1e-6)
}

func TestUnsubscribeStopsTicks(t *testing.T) {
	e := newHeadless(t)
	l := &countingListener{}

	e.Subscribe(l)
	e.dispatch(0.016)
	e.Unsubscribe(l)
	e.Unsubscribe(l)
	e.dispatch(0.016)

	assert.Equal(t, int32(1), l.ticks.Load())
	assert.Empty(t, e.listeners)
}

func TestDispatchFansOutAndWaits(t *testing.T) {
	e := newHeadless(t, WithWorkers(3))
	listeners := make([]*countingListener, 8)
	for i := range listeners {
		listeners[i] = &countingListener{}
		e.Subscribe(listeners[i])
	}

	for range 5 {
		e.dispatch(0.01)
	}

	// dispatch returns only after every listener has run.
	for _, l := range listeners {
		assert.Equal(t, int32(5), l.ticks.Load())
	}
}

func TestRenderFrameBeginsViews(t *testing.T) {
	v := &recordingView{}
	e := newHeadless(t, WithView(v), WithView(nil))

	var rendered int
	e.SetRenderCallback(func(float32) { rendered++ })

	viewport := common.NewRect(0, 0, 640, 480)
	e.renderFrame(viewport, 0.016)
	e.renderFrame(viewport, 0.016)

	assert.Equal(t, []common.Rect{viewport, viewport}, v.viewports)
	assert.Equal(t, 2, rendered)
}

func TestAddView(t *testing.T) {
	e := newHeadless(t)
	v := &recordingView{}
	e.AddView(v)
	e.AddView(nil)

	e.renderFrame(common.NewRect(10, 10, 100, 100), 0)
	assert.Len(t, v.viewports, 1)
}

func TestTickRateOptions(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(0))
	assert.Equal(t, time.Second/30, tickInterval(30))
	assert.Equal(t, time.Duration(0), frameLimit(-1))
	assert.Equal(t, time.Second/120, frameLimit(120))

	e := newHeadless(t, WithTickRate(120), WithRenderFrameLimit(30), WithProfiling(true))
	assert.Equal(t, time.Second/120, e.engineTickRate)
	assert.Equal(t, time.Second/30, e.renderFrameLimit)
	assert.True(t, e.profilingEnabled)

	e.SetTickRate(-5)
	assert.Equal(t, time.Second/60, e.engineTickRate)
}

func TestQuitIsIdempotent(t *testing.T) {
	e := newHeadless(t)
	e.Quit()
	e.Quit()

	select {
	case <-e.quitChannel:
	default:
		t.Fatal("quit channel not closed")
	}
}
