package window

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/stretchr/testify/assert"
)

func newDetachedWindow() *engineWindow {
	return &engineWindow{
		mu:     &sync.Mutex{},
		input:  input.NewState(),
		title:  "default",
		width:  1280,
		height: 720,
	}
}

func TestRequestCloseWithoutPlatformWindow(t *testing.T) {
	w := newDetachedWindow()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.RequestClose()
		}()
	}
	wg.Wait()

	assert.False(t, w.IsRunning())
	assert.Nil(t, w.SurfaceDescriptor())
	assert.Error(t, w.Close())
}

func TestBuilderOptions(t *testing.T) {
	w := newDetachedWindow()

	WithTitle("")(w)
	assert.Equal(t, "default", w.title)
	WithTitle("orbit")(w)
	assert.Equal(t, "orbit", w.title)

	WithSize(0, 480)(w)
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 480, w.Height())

	WithSizeLimits(320, 0, 3840, -5)(w)
	assert.Equal(t, 320, w.minWidth)
	assert.Equal(t, -1, w.minHeight)
	assert.Equal(t, 3840, w.maxWidth)
	assert.Equal(t, -1, w.maxHeight)
}

func TestViewportFollowsSize(t *testing.T) {
	w := newDetachedWindow()
	w.setSize(800, 600)

	vp := w.Viewport()
	assert.Equal(t, float32(800), vp.Width)
	assert.Equal(t, float32(600), vp.Height)
	assert.Equal(t, float32(0), vp.X)
}
