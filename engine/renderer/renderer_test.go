package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestClipViewport(t *testing.T) {
	tests := []struct {
		name     string
		viewport common.Rect
		want     passRect
		ok       bool
	}{
		{"full surface", common.NewRect(0, 0, 800, 600), passRect{0, 0, 800, 600}, true},
		{"inset", common.NewRect(100, 50, 200, 100), passRect{100, 50, 200, 100}, true},
		{"overhanging right", common.NewRect(700, 0, 200, 600), passRect{700, 0, 100, 600}, true},
		{"negative origin", common.NewRect(-50, -50, 100, 100), passRect{0, 0, 50, 50}, true},
		{"outside", common.NewRect(900, 0, 100, 100), passRect{}, false},
		{"empty", common.NewRect(0, 0, 0, 100), passRect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := clipViewport(tt.viewport, 800, 600)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClipViewportWithoutSurface(t *testing.T) {
	_, ok := clipViewport(common.NewRect(0, 0, 10, 10), 0, 600)
	assert.False(t, ok)
}

func TestPresentModeMapping(t *testing.T) {
	assert.Equal(t, wgpu.PresentModeFifo, wgpuPresentMode(PresentModeVSync))
	assert.Equal(t, wgpu.PresentModeImmediate, wgpuPresentMode(PresentModeUncapped))
}

func TestNormalizeSampleCount(t *testing.T) {
	assert.Equal(t, MSAAOff, normalizeSampleCount(MSAAOff))
	assert.Equal(t, MSAA4x, normalizeSampleCount(MSAA4x))
	assert.Equal(t, MSAA4x, normalizeSampleCount(MSAASampleCount(8)))
}

func TestBuilderOptions(t *testing.T) {
	r := &renderer{}
	WithPresentMode(PresentModeUncapped)(r)
	WithMSAA(MSAAOff)(r)
	WithClearColor(0.2, 0.3, 0.4, 1)(r)
	WithForceSoftwareRenderer(true)(r)

	assert.Equal(t, PresentModeUncapped, r.presentMode)
	assert.Equal(t, MSAAOff, r.sampleCount)
	assert.Equal(t, [4]float64{0.2, 0.3, 0.4, 1}, r.clearColor)
	assert.True(t, r.forceFallbackAdapter)
}
