package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// WebGPU guarantees support for 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}

// wgpuPresentMode maps a PresentMode onto the wgpu present mode. Unknown modes are uncapped.
func wgpuPresentMode(mode PresentMode) wgpu.PresentMode {
	if mode == PresentModeVSync {
		return wgpu.PresentModeFifo
	}
	return wgpu.PresentModeImmediate
}

// normalizeSampleCount falls back to MSAA4x for counts WebGPU does not guarantee.
func normalizeSampleCount(count MSAASampleCount) MSAASampleCount {
	if count == MSAAOff {
		return MSAAOff
	}
	return MSAA4x
}

// passRect is a viewport clipped to the surface, in the units the render pass expects.
type passRect struct {
	x, y, width, height float32
}

// clipViewport intersects viewport with a surface of the given size. The second result is false
// when nothing of the viewport is visible, in which case the pass keeps the full surface.
func clipViewport(viewport common.Rect, surfaceWidth, surfaceHeight int) (passRect, bool) {
	if viewport.Empty() || surfaceWidth <= 0 || surfaceHeight <= 0 {
		return passRect{}, false
	}
	x0 := common.Clamp32(viewport.X, 0, float32(surfaceWidth))
	y0 := common.Clamp32(viewport.Y, 0, float32(surfaceHeight))
	x1 := common.Clamp32(viewport.X+viewport.Width, 0, float32(surfaceWidth))
	y1 := common.Clamp32(viewport.Y+viewport.Height, 0, float32(surfaceHeight))
	if x1-x0 < 1 || y1-y0 < 1 {
		return passRect{}, false
	}
	return passRect{x: x0, y: y0, width: x1 - x0, height: y1 - y0}, true
}
