package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width  int
	height int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           [4]float64
}

// Renderer owns the GPU surface and the per-frame render pass that cameras draw into.
//
// A frame is BeginFrame, any number of draws into the pass, EndFrame, then Present.
// BeginFrame restricts the pass to a viewport so several cameras can share one surface.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	// This should be called when the window's framebuffer size changes.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Size returns the configured surface size.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// SetPresentMode changes how frames are presented and reconfigures the surface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// BeginFrame acquires the swapchain texture, clears it and begins the main render pass with
	// its viewport and scissor set to the given rectangle (clipped to the surface).
	// Must be paired with EndFrame.
	//
	// Parameters:
	//   - viewport: the region of the surface to draw into, in framebuffer pixels
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame(viewport common.Rect) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present after EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()

	// RegisterPipeline creates the GPU render pipeline for p. Pipelines read the view-projection
	// uniform at group 0 binding 0.
	//
	// Parameters:
	//   - p: the pipeline to create
	//
	// Returns:
	//   - error: an error if the pipeline could not be created
	RegisterPipeline(p pipeline.Pipeline) error

	// NewMesh uploads vertices into a GPU vertex buffer.
	//
	// Parameters:
	//   - label: debug label for the buffer
	//   - vertices: the vertices to upload
	//
	// Returns:
	//   - *Mesh: the uploaded mesh
	//   - error: an error if the buffer could not be created
	NewMesh(label string, vertices []pipeline.GPUVertex) (*Mesh, error)

	// SetViewProjection sets the camera matrix used by every draw of the coming frame.
	// The matrix uses an OpenGL-style clip volume (z in [-1, 1]); it is remapped to the
	// WebGPU depth range before upload.
	//
	// Parameters:
	//   - viewProjection: the camera view-projection matrix
	SetViewProjection(viewProjection mgl32.Mat4)

	// Draw records a draw of mesh with pipeline p into the current pass. Outside
	// BeginFrame/EndFrame it does nothing.
	//
	// Parameters:
	//   - p: a registered pipeline
	//   - mesh: the mesh to draw
	Draw(p pipeline.Pipeline, mesh *Mesh)

	// Release frees every GPU object owned by the renderer. The renderer is unusable afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type, window and options.
// Panics if no GPU adapter or device can be obtained.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window providing the surface descriptor and initial size
//   - options: a variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		presentMode: PresentModeVSync,
		sampleCount: MSAA4x,
		clearColor:  [4]float64{0.1, 0.1, 0.1, 1.0},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, r.sampleCount)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.backend.SetClearColor(r.clearColor)
	r.Resize(window.Width(), window.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimized
		return
	}
	r.mu.Lock()
	r.width = width
	r.height = height
	r.mu.Unlock()

	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.mu.Lock()
	r.presentMode = mode
	width, height := r.width, r.height
	r.mu.Unlock()

	r.backend.SetPresentMode(mode)
	if width > 0 && height > 0 {
		r.backend.ConfigureSurface(width, height)
	}
}

func (r *renderer) BeginFrame(viewport common.Rect) error {
	width, height := r.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("surface has no area")
	}
	rect, ok := clipViewport(viewport, width, height)
	if !ok {
		rect = passRect{width: float32(width), height: float32(height)}
	}
	return r.backend.BeginFrame(rect)
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) RegisterPipeline(p pipeline.Pipeline) error {
	return r.backend.RegisterPipeline(p)
}

func (r *renderer) NewMesh(label string, vertices []pipeline.GPUVertex) (*Mesh, error) {
	buf, err := r.backend.CreateVertexBuffer(label, pipeline.MarshalVertices(vertices))
	if err != nil {
		return nil, fmt.Errorf("failed to upload mesh %q: %w", label, err)
	}
	return &Mesh{label: label, buffer: buf, vertexCount: uint32(len(vertices))}, nil
}

func (r *renderer) SetViewProjection(viewProjection mgl32.Mat4) {
	r.backend.WriteViewProjection(pipeline.MarshalMat4(clipSpace(viewProjection)))
}

func (r *renderer) Draw(p pipeline.Pipeline, mesh *Mesh) {
	if mesh == nil {
		return
	}
	r.backend.Draw(p, mesh.buffer, mesh.vertexCount)
}

func (r *renderer) Release() {
	r.backend.Release()
}
