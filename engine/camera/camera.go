package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	node.Node

	mu *sync.Mutex

	fov      float32
	near     float32
	far      float32
	vFlipped bool

	viewport common.Rect
}

// Camera is a perspective camera whose pose is a node.Node.
// The camera looks along its local negative Z axis. The viewport is supplied by the render pass
// through Begin and is read by controllers once per tick.
type Camera interface {
	node.Node

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// VFlipped reports whether the projection flips the vertical axis.
	// Controllers invert their vertical pointer mapping when this is true.
	//
	// Returns:
	//   - bool: true if vertically flipped
	VFlipped() bool

	// Viewport returns the viewport captured by the most recent Begin call.
	//
	// Returns:
	//   - common.Rect: the current viewport (zero until Begin is called)
	Viewport() common.Rect

	// Aspect returns the aspect ratio of the current viewport (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio, 1 for an empty viewport
	Aspect() float32

	// ImagePlaneDistance returns the distance at which one world unit spans one viewport pixel
	// vertically, height / (2 * tan(fov / 2)). Used to pick a default orbit distance.
	//
	// Parameters:
	//   - viewport: the viewport to fit
	//
	// Returns:
	//   - float32: the distance, 0 for an empty viewport
	ImagePlaneDistance(viewport common.Rect) float32

	// ViewMatrix returns the world-to-camera matrix.
	//
	// Returns:
	//   - mgl32.Mat4: inverse of the node transform
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection for the current viewport.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Begin starts a render pass for this camera by capturing the viewport.
	//
	// Parameters:
	//   - viewport: the viewport rectangle in window pixels
	Begin(viewport common.Rect)

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetVFlipped sets whether the projection flips the vertical axis.
	//
	// Parameters:
	//   - flipped: true to flip
	SetVFlipped(flipped bool)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		Node: node.NewNode(),
		mu:   &sync.Mutex{},
		fov:  45.0 * (math.Pi / 180.0), // radians
		near: 0.1,
		far:  10000.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) VFlipped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vFlipped
}

func (c *cameraImpl) Viewport() common.Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport.Aspect()
}

func (c *cameraImpl) ImagePlaneDistance(viewport common.Rect) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if viewport.Empty() {
		return 0
	}
	return viewport.Height / (2 * float32(math.Tan(float64(c.fov)/2)))
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.Transform().Inv()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection()
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	view := c.ViewMatrix()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projection().Mul4(view)
}

func (c *cameraImpl) Begin(viewport common.Rect) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = viewport
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
}

func (c *cameraImpl) SetVFlipped(flipped bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vFlipped = flipped
}

// projection builds the perspective matrix for the current viewport.
// Caller must hold the mutex.
func (c *cameraImpl) projection() mgl32.Mat4 {
	p := mgl32.Perspective(c.fov, c.viewport.Aspect(), c.near, c.far)
	if c.vFlipped {
		p = mgl32.Scale3D(1, -1, 1).Mul4(p)
	}
	return p
}
