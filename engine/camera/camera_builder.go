package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

type CameraBuilderOption func(*cameraImpl)

// WithFov sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(fov float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = fov
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.far = far
	}
}

// WithVFlip sets whether the projection flips the vertical axis.
//
// Parameters:
//   - flipped: true to flip
//
// Returns:
//   - CameraBuilderOption: functional option to set the vertical flip
func WithVFlip(flipped bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.vFlipped = flipped
	}
}

// WithViewport sets the initial viewport, as if Begin had been called once.
//
// Parameters:
//   - viewport: viewport rectangle in window pixels
//
// Returns:
//   - CameraBuilderOption: functional option to set the viewport
func WithViewport(viewport common.Rect) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.viewport = viewport
	}
}
