package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/node"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// OrbitControllerOption is a functional option for configuring an OrbitController.
type OrbitControllerOption func(*orbitControllerImpl)

// WithTickSource sets the tick source the controller subscribes to while mouse input is enabled.
// Without one, the caller drives the controller by calling Update each frame.
//
// Parameters:
//   - source: the tick source
//
// Returns:
//   - OrbitControllerOption: functional option to set the tick source
func WithTickSource(source TickSource) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.ticks = source
	}
}

// WithLogger sets the logger used for gesture lifecycle events.
//
// Parameters:
//   - logger: zerolog logger
//
// Returns:
//   - OrbitControllerOption: functional option to set the logger
func WithLogger(logger zerolog.Logger) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.logger = logger
	}
}

// WithTarget sets the initial orbit point.
//
// Parameters:
//   - x, y, z: world-space coordinates of the target
//
// Returns:
//   - OrbitControllerOption: functional option to set the target point
func WithTarget(x, y, z float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.ownTarget.SetPosition(mgl32.Vec3{x, y, z})
		c.target = c.ownTarget
	}
}

// WithTargetNode orbits an external node from the start.
//
// Parameters:
//   - n: the node to orbit
//
// Returns:
//   - OrbitControllerOption: functional option to set the target node
func WithTargetNode(n node.Node) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		if n != nil {
			c.target = n
		}
	}
}

// WithDistance sets an explicit initial orbit distance, which also suppresses auto distance
// until SetAutoDistance(true) is called.
//
// Parameters:
//   - distance: orbit distance, must be > 0
//
// Returns:
//   - OrbitControllerOption: functional option to set the distance
func WithDistance(distance float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.initialDistance = distance
	}
}

// WithDrag sets the per-tick momentum multiplier.
//
// Parameters:
//   - drag: decay factor in [0, 1)
//
// Returns:
//   - OrbitControllerOption: functional option to set the drag
func WithDrag(drag float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.setDrag(drag)
	}
}

// WithRotationSensitivity sets the rotation sensitivity (1 = 180 degrees across the short side).
//
// Parameters:
//   - sensitivity: rotation sensitivity, must be > 0
//
// Returns:
//   - OrbitControllerOption: functional option to set the rotation sensitivity
func WithRotationSensitivity(sensitivity float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		setPositive(&c.sensitivityRot, sensitivity)
	}
}

// WithPanSensitivity sets the planar pan sensitivity.
//
// Parameters:
//   - sensitivity: pan sensitivity, must be > 0
//
// Returns:
//   - OrbitControllerOption: functional option to set the pan sensitivity
func WithPanSensitivity(sensitivity float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		setPositive(&c.sensitivityXY, sensitivity)
	}
}

// WithDollySensitivity sets the dolly sensitivity.
//
// Parameters:
//   - sensitivity: dolly sensitivity, must be > 0
//
// Returns:
//   - OrbitControllerOption: functional option to set the dolly sensitivity
func WithDollySensitivity(sensitivity float32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		setPositive(&c.sensitivityZ, sensitivity)
	}
}

// WithTranslationKey sets the key that turns a left drag into a pan.
//
// Parameters:
//   - keyCode: virtual key code
//
// Returns:
//   - OrbitControllerOption: functional option to set the translation key
func WithTranslationKey(keyCode uint32) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.translationKey = keyCode
	}
}

// WithMouseInput sets whether the controller starts with mouse input enabled (default true).
//
// Parameters:
//   - enabled: true to subscribe on construction
//
// Returns:
//   - OrbitControllerOption: functional option to set the initial input state
func WithMouseInput(enabled bool) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.startEnabled = enabled
	}
}

// WithMouseMiddleButton sets whether a middle drag pans (default true).
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - OrbitControllerOption: functional option to set the middle button flag
func WithMouseMiddleButton(enabled bool) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.middleButtonEnabled = enabled
	}
}

// WithAutoDistance sets whether the distance is derived from the viewport on the first tick (default true).
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - OrbitControllerOption: functional option to set the auto distance flag
func WithAutoDistance(enabled bool) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.autoDistance = enabled
	}
}

// WithUpwardsFix sets whether rotations keep the camera's right axis level (default true).
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - OrbitControllerOption: functional option to set the upright correction flag
func WithUpwardsFix(enabled bool) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.fixUpwards = enabled
	}
}

// WithRoll sets whether drags outside the arcball disc roll the camera (default false).
//
// Parameters:
//   - enabled: true to enable
//
// Returns:
//   - OrbitControllerOption: functional option to set the roll flag
func WithRoll(enabled bool) OrbitControllerOption {
	return func(c *orbitControllerImpl) {
		c.rollEnabled = enabled
	}
}
