package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

// TickSource delivers per-frame ticks to subscribed listeners.
// Subscribe and Unsubscribe must be idempotent.
type TickSource interface {
	// Subscribe registers a listener for future ticks.
	//
	// Parameters:
	//   - listener: the listener to register
	Subscribe(listener common.TickListener)

	// Unsubscribe removes a listener. Removing an unknown listener does nothing.
	//
	// Parameters:
	//   - listener: the listener to remove
	Unsubscribe(listener common.TickListener)
}

// InteractionState is a snapshot of a controller's transient gesture state.
type InteractionState struct {
	// ValidClick is true while a press that started inside the viewport is being tracked.
	ValidClick bool
	// InsideArcball is the roll-disc hit test latched at press time.
	InsideArcball bool
	// Rotating is true while a rotate gesture or its momentum is active.
	Rotating bool
	// Translating is true while a translate gesture or its momentum is active.
	Translating bool
	// ApplyingInertia is true after release until the momentum decays below MinMomentum.
	ApplyingInertia bool
	// Rotation holds pitch, yaw and roll in degrees for the current tick.
	Rotation mgl32.Vec3
	// Translation holds pan-x, pan-y and dolly-z in world units for the current tick.
	Translation mgl32.Vec3
}

// Idle reports whether no gesture and no momentum is active.
//
// Returns:
//   - bool: true when the controller is at rest
func (s InteractionState) Idle() bool {
	return !s.ValidClick && !s.Rotating && !s.Translating && !s.ApplyingInertia
}

// OrbitController drives a Camera around a target from mouse input, one tick at a time.
// Left drag orbits (or rolls outside the arcball disc when roll is enabled), right drag dollies,
// middle drag or a drag with the translation key held pans. Motion keeps going after release
// and decays by the drag coefficient every tick.
//
// All setters take effect on the next tick. The controller is safe to use from multiple
// goroutines; each tick runs under a single lock covering interaction state and pose.
// Only presses that start inside the camera viewport begin a gesture. A press held from
// outside stays ignored after the pointer enters until every button is released.
type OrbitController interface {
	common.TickListener

	// Camera returns the controlled camera.
	//
	// Returns:
	//   - Camera: the camera whose pose this controller owns
	Camera() Camera

	// State returns a snapshot of the interaction state.
	//
	// Returns:
	//   - InteractionState: the current gesture state
	State() InteractionState

	// EnableMouseInput subscribes the controller to its tick source and enables input handling.
	// Calling it while already enabled does nothing.
	EnableMouseInput()

	// DisableMouseInput unsubscribes the controller and stops input handling. Accumulated
	// momentum is kept and resumes when input is enabled again. Calling it while disabled does nothing.
	DisableMouseInput()

	// MouseInputEnabled reports whether input handling is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	MouseInputEnabled() bool

	// Target returns the node the camera orbits.
	//
	// Returns:
	//   - node.Node: the current target
	Target() node.Node

	// SetTargetPoint makes the controller's own point target the orbit center, moves it to p and
	// turns the camera to face it. The camera position and distance tracking are unchanged.
	//
	// Parameters:
	//   - p: world-space target point
	SetTargetPoint(p mgl32.Vec3)

	// SetTargetNode orbits an external node and turns the camera to face it. The controller does not
	// own the node. The camera position and distance tracking are unchanged.
	//
	// Parameters:
	//   - n: the node to orbit (nil is ignored)
	SetTargetNode(n node.Node)

	// SetDistance places the camera distance units behind the target along its own Z axis.
	// Non-positive distances are ignored.
	//
	// Parameters:
	//   - distance: orbit distance, must be > 0
	//   - persist: if true, remember distance as the last explicit distance
	SetDistance(distance float32, persist bool)

	// Distance returns the current distance between camera and target.
	//
	// Returns:
	//   - float32: |camera - target|
	Distance() float32

	// LastDistance returns the last persisted distance, 0 if none was set.
	//
	// Returns:
	//   - float32: the persisted distance
	LastDistance() float32

	// SetDrag sets the per-tick momentum multiplier, clamped into [0, MaxDrag].
	//
	// Parameters:
	//   - drag: decay factor
	SetDrag(drag float32)

	// Drag returns the per-tick momentum multiplier.
	//
	// Returns:
	//   - float32: decay factor
	Drag() float32

	// SetTranslationKey sets the key that turns a left drag into a pan.
	//
	// Parameters:
	//   - keyCode: virtual key code
	SetTranslationKey(keyCode uint32)

	// TranslationKey returns the translation modifier key.
	//
	// Returns:
	//   - uint32: virtual key code
	TranslationKey() uint32

	// EnableMouseMiddleButton lets a middle drag pan the camera.
	EnableMouseMiddleButton()

	// DisableMouseMiddleButton ignores the middle button when classifying presses.
	DisableMouseMiddleButton()

	// MouseMiddleButtonEnabled reports whether middle drag pans.
	//
	// Returns:
	//   - bool: true if enabled
	MouseMiddleButtonEnabled() bool

	// SetAutoDistance toggles deriving the distance from the viewport. Enabling it re-derives the
	// distance on the next tick.
	//
	// Parameters:
	//   - enabled: true to enable
	SetAutoDistance(enabled bool)

	// AutoDistance reports whether auto distance is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	AutoDistance() bool

	// SetUpwardsFix toggles the correction that keeps the camera's right axis level.
	//
	// Parameters:
	//   - enabled: true to enable
	SetUpwardsFix(enabled bool)

	// UpwardsFix reports whether the upright correction is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	UpwardsFix() bool

	// EnableRoll makes left drags that start outside the arcball disc roll the camera.
	EnableRoll()

	// DisableRoll makes every left drag orbit.
	DisableRoll()

	// RollEnabled reports whether roll is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	RollEnabled() bool

	// SetRotationSensitivity sets how far a drag across the short side of the viewport rotates,
	// in units of 180 degrees. Non-positive values are ignored.
	//
	// Parameters:
	//   - sensitivity: rotation sensitivity
	SetRotationSensitivity(sensitivity float32)

	// RotationSensitivity returns the rotation sensitivity.
	//
	// Returns:
	//   - float32: rotation sensitivity
	RotationSensitivity() float32

	// SetPanSensitivity sets the planar pan sensitivity. Non-positive values are ignored.
	//
	// Parameters:
	//   - sensitivity: pan sensitivity
	SetPanSensitivity(sensitivity float32)

	// PanSensitivity returns the planar pan sensitivity.
	//
	// Returns:
	//   - float32: pan sensitivity
	PanSensitivity() float32

	// SetDollySensitivity sets the dolly sensitivity. Non-positive values are ignored.
	//
	// Parameters:
	//   - sensitivity: dolly sensitivity
	SetDollySensitivity(sensitivity float32)

	// DollySensitivity returns the dolly sensitivity.
	//
	// Returns:
	//   - float32: dolly sensitivity
	DollySensitivity() float32

	// Close disables mouse input, releasing the tick subscription.
	Close()
}
