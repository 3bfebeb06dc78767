package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/node"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// MaxDrag is the largest accepted drag coefficient. A drag of 1 would never settle.
const MaxDrag float32 = 0.999

// orbitControllerImpl is the single implementation of OrbitController.
// All fields below mu are guarded by it; camera and target nodes guard their own state.
type orbitControllerImpl struct {
	mu *sync.Mutex

	camera Camera
	input  input.Input
	ticks  TickSource
	logger zerolog.Logger

	// ownTarget is the fallback point target; target may point at it or at an external node.
	ownTarget node.Node
	target    node.Node

	initialDistance float32
	lastDistance    float32
	distanceSet     bool

	// Interaction config
	drag           float32
	sensitivityXY  float32
	sensitivityZ   float32
	sensitivityRot float32
	translationKey uint32

	startEnabled        bool
	mouseInputEnabled   bool
	middleButtonEnabled bool
	autoDistance        bool
	fixUpwards          bool
	rollEnabled         bool

	// Interaction state
	validClick      bool
	pressBlocked    bool
	insideArcball   bool
	doRotate        bool
	doTranslate     bool
	applyInertia    bool
	lastPointer     mgl32.Vec2
	pointerVelocity mgl32.Vec2
	rotationFactor  float32

	rot  mgl32.Vec3 // pitch, yaw, roll in degrees
	move mgl32.Vec3 // pan-x, pan-y, dolly-z in world units
}

// Compile-time interface compliance check
var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController creates a controller for cam that reads pointer and key state from in.
// The camera is turned to face the target; if WithDistance was given it is also placed at that
// distance, otherwise the distance is derived from the viewport on the first tick.
// Mouse input starts enabled, subscribing to the tick source if one was provided.
//
// Parameters:
//   - cam: the camera to drive
//   - in: polled pointer and key state
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the newly created controller
func NewOrbitController(cam Camera, in input.Input, options ...OrbitControllerOption) OrbitController {
	own := node.NewNode()
	c := &orbitControllerImpl{
		mu:     &sync.Mutex{},
		camera: cam,
		input:  in,
		logger: zerolog.Nop(),

		ownTarget: own,
		target:    own,

		drag:           0.9,
		sensitivityXY:  0.5,
		sensitivityZ:   0.7,
		sensitivityRot: 1.0,
		translationKey: common.KeyM,

		startEnabled:        true,
		middleButtonEnabled: true,
		autoDistance:        true,
		fixUpwards:          true,
		rollEnabled:         false,

		insideArcball: true,
	}

	for _, option := range options {
		option(c)
	}

	node.LookAtNode(c.camera, c.target)
	if c.initialDistance > 0 {
		c.setDistance(c.initialDistance, true)
	}
	if c.startEnabled {
		c.EnableMouseInput()
	}
	return c
}

// Update runs one tick: lazy distance init, press classification, delta mapping, inertia and
// finally rotation or translation of the camera. The viewport is captured once up front.
func (c *orbitControllerImpl) Update(deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	viewport := c.camera.Viewport()

	if !c.distanceSet && c.autoDistance {
		if d := c.camera.ImagePlaneDistance(viewport); d > 0 {
			c.setDistance(d, true)
			c.logger.Debug().Float32("distance", d).Msg("auto distance initialized")
		}
	}

	if !c.mouseInputEnabled || viewport.Empty() {
		return
	}

	c.rotationFactor = c.sensitivityRot * 180 / viewport.ShortSide()
	c.updateMouse(viewport)

	if c.doRotate {
		c.updateRotation()
	} else if c.doTranslate {
		c.updateTranslation()
	}
}

func (c *orbitControllerImpl) Camera() Camera {
	return c.camera
}

func (c *orbitControllerImpl) State() InteractionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return InteractionState{
		ValidClick:      c.validClick,
		InsideArcball:   c.insideArcball,
		Rotating:        c.doRotate,
		Translating:     c.doTranslate,
		ApplyingInertia: c.applyInertia,
		Rotation:        c.rot,
		Translation:     c.move,
	}
}

func (c *orbitControllerImpl) EnableMouseInput() {
	c.mu.Lock()
	if c.mouseInputEnabled {
		c.mu.Unlock()
		return
	}
	c.mouseInputEnabled = true
	ticks := c.ticks
	c.mu.Unlock()

	// Subscribe outside the lock; a tick source may dispatch synchronously.
	if ticks != nil {
		ticks.Subscribe(c)
	}
}

func (c *orbitControllerImpl) DisableMouseInput() {
	c.mu.Lock()
	if !c.mouseInputEnabled {
		c.mu.Unlock()
		return
	}
	c.mouseInputEnabled = false
	ticks := c.ticks
	c.mu.Unlock()

	if ticks != nil {
		ticks.Unsubscribe(c)
	}
}

func (c *orbitControllerImpl) MouseInputEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mouseInputEnabled
}

func (c *orbitControllerImpl) SetDrag(drag float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setDrag(drag)
}

func (c *orbitControllerImpl) Drag() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drag
}

func (c *orbitControllerImpl) SetTranslationKey(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.translationKey = keyCode
}

func (c *orbitControllerImpl) TranslationKey() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.translationKey
}

func (c *orbitControllerImpl) EnableMouseMiddleButton() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middleButtonEnabled = true
}

func (c *orbitControllerImpl) DisableMouseMiddleButton() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middleButtonEnabled = false
}

func (c *orbitControllerImpl) MouseMiddleButtonEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.middleButtonEnabled
}

func (c *orbitControllerImpl) SetAutoDistance(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoDistance = enabled
	if enabled {
		c.distanceSet = false
	}
}

func (c *orbitControllerImpl) AutoDistance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoDistance
}

func (c *orbitControllerImpl) SetUpwardsFix(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixUpwards = enabled
}

func (c *orbitControllerImpl) UpwardsFix() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fixUpwards
}

func (c *orbitControllerImpl) EnableRoll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollEnabled = true
}

func (c *orbitControllerImpl) DisableRoll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollEnabled = false
}

func (c *orbitControllerImpl) RollEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rollEnabled
}

func (c *orbitControllerImpl) SetRotationSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setPositive(&c.sensitivityRot, sensitivity)
}

func (c *orbitControllerImpl) RotationSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensitivityRot
}

func (c *orbitControllerImpl) SetPanSensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setPositive(&c.sensitivityXY, sensitivity)
}

func (c *orbitControllerImpl) PanSensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensitivityXY
}

func (c *orbitControllerImpl) SetDollySensitivity(sensitivity float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setPositive(&c.sensitivityZ, sensitivity)
}

func (c *orbitControllerImpl) DollySensitivity() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sensitivityZ
}

func (c *orbitControllerImpl) Close() {
	c.DisableMouseInput()
}

// --- internal helpers ---

// setDrag clamps drag into [0, MaxDrag]. Caller must hold the mutex.
func (c *orbitControllerImpl) setDrag(drag float32) {
	c.drag = common.Clamp32(drag, 0, MaxDrag)
}

// setPositive stores v into dst only if v > 0.
func setPositive(dst *float32, v float32) {
	if v > 0 {
		*dst = v
	}
}
