package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// mapDelta converts the pointer displacement since the last tick into rotation or translation
// deltas. Translation scales with the distance to the target so panning tracks the cursor at
// the target's depth. Caller must hold the mutex.
func (c *orbitControllerImpl) mapDelta(viewport common.Rect, pointer mgl32.Vec2) {
	c.pointerVelocity = pointer.Sub(c.lastPointer)
	vel := c.pointerVelocity

	flip := float32(1)
	if c.camera.VFlipped() {
		flip = -1
	}

	switch {
	case c.doTranslate:
		dist := c.distance() + common.Epsilon
		if c.input.ButtonPressed(input.MouseButtonRight) {
			c.move = mgl32.Vec3{0, 0, vel.Y() * c.sensitivityZ * dist / viewport.Height}
		} else {
			c.move = mgl32.Vec3{
				-vel.X() * c.sensitivityXY * dist / viewport.Width,
				flip * vel.Y() * c.sensitivityXY * dist / viewport.Height,
				0,
			}
		}
	case c.doRotate:
		if c.insideArcball {
			c.rot = mgl32.Vec3{
				flip * -vel.Y() * c.rotationFactor,
				-vel.X() * c.rotationFactor,
				0,
			}
		} else {
			center := viewport.Center()
			roll := common.SignedAngle2D(pointer.Sub(center), c.lastPointer.Sub(center))
			c.rot = mgl32.Vec3{0, 0, -flip * roll}
		}
	}

	c.lastPointer = pointer
}
