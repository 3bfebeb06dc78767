package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// updateMouse polls the input once, classifies press and release edges, then either maps the
// pointer motion of a live gesture or decays the momentum of a released one.
// A press that begins outside the viewport never becomes a gesture, even when it is then
// dragged inside; all buttons must be released first.
// Caller must hold the mutex.
func (c *orbitControllerImpl) updateMouse(viewport common.Rect) {
	pointer := c.input.Pointer()
	anyDown := c.input.AnyButtonPressed()

	switch {
	case !anyDown:
		c.pressBlocked = false
	case !c.validClick && !c.pressBlocked:
		if !viewport.Inside(pointer) {
			// held presses from outside never turn into a gesture
			c.pressBlocked = true
			break
		}
		c.startGesture(viewport, pointer)
		c.lastPointer = pointer
		c.validClick = true
	}

	if c.validClick && !anyDown {
		c.applyInertia = true
		c.validClick = false
		c.logger.Debug().
			Bool("rotate", c.doRotate).
			Bool("translate", c.doTranslate).
			Msg("gesture released")
	}

	if c.validClick {
		c.mapDelta(viewport, pointer)
	} else if c.applyInertia {
		c.decay()
	}
}

// startGesture picks rotate or translate for a fresh press and cancels any momentum.
// A press of a button with no mapping is still tracked so it cannot restart mid-drag,
// but it moves nothing.
func (c *orbitControllerImpl) startGesture(viewport common.Rect, pointer mgl32.Vec2) {
	c.doRotate = false
	c.doTranslate = false
	c.applyInertia = false
	c.rot = [3]float32{}
	c.move = [3]float32{}
	c.pointerVelocity = [2]float32{}

	middle := c.middleButtonEnabled && c.input.ButtonPressed(input.MouseButtonMiddle)
	switch {
	case middle || c.input.KeyPressed(c.translationKey) || c.input.ButtonPressed(input.MouseButtonRight):
		c.doTranslate = true
	case c.input.ButtonPressed(input.MouseButtonLeft):
		c.doRotate = true
		c.insideArcball = true
		if c.rollEnabled {
			half := viewport.HalfSize()
			offset := viewport.Local(pointer).Sub(half)
			c.insideArcball = offset.Len() < common.Min32(half.X(), half.Y())
		}
	}

	c.logger.Debug().
		Bool("rotate", c.doRotate).
		Bool("translate", c.doTranslate).
		Bool("inside_arcball", c.insideArcball).
		Msg("gesture started")
}
