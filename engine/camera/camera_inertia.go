package camera

import "github.com/Carmen-Shannon/oxy-orbit/common"

// MinMomentum is the magnitude below which every component of a decaying delta must fall
// before inertia stops and the gesture ends.
const MinMomentum float32 = 1e-6

// decay scales the deltas of the last gesture by the drag coefficient and ends the gesture once
// they settle. The decayed deltas are still applied this tick. Caller must hold the mutex.
func (c *orbitControllerImpl) decay() {
	switch {
	case c.doRotate:
		c.rot = c.rot.Mul(c.drag)
		if settled(c.rot) {
			c.rot = [3]float32{}
			c.doRotate = false
			c.applyInertia = false
			c.logger.Debug().Msg("rotation settled")
		}
	case c.doTranslate:
		c.move = c.move.Mul(c.drag)
		if settled(c.move) {
			c.move = [3]float32{}
			c.doTranslate = false
			c.applyInertia = false
			c.logger.Debug().Msg("translation settled")
		}
	default:
		// unmapped press, nothing to decay
		c.applyInertia = false
	}
}

func settled(v [3]float32) bool {
	return common.Abs32(v[0]) <= MinMomentum &&
		common.Abs32(v[1]) <= MinMomentum &&
		common.Abs32(v[2]) <= MinMomentum
}
