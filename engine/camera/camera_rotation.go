package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// composeRotation builds the world-space rotation for pitch, yaw and roll (degrees) about the
// given right, up and backward axes. Pitch is applied first, roll last.
func composeRotation(rot, right, up, backward mgl32.Vec3) mgl32.Quat {
	qPitch := common.QuatDegrees(rot[0], right)
	qYaw := common.QuatDegrees(rot[1], up)
	qRoll := common.QuatDegrees(rot[2], backward)
	return qRoll.Mul(qYaw).Mul(qPitch).Normalize()
}

// uprightCorrection prepends the rotation that brings the rotated right axis back onto the
// horizontal plane. It returns q unchanged when the rotated right axis points straight up or down.
func uprightCorrection(q mgl32.Quat, right mgl32.Vec3) mgl32.Quat {
	side := q.Rotate(right)
	level := common.Level(side)
	if side.Len() < 1e-6 || level.Len() < 1e-6 {
		return q
	}
	fix := mgl32.QuatBetweenVectors(side.Normalize(), level.Normalize())
	return fix.Mul(q).Normalize()
}

// updateRotation orbits the camera about the target by the current rotation deltas.
// Caller must hold the mutex.
func (c *orbitControllerImpl) updateRotation() {
	right := c.camera.XAxis()
	q := composeRotation(c.rot, right, c.camera.YAxis(), c.camera.ZAxis())
	if c.fixUpwards {
		q = uprightCorrection(q, right)
	}

	center := c.target.Position()
	offset := c.camera.Position().Sub(center)
	c.camera.SetPosition(center.Add(q.Rotate(offset)))
	c.camera.Rotate(q)
}
