package camera

// updateTranslation moves the camera along its own axes by the current translation deltas.
// Axes are read from the current orientation every tick. Caller must hold the mutex.
func (c *orbitControllerImpl) updateTranslation() {
	offset := c.camera.XAxis().Mul(c.move[0]).
		Add(c.camera.YAxis().Mul(c.move[1])).
		Add(c.camera.ZAxis().Mul(c.move[2]))
	c.camera.Move(offset)
}
