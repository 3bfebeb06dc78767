package camera

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/node"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *orbitControllerImpl) Target() node.Node {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *orbitControllerImpl) SetTargetPoint(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ownTarget.SetPosition(p)
	c.target = c.ownTarget
	node.LookAtNode(c.camera, c.target)
}

func (c *orbitControllerImpl) SetTargetNode(n node.Node) {
	if n == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = n
	node.LookAtNode(c.camera, c.target)
}

func (c *orbitControllerImpl) SetDistance(distance float32, persist bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setDistance(distance, persist)
}

func (c *orbitControllerImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance()
}

func (c *orbitControllerImpl) LastDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastDistance
}

// setDistance places the camera distance units behind the target along its backward axis.
// Non-positive distances are ignored. Caller must hold the mutex.
func (c *orbitControllerImpl) setDistance(distance float32, persist bool) {
	if distance <= 0 {
		return
	}
	if persist {
		c.lastDistance = distance
	}
	c.camera.SetPosition(c.target.Position().Add(c.camera.ZAxis().Mul(distance)))
	c.distanceSet = true
}

// distance is derived from the current pose, never cached. Caller must hold the mutex.
func (c *orbitControllerImpl) distance() float32 {
	return node.DistanceBetween(c.camera, c.target)
}
