package node

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is a scene-graph transform: a world-space position and orientation with derived local axes.
// The local frame is right-handed: X points right, Y points up and Z points backward (out of the
// screen), so a camera node looks along its negative Z axis.
type Node interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the node position
	Position() mgl32.Vec3

	// SetPosition sets the world-space position without touching the orientation.
	//
	// Parameters:
	//   - p: new world-space position
	SetPosition(p mgl32.Vec3)

	// Orientation returns the world-space orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit quaternion rotating local axes into world space
	Orientation() mgl32.Quat

	// SetOrientation sets the world-space orientation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: new orientation
	SetOrientation(q mgl32.Quat)

	// XAxis returns the local right axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit right vector
	XAxis() mgl32.Vec3

	// YAxis returns the local up axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit up vector
	YAxis() mgl32.Vec3

	// ZAxis returns the local backward axis in world space.
	//
	// Returns:
	//   - mgl32.Vec3: unit backward vector
	ZAxis() mgl32.Vec3

	// Move translates the node by a world-space offset.
	//
	// Parameters:
	//   - offset: translation to add to the position
	Move(offset mgl32.Vec3)

	// Rotate applies a world-space rotation to the orientation (q * orientation).
	// The position is not changed.
	//
	// Parameters:
	//   - q: rotation to apply
	Rotate(q mgl32.Quat)

	// LookAt orients the node so its negative Z axis points at target, keeping the position.
	// Does nothing if target coincides with the node position.
	//
	// Parameters:
	//   - target: world-space point to face
	//   - up: preferred world up direction
	LookAt(target, up mgl32.Vec3)

	// Transform returns the local-to-world matrix (translation * rotation).
	//
	// Returns:
	//   - mgl32.Mat4: the world transform
	Transform() mgl32.Mat4
}

type nodeImpl struct {
	mu *sync.Mutex

	position    mgl32.Vec3
	orientation mgl32.Quat
}

var _ Node = &nodeImpl{}

// NewNode creates a Node at the origin with the identity orientation.
//
// Parameters:
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(options ...NodeBuilderOption) Node {
	n := &nodeImpl{
		mu:          &sync.Mutex{},
		orientation: mgl32.QuatIdent(),
	}
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *nodeImpl) Position() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.position
}

func (n *nodeImpl) SetPosition(p mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.position = p
}

func (n *nodeImpl) Orientation() mgl32.Quat {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orientation
}

func (n *nodeImpl) SetOrientation(q mgl32.Quat) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orientation = q.Normalize()
}

func (n *nodeImpl) XAxis() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orientation.Rotate(common.AxisX)
}

func (n *nodeImpl) YAxis() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orientation.Rotate(common.AxisY)
}

func (n *nodeImpl) ZAxis() mgl32.Vec3 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.orientation.Rotate(common.AxisZ)
}

func (n *nodeImpl) Move(offset mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.position = n.position.Add(offset)
}

func (n *nodeImpl) Rotate(q mgl32.Quat) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orientation = q.Mul(n.orientation).Normalize()
}

func (n *nodeImpl) LookAt(target, up mgl32.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if q, ok := lookRotation(n.position, target, up, n.orientation.Rotate(common.AxisY)); ok {
		n.orientation = q
	}
}

func (n *nodeImpl) Transform() mgl32.Mat4 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return mgl32.Translate3D(n.position.X(), n.position.Y(), n.position.Z()).Mul4(n.orientation.Mat4())
}

// lookRotation builds the orientation whose negative Z axis points from eye to target.
// When up is parallel to the view direction the fallback up (usually the current Y axis) is used,
// then world +Z. Returns false if eye and target coincide.
func lookRotation(eye, target, up, fallbackUp mgl32.Vec3) (mgl32.Quat, bool) {
	z := eye.Sub(target)
	if z.Len() < 1e-8 {
		return mgl32.Quat{}, false
	}
	z = z.Normalize()

	var x mgl32.Vec3
	for _, candidate := range [...]mgl32.Vec3{up, fallbackUp, common.AxisZ} {
		if x = candidate.Cross(z); x.Len() >= 1e-6 {
			break
		}
	}
	if x.Len() < 1e-6 {
		return mgl32.Quat{}, false
	}
	x = x.Normalize()
	y := z.Cross(x)

	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(x, y, z).Mat4()).Normalize(), true
}

// LookAtNode orients n to face the position of target using world +Y as the up direction.
//
// Parameters:
//   - n: the node to orient
//   - target: the node to face
func LookAtNode(n, target Node) {
	n.LookAt(target.Position(), common.AxisY)
}

// DistanceBetween returns the world-space distance between the positions of two nodes.
//
// Parameters:
//   - a, b: the nodes to measure
//
// Returns:
//   - float32: |a.Position - b.Position|
func DistanceBetween(a, b Node) float32 {
	return a.Position().Sub(b.Position()).Len()
}
