package node

import "github.com/go-gl/mathgl/mgl32"

// NodeBuilderOption is a functional option for configuring a Node.
type NodeBuilderOption func(*nodeImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - NodeBuilderOption: functional option to set the position
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.position = mgl32.Vec3{x, y, z}
	}
}

// WithOrientation sets the initial orientation.
//
// Parameters:
//   - q: orientation quaternion (normalized on apply)
//
// Returns:
//   - NodeBuilderOption: functional option to set the orientation
func WithOrientation(q mgl32.Quat) NodeBuilderOption {
	return func(n *nodeImpl) {
		n.orientation = q.Normalize()
	}
}
