package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a vertex buffer uploaded with Renderer.NewMesh.
type Mesh struct {
	label       string
	buffer      *wgpu.Buffer
	vertexCount uint32
}

// Label returns the debug label the mesh was created with.
func (m *Mesh) Label() string {
	return m.label
}

// VertexCount returns the number of vertices drawn per Draw call.
func (m *Mesh) VertexCount() uint32 {
	return m.vertexCount
}

// Release frees the vertex buffer.
func (m *Mesh) Release() {
	if m.buffer != nil {
		m.buffer.Release()
		m.buffer = nil
	}
}

// glToWebGPU maps clip z from [-w, w] onto [0, w]: z' = 0.5z + 0.5w.
var glToWebGPU = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// clipSpace converts an OpenGL-style view-projection matrix to the WebGPU clip volume.
func clipSpace(viewProjection mgl32.Mat4) mgl32.Mat4 {
	return glToWebGPU.Mul4(viewProjection)
}
