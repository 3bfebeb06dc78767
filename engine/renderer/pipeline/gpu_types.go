package pipeline

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ReferenceShaderSource is the WGSL program shared by the reference grid and cube pipelines.
// Group 0 binding 0 is the camera view-projection uniform; the vertex input matches GPUVertex.
//
//go:embed assets/reference.wgsl
var ReferenceShaderSource string

// ViewProjectionSize is the byte size of the camera uniform (one column-major mat4x4<f32>).
const ViewProjectionSize = 64

// GPUVertex is the GPU-aligned representation of a single colored vertex.
// Size: 28 bytes, tightly packed.
type GPUVertex struct {
	Position [3]float32 // offset  0: position in world space (12 bytes)
	Color    [4]float32 // offset 12: RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 28-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 28)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[3]))
	return buf
}

// MarshalVertices packs vertices back to back for a vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to pack
//
// Returns:
//   - []byte: len(vertices)*28 bytes
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*28)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalMat4 serializes a column-major matrix for the camera uniform.
//
// Parameters:
//   - m: the matrix to serialize
//
// Returns:
//   - []byte: ViewProjectionSize bytes
func MarshalMat4(m mgl32.Mat4) []byte {
	buf := make([]byte, ViewProjectionSize)
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], math.Float32bits(v))
	}
	return buf
}

// GPUVertexLayout describes GPUVertex to the vertex stage: position at location 0, color at 1.
//
// Returns:
//   - wgpu.VertexBufferLayout: the buffer layout for a GPUVertex stream
func GPUVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: 28,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
		},
	}
}
