package renderer

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	gridColor  = [4]float32{0.35, 0.35, 0.38, 1}
	axisXColor = [4]float32{0.85, 0.25, 0.25, 1}
	axisZColor = [4]float32{0.25, 0.45, 0.9, 1}
)

// ReferenceScene draws a ground grid on the XZ plane and a colored cube at the origin so
// camera motion is visible.
type ReferenceScene struct {
	renderer Renderer

	gridPipeline pipeline.Pipeline
	cubePipeline pipeline.Pipeline
	gridMesh     *Mesh
	cubeMesh     *Mesh
}

// NewReferenceScene registers the grid and cube pipelines with r and uploads their meshes.
//
// Parameters:
//   - r: the renderer to draw with
//   - halfLines: grid lines on each side of the origin
//   - spacing: distance between grid lines in world units
//   - cubeSize: edge length of the cube
//
// Returns:
//   - *ReferenceScene: the ready-to-draw scene
//   - error: an error if a pipeline or mesh could not be created
func NewReferenceScene(r Renderer, halfLines int, spacing, cubeSize float32) (*ReferenceScene, error) {
	s := &ReferenceScene{
		renderer: r,
		gridPipeline: pipeline.NewPipeline("reference_grid", pipeline.ReferenceShaderSource,
			pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
		),
		// Culling stays off: a vertical flip reverses the winding on screen.
		cubePipeline: pipeline.NewPipeline("reference_cube", pipeline.ReferenceShaderSource),
	}

	for _, p := range []pipeline.Pipeline{s.gridPipeline, s.cubePipeline} {
		if err := r.RegisterPipeline(p); err != nil {
			s.Release()
			return nil, err
		}
	}

	var err error
	if s.gridMesh, err = r.NewMesh("reference_grid", GridVertices(halfLines, spacing)); err != nil {
		s.Release()
		return nil, err
	}
	if s.cubeMesh, err = r.NewMesh("reference_cube", CubeVertices(cubeSize)); err != nil {
		s.Release()
		return nil, err
	}
	return s, nil
}

// Draw uploads the camera matrix and draws the grid and cube. Call between BeginFrame and EndFrame.
//
// Parameters:
//   - viewProjection: the camera view-projection matrix
func (s *ReferenceScene) Draw(viewProjection mgl32.Mat4) {
	s.renderer.SetViewProjection(viewProjection)
	s.renderer.Draw(s.gridPipeline, s.gridMesh)
	s.renderer.Draw(s.cubePipeline, s.cubeMesh)
}

// Release frees the meshes and pipelines.
func (s *ReferenceScene) Release() {
	for _, m := range []*Mesh{s.gridMesh, s.cubeMesh} {
		if m != nil {
			m.Release()
		}
	}
	s.gridPipeline.Release()
	s.cubePipeline.Release()
}

// GridVertices builds a line list of 2*(2*halfLines+1) lines on the XZ plane. The lines
// through the origin are colored by axis: X red, Z blue.
//
// Parameters:
//   - halfLines: lines on each side of the origin
//   - spacing: distance between lines
//
// Returns:
//   - []pipeline.GPUVertex: two vertices per line
func GridVertices(halfLines int, spacing float32) []pipeline.GPUVertex {
	if halfLines < 0 {
		halfLines = 0
	}
	extent := float32(halfLines) * spacing
	vertices := make([]pipeline.GPUVertex, 0, 4*(2*halfLines+1))

	for i := -halfLines; i <= halfLines; i++ {
		offset := float32(i) * spacing

		xColor, zColor := gridColor, gridColor
		if i == 0 {
			xColor, zColor = axisXColor, axisZColor
		}

		// parallel to X at z = offset
		vertices = append(vertices,
			pipeline.GPUVertex{Position: [3]float32{-extent, 0, offset}, Color: xColor},
			pipeline.GPUVertex{Position: [3]float32{extent, 0, offset}, Color: xColor},
		)
		// parallel to Z at x = offset
		vertices = append(vertices,
			pipeline.GPUVertex{Position: [3]float32{offset, 0, -extent}, Color: zColor},
			pipeline.GPUVertex{Position: [3]float32{offset, 0, extent}, Color: zColor},
		)
	}
	return vertices
}

// CubeVertices builds a 36-vertex triangle list for a cube centered on the origin. Each face
// has its own color and winds counter-clockwise seen from outside.
//
// Parameters:
//   - size: edge length
//
// Returns:
//   - []pipeline.GPUVertex: 6 faces of 2 triangles
func CubeVertices(size float32) []pipeline.GPUVertex {
	h := size / 2
	faces := []struct {
		corners [4][3]float32
		color   [4]float32
	}{
		{[4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, [4]float32{0.9, 0.3, 0.3, 1}},     // +X
		{[4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, [4]float32{0.5, 0.15, 0.15, 1}}, // -X
		{[4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, [4]float32{0.3, 0.9, 0.3, 1}},     // +Y
		{[4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, [4]float32{0.15, 0.5, 0.15, 1}}, // -Y
		{[4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, [4]float32{0.3, 0.4, 0.95, 1}},    // +Z
		{[4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, [4]float32{0.15, 0.2, 0.5, 1}}, // -Z
	}

	vertices := make([]pipeline.GPUVertex, 0, 36)
	for _, f := range faces {
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			vertices = append(vertices, pipeline.GPUVertex{Position: f.corners[i], Color: f.color})
		}
	}
	return vertices
}
