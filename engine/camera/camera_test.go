package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-3

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDeltaSlicef(t, want[:], got[:], tolerance, "want %v, got %v", want, got)
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.InDelta(t, mgl32.DegToRad(45), cam.Fov(), 1e-6)
	assert.InDelta(t, 0.1, cam.Near(), 1e-6)
	assert.InDelta(t, 10000, cam.Far(), 1e-3)
	assert.False(t, cam.VFlipped())
	assert.True(t, cam.Viewport().Empty())
	assert.Equal(t, float32(1), cam.Aspect())
}

func TestCameraBeginCapturesViewport(t *testing.T) {
	cam := NewCamera()
	cam.Begin(common.NewRect(10, 20, 800, 600))

	assert.Equal(t, common.NewRect(10, 20, 800, 600), cam.Viewport())
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), 1e-6)
}

func TestImagePlaneDistance(t *testing.T) {
	cam := NewCamera(WithFov(mgl32.DegToRad(90)))

	assert.InDelta(t, 300, cam.ImagePlaneDistance(common.NewRect(0, 0, 800, 600)), 1e-3)
	assert.Zero(t, cam.ImagePlaneDistance(common.NewRect(0, 0, 800, 0)))

	cam = NewCamera()
	want := 600 / (2 * math.Tan(float64(mgl32.DegToRad(45))/2))
	assert.InDelta(t, want, cam.ImagePlaneDistance(common.NewRect(0, 0, 800, 600)), 1e-2)
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	cam := NewCamera()
	cam.SetPosition(mgl32.Vec3{0, 0, 10})

	origin := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, -10}, origin)
}

func TestVerticalFlipNegatesProjectionY(t *testing.T) {
	cam := NewCamera(WithViewport(common.NewRect(0, 0, 800, 600)))
	normal := cam.ProjectionMatrix()

	cam.SetVFlipped(true)
	flipped := cam.ProjectionMatrix()

	assert.True(t, cam.VFlipped())
	assert.InDelta(t, -normal.At(1, 1), flipped.At(1, 1), 1e-6)
	assert.InDelta(t, normal.At(0, 0), flipped.At(0, 0), 1e-6)
}

func TestCameraSetters(t *testing.T) {
	cam := NewCamera()
	cam.SetFov(mgl32.DegToRad(60))
	cam.SetNear(0.5)
	cam.SetFar(500)

	assert.InDelta(t, mgl32.DegToRad(60), cam.Fov(), 1e-6)
	assert.InDelta(t, 0.5, cam.Near(), 1e-6)
	assert.InDelta(t, 500, cam.Far(), 1e-3)
}
