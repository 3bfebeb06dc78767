package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestQuatDegrees(t *testing.T) {
	assert.Equal(t, mgl32.QuatIdent(), QuatDegrees(0, AxisY))
	assert.Equal(t, mgl32.QuatIdent(), QuatDegrees(45, mgl32.Vec3{}))

	q := QuatDegrees(90, mgl32.Vec3{0, 2, 0})
	got := q.Rotate(AxisX)
	assert.InDelta(t, 0, got.X(), 1e-5)
	assert.InDelta(t, 0, got.Y(), 1e-5)
	assert.InDelta(t, -1, got.Z(), 1e-5)
}

func TestSignedAngle2D(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl32.Vec2
		want float32
	}{
		{"same direction", mgl32.Vec2{1, 0}, mgl32.Vec2{2, 0}, 0},
		{"quarter turn", mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, 90},
		{"negative quarter turn", mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}, -90},
		{"opposite", mgl32.Vec2{1, 0}, mgl32.Vec2{-1, 0}, 180},
		{"zero vector", mgl32.Vec2{}, mgl32.Vec2{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SignedAngle2D(tt.a, tt.b), 1e-4)
		})
	}
}

func TestLevel(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, 0, 3}, Level(mgl32.Vec3{1, 2, 3}))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(2), Abs32(-2))
	assert.Equal(t, float32(2), Abs32(2))
	assert.Equal(t, float32(1), Min32(1, 2))
	assert.Equal(t, float32(1), Min32(2, 1))
	assert.Equal(t, float32(0), Clamp32(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp32(5, 0, 1))
	assert.Equal(t, float32(0.5), Clamp32(0.5, 0, 1))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "a", Coalesce("", "a", "b"))
	assert.Equal(t, "", Coalesce[string]())
	assert.Equal(t, 3, Coalesce(0, 0, 3))
}
