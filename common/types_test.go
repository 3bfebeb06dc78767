package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRectInside(t *testing.T) {
	r := NewRect(100, 50, 200, 100)

	assert.True(t, r.Inside(mgl32.Vec2{100, 50}))
	assert.True(t, r.Inside(mgl32.Vec2{299, 149}))
	assert.False(t, r.Inside(mgl32.Vec2{300, 100}))
	assert.False(t, r.Inside(mgl32.Vec2{150, 150}))
	assert.False(t, r.Inside(mgl32.Vec2{99, 60}))
}

func TestRectGeometry(t *testing.T) {
	r := NewRect(100, 50, 200, 100)

	assert.Equal(t, mgl32.Vec2{100, 50}, r.HalfSize())
	assert.Equal(t, mgl32.Vec2{200, 100}, r.Center())
	assert.Equal(t, mgl32.Vec2{10, 20}, r.Local(mgl32.Vec2{110, 70}))
	assert.Equal(t, float32(100), r.ShortSide())
	assert.Equal(t, float32(2), r.Aspect())
	assert.False(t, r.Empty())
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 10).Empty())
	assert.True(t, NewRect(0, 0, 10, -1).Empty())
	assert.Equal(t, float32(1), Rect{}.Aspect())
}

func TestKeyByName(t *testing.T) {
	code, ok := KeyByName("M")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyM), code)

	code, ok = KeyByName(" Left_Shift ")
	assert.True(t, ok)
	assert.Equal(t, uint32(KeyLeftShift), code)

	_, ok = KeyByName("hyper")
	assert.False(t, ok)
}
