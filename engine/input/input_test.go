package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestStateButtons(t *testing.T) {
	s := NewState()
	assert.False(t, s.AnyButtonPressed())

	s.SetButton(MouseButtonRight, true)
	assert.True(t, s.AnyButtonPressed())
	assert.True(t, s.ButtonPressed(MouseButtonRight))
	assert.False(t, s.ButtonPressed(MouseButtonLeft))

	s.SetButton(MouseButtonRight, false)
	assert.False(t, s.AnyButtonPressed())
}

func TestStateIgnoresUnknownButtons(t *testing.T) {
	s := NewState()
	s.SetButton(MouseButton(42), true)
	assert.False(t, s.AnyButtonPressed())
	assert.False(t, s.ButtonPressed(MouseButton(42)))
	assert.False(t, s.ButtonPressed(MouseButton(-1)))
}

func TestStateKeysAndPointer(t *testing.T) {
	s := NewState()
	s.SetPointer(12, 34)
	s.SetKey(common.KeyM, true)

	assert.Equal(t, mgl32.Vec2{12, 34}, s.Pointer())
	assert.True(t, s.KeyPressed(common.KeyM))
	assert.False(t, s.KeyPressed(common.KeyW))

	s.SetKey(common.KeyM, false)
	assert.False(t, s.KeyPressed(common.KeyM))
}

func TestStateReset(t *testing.T) {
	s := NewState()
	s.SetPointer(5, 5)
	s.SetButton(MouseButtonLeft, true)
	s.SetKey(common.KeySpace, true)

	s.Reset()

	assert.False(t, s.AnyButtonPressed())
	assert.False(t, s.KeyPressed(common.KeySpace))
	assert.Equal(t, mgl32.Vec2{5, 5}, s.Pointer())
}

func TestMouseButtonString(t *testing.T) {
	assert.Equal(t, "left", MouseButtonLeft.String())
	assert.Equal(t, "middle", MouseButtonMiddle.String())
	assert.Equal(t, "unknown", MouseButton(9).String())
}
