// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a viewport rectangle in window pixel coordinates. The origin is the top-left corner
// and Y grows downward, matching GLFW cursor coordinates.
type Rect struct {
	// X is the left edge of the rectangle in pixels.
	X float32
	// Y is the top edge of the rectangle in pixels.
	Y float32
	// Width is the horizontal extent of the rectangle in pixels.
	Width float32
	// Height is the vertical extent of the rectangle in pixels.
	Height float32
}

// NewRect creates a Rect from its origin and size.
//
// Parameters:
//   - x, y: top-left corner in pixels
//   - width, height: size in pixels
//
// Returns:
//   - Rect: the rectangle
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Empty reports whether the rectangle has no area. Empty viewports produce no camera motion.
//
// Returns:
//   - bool: true if width or height is not positive
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inside reports whether the point lies within the rectangle. The left and top edges are
// inclusive, the right and bottom edges exclusive.
//
// Parameters:
//   - p: point in window pixel coordinates
//
// Returns:
//   - bool: true if p is inside the rectangle
func (r Rect) Inside(p mgl32.Vec2) bool {
	return p.X() >= r.X && p.X() < r.X+r.Width &&
		p.Y() >= r.Y && p.Y() < r.Y+r.Height
}

// HalfSize returns half the width and half the height.
//
// Returns:
//   - mgl32.Vec2: (width/2, height/2)
func (r Rect) HalfSize() mgl32.Vec2 {
	return mgl32.Vec2{r.Width / 2, r.Height / 2}
}

// Center returns the center of the rectangle in window coordinates.
//
// Returns:
//   - mgl32.Vec2: the center point
func (r Rect) Center() mgl32.Vec2 {
	return mgl32.Vec2{r.X, r.Y}.Add(r.HalfSize())
}

// Local converts a window-space point into rectangle-relative coordinates.
//
// Parameters:
//   - p: point in window pixel coordinates
//
// Returns:
//   - mgl32.Vec2: p relative to the rectangle origin
func (r Rect) Local(p mgl32.Vec2) mgl32.Vec2 {
	return p.Sub(mgl32.Vec2{r.X, r.Y})
}

// ShortSide returns the smaller of width and height.
//
// Returns:
//   - float32: min(width, height)
func (r Rect) ShortSide() float32 {
	return Min32(r.Width, r.Height)
}

// Aspect returns width / height, or 1 for an empty rectangle.
//
// Returns:
//   - float32: the aspect ratio
func (r Rect) Aspect() float32 {
	if r.Empty() {
		return 1
	}
	return r.Width / r.Height
}

// TickListener receives one notification per engine tick.
type TickListener interface {
	// Update advances the listener by one tick.
	//
	// Parameters:
	//   - deltaTime: seconds elapsed since the previous tick
	Update(deltaTime float32)
}
