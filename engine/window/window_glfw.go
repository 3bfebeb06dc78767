package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	running bool
}

// glfwButtons maps GLFW mouse buttons onto input buttons. Other buttons are ignored.
var glfwButtons = map[glfw.MouseButton]input.MouseButton{
	glfw.MouseButtonLeft:   input.MouseButtonLeft,
	glfw.MouseButtonRight:  input.MouseButtonRight,
	glfw.MouseButtonMiddle: input.MouseButtonMiddle,
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		running: true,
	}
	w.mu.Lock()
	w.internalWindow = gw
	w.mu.Unlock()

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		if key == glfw.KeyUnknown {
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			w.input.SetKey(uint32(key), true)
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			w.input.SetKey(uint32(key), false)
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := glfwButtons[button]
		if !ok {
			return
		}
		// Sync the pointer first so a press is never classified against a stale position.
		x, y := gw.framebufferCursor()
		w.input.SetPointer(x, y)
		w.input.SetButton(b, action == glfw.Press)
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		x, y := gw.toFramebuffer(xpos, ypos)
		w.input.SetPointer(x, y)
	})

	// Focus loss swallows release events, so drop held state to avoid a stuck drag.
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if !focused {
			w.input.Reset()
		}
	})

	// Use framebuffer size callback for pixel-accurate resize events.
	// On high-DPI displays (e.g., macOS Retina), framebuffer size differs from window size.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFramebufferSizeCallback
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.setSize(width, height)
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	// Update stored dimensions to reflect actual framebuffer size (may differ from requested on high-DPI).
	w.setSize(win.GetFramebufferSize())

	return nil
}

// toFramebuffer converts GLFW screen coordinates into framebuffer pixels so pointer
// positions share a space with the viewport.
func (gw *glfwWindow) toFramebuffer(xpos, ypos float64) (float32, float32) {
	winW, winH := gw.window.GetSize()
	fbW, fbH := gw.window.GetFramebufferSize()
	scaleX, scaleY := 1.0, 1.0
	if winW > 0 && winH > 0 {
		scaleX = float64(fbW) / float64(winW)
		scaleY = float64(fbH) / float64(winH)
	}
	return float32(xpos * scaleX), float32(ypos * scaleY)
}

// framebufferCursor returns the current cursor position in framebuffer pixels.
func (gw *glfwWindow) framebufferCursor() (float32, float32) {
	return gw.toFramebuffer(gw.window.GetCursorPos())
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw := platformHandle(w)
	if gw == nil {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	gw := platformHandle(w)
	if gw == nil {
		return false
	}
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	// Detach under the lock so RequestClose never touches a destroyed window.
	w.mu.Lock()
	gw, _ := w.internalWindow.(*glfwWindow)
	w.internalWindow = nil
	w.mu.Unlock()

	if gw == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	return nil
}

// platformRequestClose flags the GLFW window for closing. glfwSetWindowShouldClose may be
// called from any thread; the lock is held so Close cannot destroy the window meanwhile.
func platformRequestClose(w *engineWindow) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gw, ok := w.internalWindow.(*glfwWindow); ok {
		gw.window.SetShouldClose(true)
	}
}

// platformHandle returns the GLFW window, or nil once it has been closed.
func platformHandle(w *engineWindow) *glfwWindow {
	w.mu.Lock()
	defer w.mu.Unlock()
	gw, _ := w.internalWindow.(*glfwWindow)
	return gw
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
