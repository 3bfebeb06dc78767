package common

import "strings"

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW         = 87  // W key (ASCII)
	KeyA         = 65  // A key (ASCII)
	KeyS         = 83  // S key (ASCII)
	KeyD         = 68  // D key (ASCII)
	KeyQ         = 81  // Q key (ASCII)
	KeyE         = 69  // E key (ASCII)
	KeyM         = 77  // M key (ASCII), default camera translation modifier
	KeyR         = 82  // R key (ASCII)
	KeySpace     = 32  // Spacebar (ASCII)
	KeyBackspace = 259 // Backspace key (GLFW)
	KeyEsc       = 256 // Escape key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift    = 340 // Left Shift (GLFW)
	KeyLeftControl  = 341 // Left Control (GLFW)
	KeyLeftAlt      = 342 // Left Alt (GLFW)
	KeyRightShift   = 344 // Right Shift (GLFW)
	KeyRightControl = 345 // Right Control (GLFW)
)

// keyNames maps the names accepted in configuration files onto key codes.
var keyNames = map[string]uint32{
	"w":             KeyW,
	"a":             KeyA,
	"s":             KeyS,
	"d":             KeyD,
	"q":             KeyQ,
	"e":             KeyE,
	"m":             KeyM,
	"r":             KeyR,
	"space":         KeySpace,
	"backspace":     KeyBackspace,
	"esc":           KeyEsc,
	"left_shift":    KeyLeftShift,
	"left_control":  KeyLeftControl,
	"left_alt":      KeyLeftAlt,
	"right_shift":   KeyRightShift,
	"right_control": KeyRightControl,
}

// KeyByName looks up a key code by its configuration name, e.g. "m" or "left_shift".
// Lookup is case-insensitive.
//
// Parameters:
//   - name: the key name
//
// Returns:
//   - uint32: the key code
//   - bool: false if the name is unknown
func KeyByName(name string) (uint32, bool) {
	code, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
