package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	mouseButtonCount
)

// String returns a short name for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Input is the polled view of pointer and keyboard state that camera controllers read each tick.
type Input interface {
	// Pointer returns the current pointer position in window pixel coordinates (Y down).
	//
	// Returns:
	//   - mgl32.Vec2: pointer position
	Pointer() mgl32.Vec2

	// AnyButtonPressed reports whether any pointer button is held.
	//
	// Returns:
	//   - bool: true if at least one button is down
	AnyButtonPressed() bool

	// ButtonPressed reports whether the given pointer button is held.
	//
	// Parameters:
	//   - button: the button to query
	//
	// Returns:
	//   - bool: true if the button is down
	ButtonPressed(button MouseButton) bool

	// KeyPressed reports whether the given key is held.
	//
	// Parameters:
	//   - keyCode: virtual key code (see common key codes)
	//
	// Returns:
	//   - bool: true if the key is down
	KeyPressed(keyCode uint32) bool
}

// State is a thread-safe Input backed by explicitly set values. Window event callbacks write
// into it from the event thread while controllers poll it from the tick goroutine.
type State struct {
	mu *sync.Mutex

	pointer mgl32.Vec2
	buttons [mouseButtonCount]bool
	keys    map[uint32]bool
}

var _ Input = &State{}

// NewState creates an empty State with no buttons or keys held and the pointer at the origin.
//
// Returns:
//   - *State: the newly created state
func NewState() *State {
	return &State{
		mu:   &sync.Mutex{},
		keys: make(map[uint32]bool),
	}
}

func (s *State) Pointer() mgl32.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

func (s *State) AnyButtonPressed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, down := range s.buttons {
		if down {
			return true
		}
	}
	return false
}

func (s *State) ButtonPressed(button MouseButton) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return s.buttons[button]
}

func (s *State) KeyPressed(keyCode uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[keyCode]
}

// SetPointer records the pointer position.
//
// Parameters:
//   - x, y: window pixel coordinates
func (s *State) SetPointer(x, y float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer = mgl32.Vec2{x, y}
}

// SetButton records a pointer button transition. Unknown buttons are ignored.
//
// Parameters:
//   - button: the button that changed
//   - down: true on press, false on release
func (s *State) SetButton(button MouseButton, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if button < 0 || button >= mouseButtonCount {
		return
	}
	s.buttons[button] = down
}

// SetKey records a key transition.
//
// Parameters:
//   - keyCode: virtual key code
//   - down: true on press, false on release
func (s *State) SetKey(keyCode uint32, down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if down {
		s.keys[keyCode] = true
		return
	}
	delete(s.keys, keyCode)
}

// Reset releases every button and key. The pointer position is kept.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons = [mouseButtonCount]bool{}
	clear(s.keys)
}
