package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionRotateUp Action = iota
	ActionRotateDown
	ActionRotateLeft
	ActionRotateRight
	ActionZoomIn
	ActionZoomOut
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

func (a Action) String() string {
	switch a {
	case ActionRotateUp:
		return "rotate-up"
	case ActionRotateDown:
		return "rotate-down"
	case ActionRotateLeft:
		return "rotate-left"
	case ActionRotateRight:
		return "rotate-right"
	case ActionZoomIn:
		return "zoom-in"
	case ActionZoomOut:
		return "zoom-out"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

// InputManager maps physical keys to logical actions. It keeps a per-frame
// edge flag and a count of press and repeat events per action.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// held tracks key state so that Repeat does not raise justPressed
	held        [ActionCount]bool
	justPressed [ActionCount]bool

	// presses counts Press and Repeat events since the last TakePresses
	presses [ActionCount]int
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyUp, ActionRotateUp)
	im.BindKey(glfw.KeyDown, ActionRotateDown)
	im.BindKey(glfw.KeyLeft, ActionRotateLeft)
	im.BindKey(glfw.KeyRight, ActionRotateRight)

	// '+' shares a key with '=' on most layouts.
	im.BindKey(glfw.KeyEqual, ActionZoomIn)
	im.BindKey(glfw.KeyKPAdd, ActionZoomIn)
	im.BindKey(glfw.KeyMinus, ActionZoomOut)
	im.BindKey(glfw.KeyKPSubtract, ActionZoomOut)

	im.BindKey(glfw.KeyF5, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a key event and updates internal state
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	actions, exists := im.keyToActions[key]
	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed {
			if !im.held[act] {
				im.justPressed[act] = true
			}
			im.presses[act]++
		}
		im.held[act] = isPressed
	}
}

// SetKeyCallback sets up the GLFW key callback for this input manager
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// TakePresses returns the number of press and repeat events for action
// since the previous call and resets the count.
func (im *InputManager) TakePresses(action Action) int {
	if action < 0 || action >= ActionCount {
		return 0
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	n := im.presses[action]
	im.presses[action] = 0
	return n
}
