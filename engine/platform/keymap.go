package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/cekidot/engine/core"
)

var keyMapping = map[glfw.Key]core.Key{
	glfw.KeyA: core.KEY_A, glfw.KeyB: core.KEY_B, glfw.KeyC: core.KEY_C,
	glfw.KeyD: core.KEY_D, glfw.KeyE: core.KEY_E, glfw.KeyF: core.KEY_F,
	glfw.KeyG: core.KEY_G, glfw.KeyH: core.KEY_H, glfw.KeyI: core.KEY_I,
	glfw.KeyJ: core.KEY_J, glfw.KeyK: core.KEY_K, glfw.KeyL: core.KEY_L,
	glfw.KeyM: core.KEY_M, glfw.KeyN: core.KEY_N, glfw.KeyO: core.KEY_O,
	glfw.KeyP: core.KEY_P, glfw.KeyQ: core.KEY_Q, glfw.KeyR: core.KEY_R,
	glfw.KeyS: core.KEY_S, glfw.KeyT: core.KEY_T, glfw.KeyU: core.KEY_U,
	glfw.KeyV: core.KEY_V, glfw.KeyW: core.KEY_W, glfw.KeyX: core.KEY_X,
	glfw.KeyY: core.KEY_Y, glfw.KeyZ: core.KEY_Z,

	glfw.Key0: core.KEY_0, glfw.Key1: core.KEY_1, glfw.Key2: core.KEY_2,
	glfw.Key3: core.KEY_3, glfw.Key4: core.KEY_4, glfw.Key5: core.KEY_5,
	glfw.Key6: core.KEY_6, glfw.Key7: core.KEY_7, glfw.Key8: core.KEY_8,
	glfw.Key9:           core.KEY_9,

	glfw.KeyGraveAccent: core.KEY_GRAVE,
	glfw.KeyEscape:      core.KEY_ESCAPE,
	glfw.KeySpace:       core.KEY_SPACE,
	glfw.KeyEnter:       core.KEY_ENTER,
	glfw.KeyTab:         core.KEY_TAB,
	glfw.KeyDelete:      core.KEY_DELETE,
	glfw.KeyBackspace:   core.KEY_BACKSPACE,
	glfw.KeyInsert:      core.KEY_INSERT,
	glfw.KeyRight:       core.KEY_RIGHT,
	glfw.KeyLeft:        core.KEY_LEFT,
	glfw.KeyDown:        core.KEY_DOWN,
	glfw.KeyUp:          core.KEY_UP,
	glfw.KeyPageUp:      core.KEY_PAGEUP,
	glfw.KeyPageDown:    core.KEY_PAGEDOWN,
	glfw.KeyHome:        core.KEY_HOME,
	glfw.KeyEnd:         core.KEY_END,
	glfw.KeyCapsLock:    core.KEY_CAPSLOCK,
	glfw.KeyScrollLock:  core.KEY_SCROLLLOCK,
	glfw.KeyNumLock:     core.KEY_NUMLOCK,
	glfw.KeyPrintScreen: core.KEY_PRINTSCREEN,
	glfw.KeyPause:       core.KEY_PAUSE,
}

// MapKey converts a glfw key and action into a raw input event. Keys
// without an abstract equivalent map to core.KEY_NONE.
func MapKey(key glfw.Key, action glfw.Action) core.RawEvent {
	return core.RawEvent{
		Key:    keyMapping[key],
		Action: mapAction(action),
	}
}

func mapAction(action glfw.Action) core.KeyAction {
	switch action {
	case glfw.Press:
		return core.KEY_ACTION_PRESS
	case glfw.Release:
		return core.KEY_ACTION_RELEASE
	case glfw.Repeat:
		return core.KEY_ACTION_REPEAT
	default:
		return core.KEY_ACTION_OTHER
	}
}
