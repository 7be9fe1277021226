package core

import "strings"

// Key is an abstract keyboard key, independent of the platform key codes.
type Key uint16

const (
	// KEY_NONE marks a platform key with no abstract mapping.
	KEY_NONE Key = iota

	KEY_A
	KEY_B
	KEY_C
	KEY_D
	KEY_E
	KEY_F
	KEY_G
	KEY_H
	KEY_I
	KEY_J
	KEY_K
	KEY_L
	KEY_M
	KEY_N
	KEY_O
	KEY_P
	KEY_Q
	KEY_R
	KEY_S
	KEY_T
	KEY_U
	KEY_V
	KEY_W
	KEY_X
	KEY_Y
	KEY_Z

	KEY_0
	KEY_1
	KEY_2
	KEY_3
	KEY_4
	KEY_5
	KEY_6
	KEY_7
	KEY_8
	KEY_9

	KEY_GRAVE
	KEY_ESCAPE
	KEY_SPACE
	KEY_ENTER
	KEY_TAB
	KEY_DELETE
	KEY_BACKSPACE
	KEY_INSERT
	KEY_RIGHT
	KEY_LEFT
	KEY_DOWN
	KEY_UP
	KEY_PAGEUP
	KEY_PAGEDOWN
	KEY_HOME
	KEY_END
	KEY_CAPSLOCK
	KEY_SCROLLLOCK
	KEY_NUMLOCK
	KEY_PRINTSCREEN
	KEY_PAUSE

	KEYS_MAX_KEYS
)

var keyNames = [KEYS_MAX_KEYS]string{
	KEY_NONE:        "NONE",
	KEY_GRAVE:       "GRAVE",
	KEY_ESCAPE:      "ESCAPE",
	KEY_SPACE:       "SPACE",
	KEY_ENTER:       "ENTER",
	KEY_TAB:         "TAB",
	KEY_DELETE:      "DELETE",
	KEY_BACKSPACE:   "BACKSPACE",
	KEY_INSERT:      "INSERT",
	KEY_RIGHT:       "RIGHT",
	KEY_LEFT:        "LEFT",
	KEY_DOWN:        "DOWN",
	KEY_UP:          "UP",
	KEY_PAGEUP:      "PAGEUP",
	KEY_PAGEDOWN:    "PAGEDOWN",
	KEY_HOME:        "HOME",
	KEY_END:         "END",
	KEY_CAPSLOCK:    "CAPSLOCK",
	KEY_SCROLLLOCK:  "SCROLLLOCK",
	KEY_NUMLOCK:     "NUMLOCK",
	KEY_PRINTSCREEN: "PRINTSCREEN",
	KEY_PAUSE:       "PAUSE",
}

func init() {
	for k := KEY_A; k <= KEY_Z; k++ {
		keyNames[k] = string(rune('A' + int(k-KEY_A)))
	}
	for k := KEY_0; k <= KEY_9; k++ {
		keyNames[k] = string(rune('0' + int(k-KEY_0)))
	}
}

func (k Key) String() string {
	if k >= KEYS_MAX_KEYS {
		return "INVALID"
	}
	return keyNames[k]
}

// ParseKey looks up an abstract key by its name, case-insensitively.
func ParseKey(name string) (Key, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for k := KEY_A; k < KEYS_MAX_KEYS; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KEY_NONE, false
}

// KeyAction describes what happened to a key in a raw event.
type KeyAction uint8

const (
	KEY_ACTION_PRESS KeyAction = iota
	KEY_ACTION_RELEASE
	KEY_ACTION_REPEAT
	KEY_ACTION_OTHER
)

// RawEvent is a key event as produced by the key-mapping collaborator.
// Key is KEY_NONE when the platform code has no mapping.
type RawEvent struct {
	Key    Key
	Action KeyAction
}

// Mapped reports whether the event refers to an abstract key.
func (e RawEvent) Mapped() bool {
	return e.Key != KEY_NONE && e.Key < KEYS_MAX_KEYS
}
