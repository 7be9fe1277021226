//go:build cgo

package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/cekidot/engine/core"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want core.Key
	}{
		{glfw.KeyA, core.KEY_A},
		{glfw.KeyZ, core.KEY_Z},
		{glfw.Key0, core.KEY_0},
		{glfw.Key9, core.KEY_9},
		{glfw.KeyEscape, core.KEY_ESCAPE},
		{glfw.KeySpace, core.KEY_SPACE},
		{glfw.KeyGraveAccent, core.KEY_GRAVE},
		{glfw.KeyUp, core.KEY_UP},
		{glfw.KeyPause, core.KEY_PAUSE},
		{glfw.KeyUnknown, core.KEY_NONE},
		{glfw.KeyF1, core.KEY_NONE},
		{glfw.KeyKP5, core.KEY_NONE},
		{glfw.KeyLeftShift, core.KEY_NONE},
	}
	for _, tt := range tests {
		got := MapKey(tt.key, glfw.Press)
		if got.Key != tt.want {
			t.Errorf("MapKey(%d) key = %s, want %s", tt.key, got.Key, tt.want)
		}
		if tt.want == core.KEY_NONE && got.Mapped() {
			t.Errorf("MapKey(%d) reported as mapped", tt.key)
		}
	}
}

func TestMapKeyCoversEveryAbstractKey(t *testing.T) {
	seen := make(map[core.Key]bool, len(keyMapping))
	for _, k := range keyMapping {
		if seen[k] {
			t.Errorf("%s is mapped twice", k)
		}
		seen[k] = true
	}
	for k := core.KEY_NONE + 1; k < core.KEYS_MAX_KEYS; k++ {
		if !seen[k] {
			t.Errorf("%s has no glfw key", k)
		}
	}
}

func TestMapAction(t *testing.T) {
	tests := []struct {
		action glfw.Action
		want   core.KeyAction
	}{
		{glfw.Press, core.KEY_ACTION_PRESS},
		{glfw.Release, core.KEY_ACTION_RELEASE},
		{glfw.Repeat, core.KEY_ACTION_REPEAT},
		{glfw.Action(42), core.KEY_ACTION_OTHER},
	}
	for _, tt := range tests {
		if got := MapKey(glfw.KeyA, tt.action).Action; got != tt.want {
			t.Errorf("MapKey(A, %d) action = %v, want %v", tt.action, got, tt.want)
		}
	}
}

func TestWindowCanvasCountsFrames(t *testing.T) {
	c := NewWindowCanvas(nil, 640, 480)
	for i := 0; i < 3; i++ {
		if err := c.OnRender(); err != nil {
			t.Fatalf("OnRender: %v", err)
		}
	}
	if got := c.Frames(); got != 3 {
		t.Fatalf("frames = %d, want 3", got)
	}
	if c.Width() != 640 || c.Height() != 480 {
		t.Fatalf("size = %dx%d, want 640x480", c.Width(), c.Height())
	}
}
