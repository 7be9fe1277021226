package core

import "time"

// System event codes delivered by the platform event source.
type SystemEventCode int

const (
	// Keyboard key pressed, released or repeated.
	/* Context usage:
	 * Event.Input holds the mapped key and action.
	 */
	EVENT_CODE_KEY SystemEventCode = 0x01

	// Mouse button pressed or released.
	/* Context usage:
	 * Event.Button, Event.Pressed
	 */
	EVENT_CODE_BUTTON SystemEventCode = 0x02

	// Window moved.
	/* Context usage:
	 * Event.X, Event.Y
	 */
	EVENT_CODE_POSITION SystemEventCode = 0x03

	// Framebuffer resized from the OS.
	/* Context usage:
	 * Event.Width, Event.Height
	 */
	EVENT_CODE_FRAMEBUFFER_SIZE SystemEventCode = 0x04

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// Event is a timestamped raw event drained from the platform queue.
type Event struct {
	Code SystemEventCode
	// Time since the platform was started.
	Time time.Duration

	Input   RawEvent
	Button  int
	Pressed bool
	X, Y    int

	Width, Height int
}

// KeyEvent builds a key event, mainly for tests and synthetic input.
func KeyEvent(key Key, action KeyAction) Event {
	return Event{Code: EVENT_CODE_KEY, Input: RawEvent{Key: key, Action: action}}
}

// AffectsGeometry reports whether the event may change the canvas size.
func (e Event) AffectsGeometry() bool {
	return e.Code == EVENT_CODE_POSITION || e.Code == EVENT_CODE_FRAMEBUFFER_SIZE
}

// IsKeyPress reports whether the event is an initial press of key.
func (e Event) IsKeyPress(key Key) bool {
	return e.Code == EVENT_CODE_KEY && e.Input.Key == key && e.Input.Action == KEY_ACTION_PRESS
}

// Should return true if handled.
type FnOnEvent func(listener interface{}, evt Event) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventBus fans drained events out to listeners registered per code.
type EventBus struct {
	registered map[SystemEventCode][]*registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[SystemEventCode][]*registeredEvent),
	}
}

/**
 * Register to listen for when events are sent with the provided code. Events with duplicate
 * listeners will not be registered again and will cause this to return false.
 */
func (b *EventBus) Register(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if onEvent == nil || code <= 0 || code >= MAX_EVENT_CODE {
		return false
	}
	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	b.registered[code] = append(b.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister from listening for when events are sent with the provided code. If no matching
 * registration is found, this function returns false.
 */
func (b *EventBus) Unregister(code SystemEventCode, listener interface{}) bool {
	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of its code. If a listener returns true, the
 * event is considered handled and is not passed on to any more listeners.
 */
func (b *EventBus) Fire(evt Event) bool {
	for _, e := range b.registered[evt.Code] {
		if e.callback(e.listener, evt) {
			return true
		}
	}
	return false
}

// Shutdown drops every registration.
func (b *EventBus) Shutdown() {
	b.registered = make(map[SystemEventCode][]*registeredEvent)
}
