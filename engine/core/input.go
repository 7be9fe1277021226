package core

// KeyboardState is the query side of the input machine handed to game code.
type KeyboardState interface {
	IsKeyDown(key Key) bool
	IsKeyUp(key Key) bool
	IsKeyPressed(key Key) bool
	IsKeyReleased(key Key) bool
}

type keySet [KEYS_MAX_KEYS]bool

// InputState turns raw key events into per-tick level and edge queries.
//
// down persists across ticks. pressed and released only describe the tick
// in which the transition was recorded. BeginTick does not clear them: the
// clear is deferred to the first event of the new tick, so edges recorded
// after the previous tick stay visible until something new arrives.
type InputState struct {
	down         keySet
	pressed      keySet
	released     keySet
	pendingClear bool
}

func NewInputState() *InputState {
	return &InputState{}
}

func (s *InputState) OnStart() error {
	LogInfo("Input subsystem initialized.")
	return nil
}

// OnEnd drops all key state.
func (s *InputState) OnEnd() error {
	s.down = keySet{}
	s.pressed = keySet{}
	s.released = keySet{}
	s.pendingClear = false
	LogInfo("Input subsystem shut down.")
	return nil
}

// BeginTick arms the lazy clear of the edge sets.
func (s *InputState) BeginTick() {
	s.pendingClear = true
}

// RecordEvent applies one raw event. Unmapped keys are ignored, but still
// count as the first event of the tick for the deferred clear.
func (s *InputState) RecordEvent(evt RawEvent) {
	if s.pendingClear {
		s.pressed = keySet{}
		s.released = keySet{}
		s.pendingClear = false
	}

	if !evt.Mapped() {
		return
	}
	key := evt.Key

	switch evt.Action {
	case KEY_ACTION_PRESS, KEY_ACTION_REPEAT:
		if !s.down[key] {
			s.pressed[key] = true
		}
		s.down[key] = true
	default:
		if s.down[key] {
			s.released[key] = true
		}
		s.down[key] = false
	}
}

func (s *InputState) IsKeyDown(key Key) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return s.down[key]
}

func (s *InputState) IsKeyUp(key Key) bool {
	return !s.IsKeyDown(key)
}

// IsKeyPressed is true only during the tick of the key's rising edge.
func (s *InputState) IsKeyPressed(key Key) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return s.pressed[key]
}

// IsKeyReleased is true only during the tick of the key's falling edge.
func (s *InputState) IsKeyReleased(key Key) bool {
	if key >= KEYS_MAX_KEYS {
		return false
	}
	return s.released[key]
}
