package core

// Key identifies one of the directional keys the simulation reacts to.
// Everything else a frontend sees (quit, help) never reaches InputState.
type Key int

const (
	KeyNone Key = iota
	KeyUp       // Up arrow, W - jump
	KeyDown     // Down arrow, S - tracked, currently unused by the player
	KeyLeft     // Left arrow, A - run left
	KeyRight    // Right arrow, D - run right
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// Valid reports whether k is one of the four tracked directional keys.
func (k Key) Valid() bool {
	return k >= KeyUp && k <= KeyRight
}

// InputState tracks the set of currently held directional keys.
// Frontends feed it press/release events; the game only ever queries it.
type InputState struct {
	active []Key // held keys in press order
}

// NewInputState creates an empty input state.
func NewInputState() *InputState {
	return &InputState{active: make([]Key, 0, 4)}
}

// Press marks k as held. Pressing an already held key is a no-op,
// as is pressing anything that is not a directional key.
func (s *InputState) Press(k Key) {
	if !k.Valid() || s.IsActive(k) {
		return
	}
	s.active = append(s.active, k)
}

// Release marks k as no longer held. Releasing a key that is not held is a no-op.
func (s *InputState) Release(k Key) {
	for i, held := range s.active {
		if held == k {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// IsActive returns true if k is currently held. A nil state holds nothing.
func (s *InputState) IsActive(k Key) bool {
	if s == nil {
		return false
	}
	for _, held := range s.active {
		if held == k {
			return true
		}
	}
	return false
}

// Active returns a copy of the held keys in the order they were pressed.
func (s *InputState) Active() []Key {
	out := make([]Key, len(s.active))
	copy(out, s.active)
	return out
}

// Clear releases every key.
func (s *InputState) Clear() {
	s.active = s.active[:0]
}
