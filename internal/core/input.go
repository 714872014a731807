package core

// PlayerID identifies a player slot in a match.
type PlayerID int

const (
	// Player1 is the left cycle, always locally controlled in human modes.
	Player1 PlayerID = 1
	// Player2 is the right cycle: second human in duel mode, CPU otherwise.
	Player2 PlayerID = 2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "unknown"
	}
}

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnUp           // Steer the cycle upward
	ActionTurnDown         // Steer the cycle downward
	ActionTurnLeft         // Steer the cycle left
	ActionTurnRight        // Steer the cycle right
	ActionBoost            // Engage the boost
	ActionModeSolo         // Menu: start single player vs CPU
	ActionModeDuel         // Menu: start local two-player match
	ActionModeDemo         // Menu: start CPU vs CPU demo
	ActionCycleDifficulty  // Menu: rotate AI difficulty
	ActionPause            // Pause/resume the match
	ActionBack             // Abort to menu
	ActionRestart          // Rematch after game over
	ActionQuit             // Exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnUp:
		return "TurnUp"
	case ActionTurnDown:
		return "TurnDown"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionBoost:
		return "Boost"
	case ActionModeSolo:
		return "ModeSolo"
	case ActionModeDuel:
		return "ModeDuel"
	case ActionModeDemo:
		return "ModeDemo"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one
// simulation tick. It contains all actions triggered during this frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// MultiInputFrame contains input from all players for a single tick.
// The platform builds this from keyboard input; the game synthesizes
// equivalent frames for AI-controlled cycles during its step.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player.
// Returns an empty frame if the player has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if m.ByPlayer == nil {
		return NewInputFrame()
	}
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press is a convenience for setting a single action on a player's frame.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	frame := m.Player(id)
	frame.Set(a)
	m.SetPlayer(id, frame)
}

// Any returns true if any player triggered the given action this frame.
// Used for global session actions (pause, menu selection, back).
func (m MultiInputFrame) Any(a Action) bool {
	for _, frame := range m.ByPlayer {
		if frame.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		clone.ByPlayer[id] = frame.Clone()
	}
	return clone
}
