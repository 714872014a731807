package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// Binding pairs a player slot with the action a key triggers.
type Binding struct {
	Player core.PlayerID
	Action core.Action
}

// KeyMapper translates Bubble Tea key messages to per-player game actions.
// This centralizes key bindings and makes them testable.
//
// Player 1 steers with WASD, player 2 with the arrow keys. Shifted keys
// (uppercase letters, shift+arrows) steer and fire the boost at once,
// standing in for a held boost key which terminals cannot report.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message into bindings. A single key can produce
// several actions (a shifted turn also boosts; "d" is both player 1's
// right turn and the menu's difficulty toggle — the session only reads
// the one that fits its phase).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (bindings []Binding, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return nil, true
	}

	p1 := func(a core.Action) { bindings = append(bindings, Binding{core.Player1, a}) }
	p2 := func(a core.Action) { bindings = append(bindings, Binding{core.Player2, a}) }

	switch key {
	// Player 1 steering
	case "w":
		p1(core.ActionTurnUp)
	case "s":
		p1(core.ActionTurnDown)
	case "a":
		p1(core.ActionTurnLeft)
	case "d":
		p1(core.ActionTurnRight)
		p1(core.ActionCycleDifficulty)

	// Player 1 steering with boost
	case "W":
		p1(core.ActionTurnUp)
		p1(core.ActionBoost)
	case "S":
		p1(core.ActionTurnDown)
		p1(core.ActionBoost)
	case "A":
		p1(core.ActionTurnLeft)
		p1(core.ActionBoost)
	case "D":
		p1(core.ActionTurnRight)
		p1(core.ActionBoost)

	// Player 2 steering
	case "up":
		p2(core.ActionTurnUp)
	case "down":
		p2(core.ActionTurnDown)
	case "left":
		p2(core.ActionTurnLeft)
	case "right":
		p2(core.ActionTurnRight)

	// Player 2 steering with boost
	case "shift+up":
		p2(core.ActionTurnUp)
		p2(core.ActionBoost)
	case "shift+down":
		p2(core.ActionTurnDown)
		p2(core.ActionBoost)
	case "shift+left":
		p2(core.ActionTurnLeft)
		p2(core.ActionBoost)
	case "shift+right":
		p2(core.ActionTurnRight)
		p2(core.ActionBoost)

	// Menu and session control
	case "1":
		p1(core.ActionModeSolo)
	case "2":
		p1(core.ActionModeDuel)
	case "3":
		p1(core.ActionModeDemo)
	case "p":
		p1(core.ActionPause)
	case "esc":
		p1(core.ActionBack)
	case "r":
		p1(core.ActionRestart)
	}

	return bindings, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	bindings, isQuit := km.MapKey(msg)
	for _, b := range bindings {
		frame.Press(b.Player, b.Action)
	}
	return isQuit
}
