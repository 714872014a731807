// Package multiplayer provides identity types for matches and sessions.
// Used for local duels, CPU matches, and SSH session bookkeeping.
package multiplayer

import "github.com/vovakirdan/lightcycle/internal/core"

// PlayerID is an alias to core.PlayerID for convenience.
// Player1 is always the local human player; Player2 can be a second human
// on the same keyboard or the CPU.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID identifies who a match belongs to: the SSH username for
// remote play, "local" for the local terminal.
type SessionID string

// MatchResultData is the storage-agnostic record of a finished match.
type MatchResultData struct {
	MatchID      string
	Mode         string
	Difficulty   string
	Winner       string // "player1", "player2", "cpu" or "" for a draw
	Draw         bool
	DurationTick int
	Session      string
}

// MatchResultSaver persists finished matches. Implemented by the storage
// package; kept as an interface so the platform never imports storage types.
type MatchResultSaver interface {
	SaveMatchResult(data MatchResultData) error
}
