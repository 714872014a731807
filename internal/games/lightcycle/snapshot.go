package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// CycleSnapshot captures one cycle's observable state.
type CycleSnapshot struct {
	ID       core.PlayerID
	X        int
	Y        int
	Heading  Direction
	Energy   float64
	Boosting bool
	Alive    bool
	TrailLen int
}

// Snapshot captures the full session state at a tick boundary. Two
// sessions stepped identically from the same seed produce identical
// snapshots.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Mode       Mode
	Difficulty config.Difficulty
	MatchTicks int
	Cycles     []CycleSnapshot
	Winner     core.PlayerID
	Draw       bool
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Mode:       g.mode,
		Difficulty: g.difficulty,
		MatchTicks: g.matchTicks,
		Winner:     g.winner,
		Draw:       g.draw,
	}
	for _, c := range g.cycles {
		s.Cycles = append(s.Cycles, CycleSnapshot{
			ID:       c.ID,
			X:        c.Pos.X,
			Y:        c.Pos.Y,
			Heading:  c.Heading,
			Energy:   c.Energy,
			Boosting: c.Boosting,
			Alive:    c.Alive,
			TrailLen: len(c.Trail),
		})
	}
	return s
}
