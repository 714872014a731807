package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/core"
)

// CollisionKind classifies the outcome of a candidate move.
type CollisionKind int

const (
	Valid CollisionKind = iota
	WallCollision
	TrailCollision
	HeadOnCollision
)

// String returns a human-readable name for the collision kind.
func (k CollisionKind) String() string {
	switch k {
	case Valid:
		return "valid"
	case WallCollision:
		return "wall"
	case TrailCollision:
		return "trail"
	case HeadOnCollision:
		return "head-on"
	default:
		return "unknown"
	}
}

// Collision is the classification of one cycle's candidate next position,
// including the owner of the trail that was hit where applicable.
type Collision struct {
	Kind  CollisionKind
	Owner core.PlayerID
}

// MoveIntent is one cycle's planned move for the current tick, computed
// from the previous tick's state before anything is mutated.
type MoveIntent struct {
	ID   core.PlayerID
	From core.Point
	To   core.Point
}

// CheckMove classifies a single intent against the pre-move arena and the
// other cycles' intents and positions. The rules, in order:
//
//  1. Walls (including out of bounds).
//  2. Trail occupancy, own trail included. A moving cycle vacates its head
//     cell this tick and leaves trail behind, so every mover's From cell
//     counts as trail no matter the commit order.
//  3. Head positions: another mover targeting the same cell, or the head of
//     a cycle that stays put this tick, is a head-on.
//
// Evaluating every intent against the same snapshot is what makes
// simultaneous conflicts a draw instead of a first-come-first-served race.
func CheckMove(arena *Arena, m MoveIntent, all []MoveIntent, stationary map[core.PlayerID]core.Point) Collision {
	cell := arena.At(m.To)
	if cell.State == CellWall {
		return Collision{Kind: WallCollision}
	}
	if cell.State == CellTrail {
		return Collision{Kind: TrailCollision, Owner: cell.Owner}
	}

	for _, other := range all {
		if other.ID == m.ID {
			continue
		}
		// Both heads entering the same cell this tick.
		if other.To == m.To {
			return Collision{Kind: HeadOnCollision, Owner: other.ID}
		}
		// Entering a cell a mover vacates: that cell becomes its trail.
		if other.From == m.To {
			return Collision{Kind: TrailCollision, Owner: other.ID}
		}
	}

	for id, pos := range stationary {
		if id != m.ID && pos == m.To {
			return Collision{Kind: HeadOnCollision, Owner: id}
		}
	}

	if cell.State == CellHead && cell.Owner != m.ID {
		// Head cell not covered by an intent or the stationary set; treat
		// it as a crash rather than let two cycles overlap.
		return Collision{Kind: HeadOnCollision, Owner: cell.Owner}
	}

	return Collision{Kind: Valid}
}

// ResolveMoves classifies all intents for the tick in one pass.
// Returns the collision per player; entries with Kind Valid may commit.
func ResolveMoves(arena *Arena, intents []MoveIntent, stationary map[core.PlayerID]core.Point) map[core.PlayerID]Collision {
	results := make(map[core.PlayerID]Collision, len(intents))
	for _, m := range intents {
		results[m.ID] = CheckMove(arena, m, intents, stationary)
	}
	return results
}
