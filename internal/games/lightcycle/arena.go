package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/core"
)

// CellState tags what occupies an arena cell.
type CellState int

const (
	CellEmpty CellState = iota
	CellWall
	CellTrail
	CellHead
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellTrail:
		return "trail"
	case CellHead:
		return "head"
	default:
		return "unknown"
	}
}

// Cell is one arena position: its state plus the owning player for
// trail and head cells (zero for empty and wall cells).
type Cell struct {
	State CellState
	Owner core.PlayerID
}

// Arena is the fixed-size play field. The outermost ring of cells is wall.
// Positions outside the grid read as wall, so bounds checks and wall
// collisions collapse into one test.
type Arena struct {
	width  int
	height int
	cells  []Cell
}

// NewArena creates an arena with border walls and an empty interior.
func NewArena(width, height int) *Arena {
	a := &Arena{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	a.Reset()
	return a
}

// Width returns the arena width in cells.
func (a *Arena) Width() int {
	return a.width
}

// Height returns the arena height in cells.
func (a *Arena) Height() int {
	return a.height
}

// Reset clears all occupancy and rebuilds the border walls.
// Called when a match starts so nothing carries over between matches.
func (a *Arena) Reset() {
	for i := range a.cells {
		a.cells[i] = Cell{State: CellEmpty}
	}
	for x := 0; x < a.width; x++ {
		a.cells[x] = Cell{State: CellWall}
		a.cells[(a.height-1)*a.width+x] = Cell{State: CellWall}
	}
	for y := 0; y < a.height; y++ {
		a.cells[y*a.width] = Cell{State: CellWall}
		a.cells[y*a.width+a.width-1] = Cell{State: CellWall}
	}
}

// InBounds reports whether p lies inside the grid.
func (a *Arena) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < a.width && p.Y >= 0 && p.Y < a.height
}

// At returns the cell at p. Out-of-bounds positions read as wall.
func (a *Arena) At(p core.Point) Cell {
	if !a.InBounds(p) {
		return Cell{State: CellWall}
	}
	return a.cells[p.Y*a.width+p.X]
}

// set writes the cell at p. Out-of-bounds writes are ignored.
func (a *Arena) set(p core.Point, c Cell) {
	if !a.InBounds(p) {
		return
	}
	a.cells[p.Y*a.width+p.X] = c
}

// PlaceHead marks p as the head cell of the given player.
func (a *Arena) PlaceHead(p core.Point, owner core.PlayerID) {
	a.set(p, Cell{State: CellHead, Owner: owner})
}

// CommitMove converts the vacated head cell into trail and marks the new
// head position. The caller has already validated the move.
func (a *Arena) CommitMove(from, to core.Point, owner core.PlayerID) {
	a.set(from, Cell{State: CellTrail, Owner: owner})
	a.set(to, Cell{State: CellHead, Owner: owner})
}

// MarkWreck downgrades a dead cycle's head cell to trail. The wreck keeps
// acting as an obstacle for any cycle still alive.
func (a *Arena) MarkWreck(p core.Point, owner core.PlayerID) {
	a.set(p, Cell{State: CellTrail, Owner: owner})
}

// CountState returns the number of cells in the given state.
// Used by the head-uniqueness invariant checks in tests.
func (a *Arena) CountState(s CellState) int {
	n := 0
	for _, c := range a.cells {
		if c.State == s {
			n++
		}
	}
	return n
}
