package lightcycle

import (
	"github.com/vovakirdan/lightcycle/internal/core"
)

// Direction represents a cycle's heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the unit grid offset for the direction.
func (d Direction) Vector() core.Point {
	switch d {
	case DirUp:
		return core.Point{X: 0, Y: -1}
	case DirDown:
		return core.Point{X: 0, Y: 1}
	case DirLeft:
		return core.Point{X: -1, Y: 0}
	default:
		return core.Point{X: 1, Y: 0}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether the two directions are reverses of each other.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cycle is one light cycle: a moving head plus the append-only trail of
// cells it has vacated. Owned by the session; created at match start and
// discarded when the session returns to the menu.
type Cycle struct {
	ID      core.PlayerID
	Pos     core.Point
	Heading Direction
	Alive   bool
	Human   bool

	// Trail holds every cell the cycle has vacated, oldest first.
	// Grows while alive, frozen once dead.
	Trail []core.Point

	// Energy drives the boost. Bounded to [0, max]; reaching zero forces
	// the boost off regardless of input.
	Energy   float64
	Boosting bool

	// Cause records what killed the cycle, for the game-over screen.
	Cause Collision

	pending    Direction // Buffered turn, applied on the next move
	boostHold  int       // Remaining ticks the boost command stays asserted
	moveTicker int       // Ticks since the last move
}

// newCycle creates a cycle at the given starting position and heading
// with a full energy meter.
func newCycle(id core.PlayerID, pos core.Point, heading Direction, human bool, maxEnergy float64) *Cycle {
	return &Cycle{
		ID:      id,
		Pos:     pos,
		Heading: heading,
		Alive:   true,
		Human:   human,
		Energy:  maxEnergy,
		pending: heading,
	}
}

// Steer buffers a turn for the next move. Reversing into the own trail is
// never legal, so opposite directions are ignored.
func (c *Cycle) Steer(d Direction) {
	if !c.Alive || d.IsOpposite(c.Heading) {
		return
	}
	c.pending = d
}

// AssertBoost latches the boost command for the given number of ticks.
// Terminals deliver no key-up events, so one press emulates a short hold;
// AI controllers re-assert every tick instead.
func (c *Cycle) AssertBoost(latchTicks int) {
	if !c.Alive {
		return
	}
	c.boostHold = latchTicks
}

// updateEnergy advances the boost/energy model by one tick.
// Drain and regen are per-tick amounts; minEngage stops the boost from
// re-engaging on a near-empty meter.
func (c *Cycle) updateEnergy(drain, regen, max, minEngage float64) {
	asserted := c.boostHold > 0
	if c.boostHold > 0 {
		c.boostHold--
	}

	if asserted && !c.Boosting && c.Energy >= minEngage {
		c.Boosting = true
	}
	if !asserted {
		c.Boosting = false
	}

	if c.Boosting && c.Energy > 0 {
		c.Energy = core.ClampF(c.Energy-drain, 0, max)
		if c.Energy == 0 {
			c.Boosting = false
			c.boostHold = 0
		}
	} else {
		c.Boosting = false
		c.Energy = core.ClampF(c.Energy+regen, 0, max)
	}
}

// wantsMove advances the movement ticker and reports whether the cycle
// moves this tick. Boosting halves the move interval, doubling speed.
func (c *Cycle) wantsMove(moveEvery int) bool {
	interval := moveEvery
	if c.Boosting {
		interval = core.Max(1, moveEvery/2)
	}
	c.moveTicker++
	if c.moveTicker < interval {
		return false
	}
	c.moveTicker = 0
	return true
}

// nextPosition applies the buffered turn and returns the cell the cycle
// would enter this move.
func (c *Cycle) nextPosition() core.Point {
	c.Heading = c.pending
	return c.Pos.Add(c.Heading.Vector())
}

// kill marks the cycle dead and freezes its trail.
func (c *Cycle) kill(cause Collision) {
	c.Alive = false
	c.Boosting = false
	c.boostHold = 0
	c.Cause = cause
}
