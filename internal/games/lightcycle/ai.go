package lightcycle

import (
	"math/rand"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

// Command is what a controller returns each tick: an optional turn plus
// whether to boost. A controller always returns a definite command — a
// cycle cannot stop, so "no safe move" still means going straight.
type Command struct {
	Turn    Direction
	HasTurn bool
	Boost   bool
}

// View gives a controller read access to the previous tick's state.
// Controllers never mutate the arena or the cycles.
type View struct {
	Arena    *Arena
	Self     *Cycle
	Opponent *Cycle
}

// Controller computes one move per tick for a computer-driven cycle.
type Controller interface {
	Decide(v View) Command
}

// NewController builds the controller for a difficulty tier.
// The shared RNG keeps the whole simulation deterministic per seed.
func NewController(d config.Difficulty, profile config.AIProfile, rng *rand.Rand) Controller {
	switch d {
	case config.DifficultyEasy:
		return &easyController{profile: profile, rng: rng}
	case config.DifficultyHard:
		return &hardController{profile: profile, rng: rng}
	default:
		return &mediumController{profile: profile, rng: rng}
	}
}

// clearance returns how many consecutive empty cells lie ahead of from in
// the given direction, probing at most maxSteps cells.
func clearance(arena *Arena, from core.Point, dir Direction, maxSteps int) int {
	steps := 0
	p := from
	for steps < maxSteps {
		p = p.Add(dir.Vector())
		if arena.At(p).State != CellEmpty {
			break
		}
		steps++
	}
	return steps
}

// candidateDirs lists the legal headings from the current one:
// straight, left turn, right turn. Reversal is never legal.
func candidateDirs(heading Direction) []Direction {
	switch heading {
	case DirUp, DirDown:
		return []Direction{heading, DirLeft, DirRight}
	default:
		return []Direction{heading, DirUp, DirDown}
	}
}

// safeDirs filters candidates down to those whose immediate next cell is
// free and with clearance of at least lookAhead cells, falling back to
// "immediate cell free" when nothing clears the full look-ahead.
func safeDirs(v View, lookAhead int) []Direction {
	var full, partial []Direction
	for _, d := range candidateDirs(v.Self.Heading) {
		c := clearance(v.Arena, v.Self.Pos, d, lookAhead)
		if c >= lookAhead {
			full = append(full, d)
		} else if c >= 1 {
			partial = append(partial, d)
		}
	}
	if len(full) > 0 {
		return full
	}
	return partial
}

// command builds a Command, omitting the turn when it matches the current
// heading so human-style "keep going" is representable.
func command(heading, chosen Direction, boost bool) Command {
	if chosen == heading {
		return Command{Boost: boost}
	}
	return Command{Turn: chosen, HasTurn: true, Boost: boost}
}

// easyController plays with a short look-ahead and deliberate mistakes:
// with probability ErrorRate it steers without checking safety at all,
// simulating the reaction delay of a distracted rider.
type easyController struct {
	profile config.AIProfile
	rng     *rand.Rand
}

func (e *easyController) Decide(v View) Command {
	dirs := candidateDirs(v.Self.Heading)

	if e.rng.Float64() < e.profile.ErrorRate {
		chosen := dirs[e.rng.Intn(len(dirs))]
		return command(v.Self.Heading, chosen, false)
	}

	safe := safeDirs(v, e.profile.LookAhead)
	if len(safe) == 0 {
		// Boxed in: going straight is the only definite command left.
		return Command{}
	}
	chosen := safe[e.rng.Intn(len(safe))]

	boost := v.Self.Energy >= e.profile.BoostThreshold &&
		e.rng.Float64() < e.profile.BoostChance &&
		clearance(v.Arena, v.Self.Pos, chosen, e.profile.LookAhead) >= e.profile.LookAhead
	return command(v.Self.Heading, chosen, boost)
}

// mediumController always takes a locally safe move: it keeps its heading
// while the path ahead is clear and otherwise turns toward the candidate
// with the most clearance. Boosts opportunistically on open road.
type mediumController struct {
	profile config.AIProfile
	rng     *rand.Rand
}

func (m *mediumController) Decide(v View) Command {
	ahead := clearance(v.Arena, v.Self.Pos, v.Self.Heading, m.profile.LookAhead)

	chosen := v.Self.Heading
	if ahead < m.profile.LookAhead {
		best := -1
		for _, d := range candidateDirs(v.Self.Heading) {
			c := clearance(v.Arena, v.Self.Pos, d, m.profile.LookAhead)
			if c > best {
				best = c
				chosen = d
			}
		}
		if best < 1 {
			// No survivable move; keep the heading.
			return Command{}
		}
	}

	boost := v.Self.Energy >= m.profile.BoostThreshold &&
		m.rng.Float64() < m.profile.BoostChance &&
		clearance(v.Arena, v.Self.Pos, chosen, m.profile.LookAhead) >= m.profile.LookAhead
	return command(v.Self.Heading, chosen, boost)
}

// hardController scores every survivable candidate by the free area
// reachable after the move (flood fill, budget-capped) and penalizes cells
// the opponent can reach first, preferring moves that maximize its own
// space while cutting into the opponent's. Boosts aggressively whenever
// the road is clear and the meter is charged.
type hardController struct {
	profile config.AIProfile
	rng     *rand.Rand
}

func (h *hardController) Decide(v View) Command {
	type scored struct {
		dir   Direction
		score int
	}

	var best *scored
	for _, d := range candidateDirs(v.Self.Heading) {
		next := v.Self.Pos.Add(d.Vector())
		if v.Arena.At(next).State != CellEmpty {
			continue
		}

		score := reachableArea(v.Arena, next, h.profile.FloodFillBudget)

		// Moving toward the opponent's head shrinks the space available
		// to them; reward closing the distance a little.
		if v.Opponent != nil && v.Opponent.Alive {
			dist := core.Abs(next.X-v.Opponent.Pos.X) + core.Abs(next.Y-v.Opponent.Pos.Y)
			score -= dist / 4
		}

		// Stable tie-break: prefer keeping the heading.
		if d == v.Self.Heading {
			score++
		}

		if best == nil || score > best.score {
			best = &scored{dir: d, score: score}
		}
	}

	if best == nil {
		return Command{}
	}

	boost := v.Self.Energy >= h.profile.BoostThreshold &&
		clearance(v.Arena, v.Self.Pos, best.dir, h.profile.LookAhead) >= h.profile.LookAhead &&
		h.rng.Float64() < h.profile.BoostChance*2
	return command(v.Self.Heading, best.dir, boost)
}
