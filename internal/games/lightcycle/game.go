// Package lightcycle implements the TRON-style light cycle duel: two
// cycles on a grid, permanent trails, boost energy, and an AI opponent
// with three difficulty tiers.
package lightcycle

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/multiplayer"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

// Phase is the session state machine position.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode selects who controls the second cycle.
type Mode int

const (
	ModeVsCPU Mode = iota
	ModeDuel
	ModeDemo
)

// String returns a display name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeVsCPU:
		return "Single Player"
	case ModeDuel:
		return "Two Players"
	case ModeDemo:
		return "Demo"
	default:
		return "Unknown"
	}
}

// Slug returns the storage identifier for the mode.
func (m Mode) Slug() string {
	switch m {
	case ModeVsCPU:
		return "vs_cpu"
	case ModeDuel:
		return "local_duel"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
	startMode        string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the initial AI difficulty (easy, medium, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartMode makes the next Reset skip the menu and start the given
// mode directly (single, duel, demo). Empty means start on the menu.
func SetStartMode(mode string) {
	startMode = mode
}

// Game owns the whole session: the arena, both cycles, the AI
// controllers, and the Menu → Playing → Paused → GameOver state machine.
type Game struct {
	demo bool // Registered demo variant boots straight into ModeDemo

	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	phase      Phase
	mode       Mode
	difficulty config.Difficulty

	arena       *Arena
	cycles      []*Cycle
	controllers map[core.PlayerID]Controller

	matchID    string
	matchTicks int
	winner     core.PlayerID
	draw       bool
	overTicks  int // Ticks spent on the game-over screen, for the demo loop
	tooSmall   bool

	pendingResult *multiplayer.MatchResultData

	hudHeight    int
	arenaOffX    int
	arenaOffY    int
	moveEvery    int
	boostLatch   int
	drainPerTick float64
	regenPerTick float64
	maxEnergy    float64
	minEngage    float64
}

// New creates the standard game session starting on the menu.
func New() *Game {
	return &Game{}
}

// NewDemo creates the attract-mode variant: CPU vs CPU, no menu stop.
func NewDemo() *Game {
	return &Game{demo: true}
}

func init() {
	registry.Register("lightcycle", func() registry.Game {
		return New()
	})
	registry.Register("lightcycle_demo", func() registry.Game {
		return NewDemo()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.demo {
		return "lightcycle_demo"
	}
	return "lightcycle"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.demo {
		return "Light Cycle (Demo)"
	}
	return "Light Cycle"
}

// Reset initializes the session: loads configuration, sizes the arena to
// the screen, and enters the menu (or starts a match directly for the
// demo variant and --mode flag).
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.cfg = cfg

	g.moveEvery = core.Max(1, cfg.Movement.MoveEveryTicks)
	g.boostLatch = core.Max(1, cfg.Movement.BoostLatchTicks)
	g.maxEnergy = cfg.Energy.Max
	g.minEngage = cfg.Energy.MinToEngage
	g.drainPerTick = cfg.Energy.DrainPerSecond / float64(g.runtime.TickRate)
	g.regenPerTick = cfg.Energy.RegenPerSecond / float64(g.runtime.TickRate)

	g.difficulty = config.DifficultyMedium
	if d := config.Difficulty(difficultyPreset); d.Valid() {
		g.difficulty = d
	}

	g.sizeArena()

	g.phase = PhaseMenu
	g.cycles = nil
	g.controllers = nil
	g.winner = 0
	g.draw = false
	g.pendingResult = nil

	switch {
	case g.demo:
		g.startMatch(ModeDemo)
	case startMode != "":
		mode := startMode
		startMode = "" // Consumed once, like a menu selection
		switch mode {
		case "single":
			g.startMatch(ModeVsCPU)
		case "duel":
			g.startMatch(ModeDuel)
		case "demo":
			g.startMatch(ModeDemo)
		}
	}
}

// sizeArena fits the arena to the configured size or the screen.
func (g *Game) sizeArena() {
	g.hudHeight = 2

	w := g.cfg.Arena.Width
	h := g.cfg.Arena.Height
	if w <= 0 {
		w = g.runtime.ScreenW - 2
	}
	if h <= 0 {
		h = g.runtime.ScreenH - g.hudHeight - 1
	}
	w = core.Min(w, g.runtime.ScreenW)
	h = core.Min(h, g.runtime.ScreenH-g.hudHeight)

	// Interior must fit two cycles with room to maneuver.
	if w < 20 || h < 10 {
		g.tooSmall = true
		g.arena = NewArena(core.Max(w, 3), core.Max(h, 3))
		return
	}
	g.tooSmall = false

	g.arena = NewArena(w, h)
	g.arenaOffX = (g.runtime.ScreenW - w) / 2
	g.arenaOffY = g.hudHeight
}

// startMatch resets all per-match state and enters Playing. Nothing
// carries over from a previous match: arena occupancy, trails, and
// energy all start fresh.
func (g *Game) startMatch(mode Mode) {
	if g.tooSmall {
		return
	}
	g.mode = mode
	g.matchTicks = 0
	g.winner = 0
	g.draw = false
	g.overTicks = 0
	g.matchID = fmt.Sprintf("%s-%08x", mode.Slug(), g.rng.Uint32())

	g.arena.Reset()

	w, h := g.arena.Width(), g.arena.Height()
	margin := core.Max(2, w/5)
	p1 := newCycle(core.Player1, core.Point{X: margin, Y: h / 2}, DirRight,
		mode != ModeDemo, g.maxEnergy)
	p2 := newCycle(core.Player2, core.Point{X: w - 1 - margin, Y: h / 2}, DirLeft,
		mode == ModeDuel, g.maxEnergy)
	g.cycles = []*Cycle{p1, p2}
	g.arena.PlaceHead(p1.Pos, p1.ID)
	g.arena.PlaceHead(p2.Pos, p2.ID)

	profile := g.cfg.AI.Profile(g.difficulty)
	g.controllers = make(map[core.PlayerID]Controller)
	if !p1.Human {
		g.controllers[p1.ID] = NewController(g.difficulty, profile, g.rng)
	}
	if !p2.Human {
		g.controllers[p2.ID] = NewController(g.difficulty, profile, g.rng)
	}

	g.phase = PhasePlaying
}

// abortToMenu discards the running match entirely.
func (g *Game) abortToMenu() {
	g.phase = PhaseMenu
	g.cycles = nil
	g.controllers = nil
	g.winner = 0
	g.draw = false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhasePaused:
		g.stepPaused(in)
	case PhaseGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State()}
}

// stepMenu handles mode selection and difficulty cycling.
func (g *Game) stepMenu(in core.MultiInputFrame) {
	switch {
	case in.Any(core.ActionModeSolo):
		g.startMatch(ModeVsCPU)
	case in.Any(core.ActionModeDuel):
		g.startMatch(ModeDuel)
	case in.Any(core.ActionModeDemo):
		g.startMatch(ModeDemo)
	case in.Any(core.ActionCycleDifficulty):
		g.difficulty = g.difficulty.Next()
	}
}

func (g *Game) stepPaused(in core.MultiInputFrame) {
	switch {
	case in.Any(core.ActionPause):
		g.phase = PhasePlaying
	case in.Any(core.ActionBack):
		g.abortToMenu()
	}
}

func (g *Game) stepGameOver(in core.MultiInputFrame) {
	switch {
	case in.Any(core.ActionRestart):
		g.startMatch(g.mode)
	case in.Any(core.ActionBack):
		g.abortToMenu()
	default:
		// The demo variant is an attract mode: linger on the result for a
		// few seconds, then run the next match.
		if g.demo {
			g.overTicks++
			if g.overTicks >= g.runtime.TickRate*3 {
				g.startMatch(ModeDemo)
			}
		}
	}
}

// stepPlaying runs one simulation tick of the match.
func (g *Game) stepPlaying(in core.MultiInputFrame) {
	if in.Any(core.ActionPause) {
		g.phase = PhasePaused
		return
	}
	if in.Any(core.ActionBack) {
		g.abortToMenu()
		return
	}
	if g.tooSmall {
		return
	}

	g.matchTicks++
	g.applyCommands(in)
	g.applyEnergy()
	g.advanceCycles()
	g.checkWinCondition()
}

// applyCommands steers each cycle: humans from their input frames, AI
// cycles from their controllers. All decisions read the previous tick's
// state; nothing moves yet.
func (g *Game) applyCommands(in core.MultiInputFrame) {
	for _, c := range g.cycles {
		if !c.Alive {
			continue
		}

		if c.Human {
			frame := in.Player(c.ID)
			switch {
			case frame.Has(core.ActionTurnUp):
				c.Steer(DirUp)
			case frame.Has(core.ActionTurnDown):
				c.Steer(DirDown)
			case frame.Has(core.ActionTurnLeft):
				c.Steer(DirLeft)
			case frame.Has(core.ActionTurnRight):
				c.Steer(DirRight)
			}
			if frame.Has(core.ActionBoost) {
				c.AssertBoost(g.boostLatch)
			}
			continue
		}

		cmd := g.controllers[c.ID].Decide(View{
			Arena:    g.arena,
			Self:     c,
			Opponent: g.opponentOf(c.ID),
		})
		if cmd.HasTurn {
			c.Steer(cmd.Turn)
		}
		if cmd.Boost {
			// AI re-decides every tick, so its boost asserts one tick only.
			c.AssertBoost(1)
		}
	}
}

// applyEnergy runs the boost/energy model for every living cycle.
func (g *Game) applyEnergy() {
	for _, c := range g.cycles {
		if c.Alive {
			c.updateEnergy(g.drainPerTick, g.regenPerTick, g.maxEnergy, g.minEngage)
		}
	}
}

// advanceCycles computes every mover's intent from the pre-move snapshot,
// classifies all of them, then commits. Deaths from the same tick land
// together, which is what makes a mutual crash a draw.
func (g *Game) advanceCycles() {
	var intents []MoveIntent
	stationary := make(map[core.PlayerID]core.Point)

	for _, c := range g.cycles {
		if !c.Alive {
			continue
		}
		if c.wantsMove(g.moveEvery) {
			intents = append(intents, MoveIntent{ID: c.ID, From: c.Pos, To: c.nextPosition()})
		} else {
			stationary[c.ID] = c.Pos
		}
	}

	results := ResolveMoves(g.arena, intents, stationary)

	// Mark all deaths before any commit.
	for _, m := range intents {
		col := results[m.ID]
		if col.Kind == Valid {
			continue
		}
		g.cycleByID(m.ID).kill(col)
		if col.Kind == HeadOnCollision {
			// A crash of two cycle bodies kills both riders.
			if other := g.cycleByID(col.Owner); other != nil && other.Alive {
				other.kill(Collision{Kind: HeadOnCollision, Owner: m.ID})
			}
		}
	}

	// Commit survivors' moves.
	for _, m := range intents {
		c := g.cycleByID(m.ID)
		if !c.Alive {
			continue
		}
		c.Trail = append(c.Trail, m.From)
		g.arena.CommitMove(m.From, m.To, c.ID)
		c.Pos = m.To
	}

	// Downgrade dead heads to wreckage.
	for _, c := range g.cycles {
		if !c.Alive && g.arena.At(c.Pos).State == CellHead {
			g.arena.MarkWreck(c.Pos, c.ID)
		}
	}
}

// checkWinCondition ends the match once at most one cycle survives.
func (g *Game) checkWinCondition() {
	alive := 0
	var last *Cycle
	for _, c := range g.cycles {
		if c.Alive {
			alive++
			last = c
		}
	}
	if alive > 1 {
		return
	}

	if alive == 1 {
		g.winner = last.ID
	} else {
		g.draw = true
	}
	g.phase = PhaseGameOver

	winner := ""
	if g.winner == core.Player1 {
		winner = "player1"
	} else if g.winner == core.Player2 {
		if g.mode == ModeVsCPU {
			winner = "cpu"
		} else {
			winner = "player2"
		}
	}
	g.pendingResult = &multiplayer.MatchResultData{
		MatchID:      g.matchID,
		Mode:         g.mode.Slug(),
		Difficulty:   g.difficultyForRecord(),
		Winner:       winner,
		Draw:         g.draw,
		DurationTick: g.matchTicks,
	}
}

// difficultyForRecord returns the difficulty for storage; duels have no
// AI so the field stays empty.
func (g *Game) difficultyForRecord() string {
	if g.mode == ModeDuel {
		return ""
	}
	return string(g.difficulty)
}

// ConsumeResult returns the finished match's result exactly once.
// The platform polls this after each tick to persist match history.
func (g *Game) ConsumeResult() (multiplayer.MatchResultData, bool) {
	if g.pendingResult == nil {
		return multiplayer.MatchResultData{}, false
	}
	result := *g.pendingResult
	g.pendingResult = nil
	return result, true
}

// WinnerText returns the game-over banner line.
func (g *Game) WinnerText() string {
	switch {
	case g.draw:
		return "Draw!"
	case g.winner == core.Player1:
		return "Player 1 Wins!"
	case g.winner == core.Player2 && g.mode == ModeVsCPU:
		return "Computer Wins!"
	case g.winner == core.Player2:
		return "Player 2 Wins!"
	default:
		return ""
	}
}

// Difficulty returns the currently selected AI difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// Mode returns the current match mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Phase returns the session state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) cycleByID(id core.PlayerID) *Cycle {
	for _, c := range g.cycles {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (g *Game) opponentOf(id core.PlayerID) *Cycle {
	for _, c := range g.cycles {
		if c.ID != id {
			return c
		}
	}
	return nil
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
		InMenu:   g.phase == PhaseMenu,
		Winner:   g.winner,
		Draw:     g.draw,
	}
}
