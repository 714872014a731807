package lightcycle

import (
	"testing"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// stepN advances the game n ticks with no input.
func stepN(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewMultiInputFrame())
	}
}

// press steps the game once with a single action from one player.
func press(g *Game, id core.PlayerID, a core.Action) {
	in := core.NewMultiInputFrame()
	in.Press(id, a)
	g.Step(in)
}

// place repositions a cycle for a controlled collision setup.
func place(g *Game, c *Cycle, p core.Point, d Direction) {
	c.Pos = p
	c.Heading = d
	c.pending = d
	c.moveTicker = 0
	c.Trail = nil
	g.arena.PlaceHead(p, c.ID)
}

func TestDeterminism(t *testing.T) {
	// Two demo sessions (both cycles AI-driven) with the same seed should
	// produce identical snapshots tick for tick.
	g1 := NewDemo()
	g1.Reset(testRuntime(12345))

	g2 := NewDemo()
	g2.Reset(testRuntime(12345))

	for i := 0; i < 600; i++ {
		g1.Step(core.NewMultiInputFrame())
		g2.Step(core.NewMultiInputFrame())
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Phase != snap2.Phase {
		t.Errorf("Phase mismatch: %v vs %v", snap1.Phase, snap2.Phase)
	}
	if snap1.MatchTicks != snap2.MatchTicks {
		t.Errorf("MatchTicks mismatch: %d vs %d", snap1.MatchTicks, snap2.MatchTicks)
	}
	if snap1.Winner != snap2.Winner || snap1.Draw != snap2.Draw {
		t.Errorf("Outcome mismatch: winner %v/%v draw %v/%v",
			snap1.Winner, snap2.Winner, snap1.Draw, snap2.Draw)
	}
	if len(snap1.Cycles) != len(snap2.Cycles) {
		t.Fatalf("Cycle count mismatch: %d vs %d", len(snap1.Cycles), len(snap2.Cycles))
	}
	for i := range snap1.Cycles {
		if snap1.Cycles[i] != snap2.Cycles[i] {
			t.Errorf("Cycle %d mismatch: %+v vs %+v", i, snap1.Cycles[i], snap2.Cycles[i])
		}
	}
}

func TestMenuStartsMatch(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.phase != PhaseMenu {
		t.Fatalf("Expected menu phase after reset, got %v", g.phase)
	}

	press(g, core.Player1, core.ActionModeSolo)

	if g.phase != PhasePlaying {
		t.Fatalf("Expected playing phase after mode select, got %v", g.phase)
	}
	if g.mode != ModeVsCPU {
		t.Errorf("Expected vs CPU mode, got %v", g.mode)
	}
	if len(g.cycles) != 2 {
		t.Fatalf("Expected 2 cycles, got %d", len(g.cycles))
	}
	if !g.cycles[0].Human {
		t.Error("Player 1 should be human in single player")
	}
	if g.cycles[1].Human {
		t.Error("Player 2 should be CPU in single player")
	}
	if g.controllers[core.Player2] == nil {
		t.Error("Player 2 should have a controller in single player")
	}
}

func TestMenuDifficultyCycle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if g.difficulty != config.DifficultyMedium {
		t.Fatalf("Expected medium default, got %v", g.difficulty)
	}

	press(g, core.Player1, core.ActionCycleDifficulty)
	if g.difficulty != config.DifficultyHard {
		t.Errorf("Expected hard after one cycle, got %v", g.difficulty)
	}

	press(g, core.Player1, core.ActionCycleDifficulty)
	if g.difficulty != config.DifficultyEasy {
		t.Errorf("Expected easy after two cycles, got %v", g.difficulty)
	}

	press(g, core.Player1, core.ActionCycleDifficulty)
	if g.difficulty != config.DifficultyMedium {
		t.Errorf("Expected medium after full cycle, got %v", g.difficulty)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	p1 := g.cycleByID(core.Player1)
	if p1.Heading != DirRight {
		t.Fatalf("Expected initial heading right, got %v", p1.Heading)
	}

	// Pressing left is a reversal and must be ignored.
	for i := 0; i < g.moveEvery*2; i++ {
		press(g, core.Player1, core.ActionTurnLeft)
	}
	if p1.Heading != DirRight {
		t.Errorf("Reversal should be ignored, heading became %v", p1.Heading)
	}

	// A perpendicular turn is applied on the next move.
	for i := 0; i < g.moveEvery; i++ {
		press(g, core.Player1, core.ActionTurnUp)
	}
	if p1.Heading != DirUp {
		t.Errorf("Expected heading up after turn, got %v", p1.Heading)
	}
}

func TestPauseFreezesMatch(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)
	stepN(g, 20)

	press(g, core.Player1, core.ActionPause)
	if g.phase != PhasePaused {
		t.Fatalf("Expected paused phase, got %v", g.phase)
	}

	before := g.Snapshot()

	// Movement input while paused must not advance the match.
	for i := 0; i < 30; i++ {
		in := core.NewMultiInputFrame()
		in.Press(core.Player1, core.ActionTurnUp)
		in.Press(core.Player2, core.ActionBoost)
		g.Step(in)
	}

	after := g.Snapshot()
	if after.MatchTicks != before.MatchTicks {
		t.Errorf("MatchTicks advanced while paused: %d -> %d", before.MatchTicks, after.MatchTicks)
	}
	for i := range before.Cycles {
		if before.Cycles[i] != after.Cycles[i] {
			t.Errorf("Cycle %d changed while paused: %+v -> %+v", i, before.Cycles[i], after.Cycles[i])
		}
	}

	press(g, core.Player1, core.ActionPause)
	if g.phase != PhasePlaying {
		t.Errorf("Expected playing phase after resume, got %v", g.phase)
	}
	stepN(g, g.moveEvery)
	if g.Snapshot().MatchTicks == before.MatchTicks {
		t.Error("Match did not advance after resume")
	}
}

func TestPausedEscapeAborts(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)
	press(g, core.Player1, core.ActionPause)
	press(g, core.Player1, core.ActionBack)

	if g.phase != PhaseMenu {
		t.Fatalf("Expected menu after abort, got %v", g.phase)
	}
	if g.cycles != nil {
		t.Error("Aborted match should discard cycles")
	}
	if _, ok := g.ConsumeResult(); ok {
		t.Error("Aborted match must not produce a result")
	}
}

func TestHeadOnCollisionIsDraw(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	// Two cells apart, facing each other: both target the middle cell on
	// the same move tick.
	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 5}, DirRight)
	place(g, g.cycleByID(core.Player2), core.Point{X: 12, Y: 5}, DirLeft)

	stepN(g, g.moveEvery)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", g.phase)
	}
	if !g.draw {
		t.Error("Simultaneous head-on should be a draw")
	}
	if g.winner != 0 {
		t.Errorf("Draw should have no winner, got %v", g.winner)
	}
	p1, p2 := g.cycleByID(core.Player1), g.cycleByID(core.Player2)
	if p1.Alive || p2.Alive {
		t.Errorf("Both cycles should die: p1=%v p2=%v", p1.Alive, p2.Alive)
	}
	if p1.Cause.Kind != HeadOnCollision || p2.Cause.Kind != HeadOnCollision {
		t.Errorf("Expected head-on causes, got %v and %v", p1.Cause.Kind, p2.Cause.Kind)
	}
	if g.WinnerText() != "Draw!" {
		t.Errorf("Expected banner %q, got %q", "Draw!", g.WinnerText())
	}
}

func TestAdjacentSwapKillsBoth(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	// Adjacent heads moving through each other: each enters the cell the
	// other vacates, which is fresh trail. Both die the same tick.
	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 5}, DirRight)
	place(g, g.cycleByID(core.Player2), core.Point{X: 11, Y: 5}, DirLeft)

	stepN(g, g.moveEvery)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", g.phase)
	}
	if !g.draw {
		t.Error("Swap collision should be a draw")
	}
}

func TestWallCollisionLosesMatch(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	// Park player 1 next to the top wall heading into it.
	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)

	stepN(g, g.moveEvery)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", g.phase)
	}
	if g.winner != core.Player2 {
		t.Errorf("Expected player 2 to win, got %v (draw=%v)", g.winner, g.draw)
	}
	if g.cycleByID(core.Player1).Cause.Kind != WallCollision {
		t.Errorf("Expected wall cause, got %v", g.cycleByID(core.Player1).Cause.Kind)
	}
	if g.WinnerText() != "Player 2 Wins!" {
		t.Errorf("Expected banner %q, got %q", "Player 2 Wins!", g.WinnerText())
	}
}

func TestComputerWinsBanner(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))
	press(g, core.Player1, core.ActionModeSolo)

	// Human drives straight into the wall; the CPU only has to survive a
	// handful of ticks in an empty arena.
	g.cycleByID(core.Player1).Pos = core.Point{X: 10, Y: 1}
	g.cycleByID(core.Player1).Heading = DirUp
	g.cycleByID(core.Player1).pending = DirUp

	stepN(g, g.moveEvery)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", g.phase)
	}
	if g.winner != core.Player2 {
		t.Fatalf("Expected CPU to win, got %v (draw=%v)", g.winner, g.draw)
	}
	if g.WinnerText() != "Computer Wins!" {
		t.Errorf("Expected banner %q, got %q", "Computer Wins!", g.WinnerText())
	}

	result, ok := g.ConsumeResult()
	if !ok {
		t.Fatal("Expected a match result after game over")
	}
	if result.Winner != "cpu" {
		t.Errorf("Expected recorded winner cpu, got %q", result.Winner)
	}
	if result.Mode != "vs_cpu" {
		t.Errorf("Expected mode vs_cpu, got %q", result.Mode)
	}
	if result.DurationTick != g.matchTicks {
		t.Errorf("Expected duration %d, got %d", g.matchTicks, result.DurationTick)
	}
}

func TestConsumeResultOnce(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)

	if _, ok := g.ConsumeResult(); !ok {
		t.Fatal("First consume should return the result")
	}
	if _, ok := g.ConsumeResult(); ok {
		t.Error("Second consume should return nothing")
	}
}

func TestTrailGrowsThenFreezes(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	p1 := g.cycleByID(core.Player1)

	stepN(g, g.moveEvery*5)
	grown := len(p1.Trail)
	if grown != 5 {
		t.Errorf("Expected 5 trail cells after 5 moves, got %d", grown)
	}

	// Every trail cell must be marked on the arena with the owner.
	for _, p := range p1.Trail {
		cell := g.arena.At(p)
		if cell.State != CellTrail || cell.Owner != core.Player1 {
			t.Errorf("Trail cell %v not marked on arena: %+v", p, cell)
		}
	}

	// Kill player 1 against the wall and verify the trail stops growing.
	g.arena.Reset()
	place(g, p1, core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)

	if p1.Alive {
		t.Fatal("Player 1 should be dead")
	}
	frozen := len(p1.Trail)
	stepN(g, g.moveEvery*3)
	if len(p1.Trail) != frozen {
		t.Errorf("Dead cycle's trail grew: %d -> %d", frozen, len(p1.Trail))
	}
}

func TestDeadCycleLeavesWreck(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)

	// The dead head becomes trail so it stays an obstacle.
	cell := g.arena.At(core.Point{X: 10, Y: 1})
	if cell.State != CellTrail || cell.Owner != core.Player1 {
		t.Errorf("Expected wreck trail at death position, got %+v", cell)
	}
}

func TestRematchResetsMatchState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)

	if g.phase != PhaseGameOver {
		t.Fatalf("Expected game over, got %v", g.phase)
	}
	firstID := g.matchID

	press(g, core.Player1, core.ActionRestart)

	if g.phase != PhasePlaying {
		t.Fatalf("Expected playing after rematch, got %v", g.phase)
	}
	if g.mode != ModeDuel {
		t.Errorf("Rematch should keep the mode, got %v", g.mode)
	}
	if g.matchID == firstID {
		t.Error("Rematch should mint a new match id")
	}
	if g.matchTicks != 0 {
		t.Errorf("Rematch should reset match ticks, got %d", g.matchTicks)
	}
	if g.arena.CountState(CellTrail) != 0 {
		t.Errorf("Rematch should clear old trails, found %d", g.arena.CountState(CellTrail))
	}
	for _, c := range g.cycles {
		if !c.Alive {
			t.Errorf("Cycle %v should be alive after rematch", c.ID)
		}
		if len(c.Trail) != 0 {
			t.Errorf("Cycle %v should have an empty trail after rematch", c.ID)
		}
		if c.Energy != g.maxEnergy {
			t.Errorf("Cycle %v should start with full energy, got %v", c.ID, c.Energy)
		}
	}
}

func TestGameOverEscapeReturnsToMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	press(g, core.Player1, core.ActionModeDuel)

	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)

	press(g, core.Player1, core.ActionBack)
	if g.phase != PhaseMenu {
		t.Errorf("Expected menu after escape, got %v", g.phase)
	}
}

func TestDemoVariantSkipsMenu(t *testing.T) {
	g := NewDemo()
	g.Reset(testRuntime(99))

	if g.phase != PhasePlaying {
		t.Fatalf("Demo should start playing immediately, got %v", g.phase)
	}
	if g.mode != ModeDemo {
		t.Errorf("Expected demo mode, got %v", g.mode)
	}
	for _, c := range g.cycles {
		if c.Human {
			t.Errorf("Demo cycle %v should be CPU-driven", c.ID)
		}
		if g.controllers[c.ID] == nil {
			t.Errorf("Demo cycle %v should have a controller", c.ID)
		}
	}
}

func TestDemoEventuallyEnds(t *testing.T) {
	// An attract-mode match on a bounded arena cannot run forever: trails
	// only accumulate.
	g := NewDemo()
	g.Reset(testRuntime(4242))

	for i := 0; i < 100000 && g.phase == PhasePlaying; i++ {
		g.Step(core.NewMultiInputFrame())
	}
	if g.phase != PhaseGameOver {
		t.Fatalf("Demo match did not finish, phase %v", g.phase)
	}
}

func TestStartModeFlag(t *testing.T) {
	SetStartMode("duel")
	defer SetStartMode("")

	g := New()
	g.Reset(testRuntime(1))

	if g.phase != PhasePlaying {
		t.Fatalf("Expected start mode to skip the menu, got %v", g.phase)
	}
	if g.mode != ModeDuel {
		t.Errorf("Expected duel mode, got %v", g.mode)
	}

	// The flag is consumed: the next reset lands on the menu again.
	g2 := New()
	g2.Reset(testRuntime(1))
	if g2.phase != PhaseMenu {
		t.Errorf("Start mode should apply once, got %v", g2.phase)
	}
}

func TestDifficultyPresetFlag(t *testing.T) {
	SetDifficultyPreset("hard")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testRuntime(1))
	if g.difficulty != config.DifficultyHard {
		t.Errorf("Expected hard preset, got %v", g.difficulty)
	}
}

func TestRenderSmoke(t *testing.T) {
	// Every phase must render without touching out-of-bounds cells.
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	press(g, core.Player1, core.ActionModeDuel)
	stepN(g, g.moveEvery*3)
	g.Render(screen)

	press(g, core.Player1, core.ActionPause)
	g.Render(screen)
	press(g, core.Player1, core.ActionPause)

	g.arena.Reset()
	place(g, g.cycleByID(core.Player1), core.Point{X: 10, Y: 1}, DirUp)
	place(g, g.cycleByID(core.Player2), core.Point{X: 30, Y: 10}, DirRight)
	stepN(g, g.moveEvery)
	g.Render(screen)
}
