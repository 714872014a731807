package lightcycle

import (
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
)

const (
	wallRune  = '█'
	trailRune = '▒'
)

// playerColor maps a cycle to its trail and HUD color.
func playerColor(id core.PlayerID) core.Color {
	if id == core.Player1 {
		return core.ColorCyan
	}
	return core.ColorOrange
}

// headRune returns the head glyph for a heading.
func headRune(d Direction) rune {
	switch d {
	case DirUp:
		return '▲'
	case DirDown:
		return '▼'
	case DirLeft:
		return '◀'
	default:
		return '▶'
	}
}

// Render draws the current session state into the screen buffer.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	if g.tooSmall {
		screen.DrawTextCentered(screen.Height()/2, "Terminal too small for Light Cycle")
		screen.DrawTextCentered(screen.Height()/2+1, "Resize to at least 22x13 and restart")
		return
	}

	switch g.phase {
	case PhaseMenu:
		g.renderMenu(screen)
	case PhasePlaying:
		g.renderMatch(screen)
	case PhasePaused:
		g.renderMatch(screen)
		g.renderPauseOverlay(screen)
	case PhaseGameOver:
		g.renderMatch(screen)
		g.renderGameOverOverlay(screen)
	}
}

func (g *Game) renderMenu(screen *core.Screen) {
	cy := screen.Height() / 2

	screen.DrawTextCentered(cy-5, "L I G H T   C Y C L E")
	screen.DrawTextCentered(cy-3, "[1] Single Player")
	screen.DrawTextCentered(cy-2, "[2] Two Players")
	screen.DrawTextCentered(cy-1, "[3] Demo")
	screen.DrawTextCentered(cy+1, fmt.Sprintf("[d] Difficulty: %s", difficultyLabel(g.difficulty)))
	screen.DrawTextCentered(cy+3, "P1: WASD + Shift to boost   P2: Arrows + Shift to boost")
	screen.DrawTextCentered(cy+4, "[p] pause   [esc] back   [q] quit")
}

func difficultyLabel(d config.Difficulty) string {
	switch d {
	case config.DifficultyEasy:
		return "Easy"
	case config.DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

func (g *Game) renderMatch(screen *core.Screen) {
	g.renderHUD(screen)
	g.renderArena(screen)
}

// renderHUD draws both players' energy bars above the arena.
func (g *Game) renderHUD(screen *core.Screen) {
	p1 := g.cycleByID(core.Player1)
	p2 := g.cycleByID(core.Player2)
	if p1 == nil || p2 == nil {
		return
	}

	left := g.hudLine("P1", p1)
	right := g.hudLine(g.rightLabel(), p2)
	screen.DrawTextColored(g.arenaOffX, 0, left, playerColor(p1.ID))
	screen.DrawTextColored(g.arenaOffX+g.arena.Width()-len([]rune(right)), 0, right, playerColor(p2.ID))

	mid := fmt.Sprintf("%s  %s", g.mode, difficultyLabel(g.difficulty))
	if g.mode == ModeDuel {
		mid = g.mode.String()
	}
	screen.DrawTextCentered(1, mid)
}

func (g *Game) rightLabel() string {
	if g.mode == ModeDuel {
		return "P2"
	}
	return "CPU"
}

// hudLine formats "P1 [████░░░░░░] 42%" with a boost marker.
func (g *Game) hudLine(label string, c *Cycle) string {
	const barWidth = 10
	filled := 0
	if g.maxEnergy > 0 {
		filled = int(c.Energy / g.maxEnergy * barWidth)
	}
	filled = core.Clamp(filled, 0, barWidth)

	bar := make([]rune, barWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}

	marker := ' '
	if c.Boosting {
		marker = '»'
	}
	if !c.Alive {
		marker = '✕'
	}
	return fmt.Sprintf("%s [%s]%c", label, string(bar), marker)
}

// renderArena paints walls, trails, and heads. Trails keep their owner's
// color so wreckage stays attributable after a crash.
func (g *Game) renderArena(screen *core.Screen) {
	for y := 0; y < g.arena.Height(); y++ {
		for x := 0; x < g.arena.Width(); x++ {
			cell := g.arena.At(core.Point{X: x, Y: y})
			sx, sy := g.arenaOffX+x, g.arenaOffY+y
			switch cell.State {
			case CellWall:
				screen.SetCell(sx, sy, wallRune, core.ColorGray)
			case CellTrail:
				screen.SetCell(sx, sy, trailRune, playerColor(cell.Owner))
			case CellHead:
				c := g.cycleByID(cell.Owner)
				if c != nil {
					screen.SetCell(sx, sy, headRune(c.Heading), playerColor(cell.Owner))
				}
			}
		}
	}
}

func (g *Game) renderPauseOverlay(screen *core.Screen) {
	cy := screen.Height() / 2
	screen.DrawTextCentered(cy-1, "P A U S E D")
	screen.DrawTextCentered(cy+1, "[p] resume   [esc] quit to menu")
}

func (g *Game) renderGameOverOverlay(screen *core.Screen) {
	cy := screen.Height() / 2
	screen.DrawTextCentered(cy-1, g.WinnerText())
	screen.DrawTextCentered(cy+1, "[r] rematch   [esc] menu")
}
