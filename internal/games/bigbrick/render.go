package bigbrick

import (
	"fmt"

	"github.com/vovakirdan/bigbrick/internal/core"
	engine "github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

const hudHeight = 2

// cellWidth returns how many columns one board cell takes: two when the
// screen allows it, so cells look roughly square.
func (g *Game) cellWidth() int {
	if g.preset.Width*2+2 <= g.screenW {
		return 2
	}
	return 1
}

// checkScreenSize checks if the screen can hold the board, its frame and the HUD.
func (g *Game) checkScreenSize() {
	minW := max(g.preset.Width+2, 24)
	minH := g.preset.Height + 2 + hudHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	cw := g.cellWidth()
	frame := dst.Bounds().Centered(g.preset.Width*cw+2, g.preset.Height+2)
	frame.Y = hudHeight

	g.renderHUD(dst, frame)
	dst.DrawBox(frame, core.ColorGray)
	g.renderBoard(dst, frame.Inset(1), cw)
	g.renderOverlays(dst, frame)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	need := fmt.Sprintf("Need %dx%d", max(g.preset.Width+2, 24), g.preset.Height+2+hudHeight)
	dst.DrawTextCentered(y+1, need)
}

func (g *Game) renderHUD(dst *core.Screen, frame core.Rect) {
	dst.DrawTextCentered(0, g.preset.Title)

	score := fmt.Sprintf("Score: %d", g.displayScore())
	dst.DrawTextColor(frame.X, 1, score, core.ColorBrightWhite)

	level := fmt.Sprintf("Lvl %d", g.speedLevel)
	dst.DrawTextColor(frame.Right()-len(level), 1, level, g.levelColor())
}

// levelColor turns the level readout yellow at the warning level and red
// once the music has changed.
func (g *Game) levelColor() core.Color {
	switch {
	case g.speedLevel >= g.cfg.Speed.MusicLevel:
		return core.ColorBrightRed
	case g.speedLevel >= g.cfg.Speed.WarningLevel:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderBoard(dst *core.Screen, area core.Rect, cw int) {
	for _, b := range g.level.All() {
		glyph := '█'
		if b.State == engine.Dynamic && !b.Controllable {
			glyph = '▓'
		}
		x := area.X + b.Pos.X*cw
		y := area.Y + b.Pos.Y
		for i := range cw {
			dst.SetHex(x+i, y, glyph, b.Color.Hex())
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, frame core.Rect) {
	var lines []string
	switch {
	case g.gameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", g.displayScore()), "R restart  Q quit"}
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	y := frame.Y + frame.H/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(y+i, " "+line+" ")
	}
}

// Resize adapts to a new screen size without restarting the game.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}
