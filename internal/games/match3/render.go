package match3

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-match3/internal/core"
	m3 "github.com/vovakirdan/tui-match3/internal/match3"
)

const (
	cellWidth    = 3 // glyph plus a bracket on each side
	hudHeight    = 3
	footerHeight = 3
)

// boardSize returns the board box size in screen cells.
func (g *Game) boardSize() (int, int) {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	switch {
	case g.board != nil:
		w, h = g.board.Grid().Width(), g.board.Grid().Height()
	case g.mode == ModeCampaign && len(g.levels) > 0:
		w, h = g.levels[g.levelIndex].Width, g.levels[g.levelIndex].Height
	}
	return w*cellWidth + 2, h + 2
}

func (g *Game) boardOrigin() (int, int) {
	w, _ := g.boardSize()
	return (g.screenW - w) / 2, hudHeight
}

// tileAt maps a screen cell to a tile coordinate.
func (g *Game) tileAt(x, y int) (int, int, bool) {
	bx, by := g.boardOrigin()
	tx := (x - bx - 1) / cellWidth
	ty := y - by - 1
	if x <= bx || y <= by || !g.board.Grid().InBounds(tx, ty) {
		return 0, 0, false
	}
	return tx, ty, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX, boardY := g.boardOrigin()

	g.renderHUD(dst)
	if g.board != nil {
		g.renderBoard(dst, boardX, boardY)
	}
	g.renderGoals(dst, boardY+boardH)
	dst.DrawTextCenteredColor(g.screenH-1, g.Controls(), core.ColorGray)

	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, score and steps.
func (g *Game) renderHUD(dst *core.Screen) {
	title := "MATCH-3"
	if g.mode == ModeCampaign && len(g.levels) > 0 {
		lvl := g.levels[g.levelIndex]
		title = fmt.Sprintf("MATCH-3 · %d/%d %s", g.levelIndex+1, len(g.levels), lvl.Name)
	} else if g.mode == ModeEndless {
		title = "MATCH-3 · Endless"
	}
	dst.DrawTextCenteredColor(0, title, core.ColorBrightWhite)

	score := fmt.Sprintf("Score: %d", g.displayScore())
	left := g.displaySteps()
	steps := fmt.Sprintf("Steps: %d", left)
	stepsColor := core.ColorDefault
	if left <= 3 {
		stepsColor = core.ColorBrightRed
	}
	const gap = 4
	x := (g.screenW - utf8.RuneCountInString(score) - gap - utf8.RuneCountInString(steps)) / 2
	dst.DrawText(x, 1, score)
	dst.DrawTextColor(x+utf8.RuneCountInString(score)+gap, 1, steps, stepsColor)

	switch {
	case g.play.bannerTicks > 0:
		dst.DrawTextCenteredColor(2, g.play.banner, core.ColorBrightYellow)
	case g.message != "":
		dst.DrawTextCenteredColor(2, g.message, core.ColorGray)
	}
}

func (g *Game) displayScore() int {
	return g.score.Total() - g.play.pendingPoints()
}

// displaySteps is the step count the HUD shows; a move's step drops
// once its swap has played.
func (g *Game) displaySteps() int {
	if g.board == nil {
		return 0
	}
	return g.board.Steps() + g.play.pendingSteps()
}

// renderBoard draws the grid box and every tile.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	boardW, boardH := g.boardSize()
	dst.DrawBoxColor(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	f := g.play.frame()
	kinds := g.board.Grid().Kinds()
	if f != nil && f.grid != nil {
		kinds = copyKinds(f.grid)
	}
	p := g.play.progress()

	marked := make(map[m3.Pos]bool)
	if f != nil {
		for _, pos := range f.tiles {
			marked[pos] = true
		}
		if f.kind == frameSwap && p >= 0.5 && len(f.tiles) == 2 {
			a, b := f.tiles[0], f.tiles[1]
			kinds[a.Y][a.X], kinds[b.Y][b.X] = kinds[b.Y][b.X], kinds[a.Y][a.X]
		}
	}

	sel := g.board.Selection()
	for y, row := range kinds {
		for x, kind := range row {
			pos := m3.P(x, y)
			cx := boardX + 1 + x*cellWidth
			cy := boardY + 1 + y

			glyph, color := glyphFor(kind)
			if f != nil && marked[pos] {
				glyph, color = animatedGlyph(f.kind, p, glyph, color)
			}
			dst.SetColor(cx+1, cy, glyph, color)

			left, right, bracketColor := ' ', ' ', core.ColorDefault
			switch {
			case f == nil && x == g.cursorX && y == g.cursorY:
				left, right, bracketColor = '[', ']', core.ColorBrightWhite
			case f == nil && sel.Contains(g.board.Grid().At(x, y)):
				left, right, bracketColor = '(', ')', core.ColorBrightYellow
			case f == nil && g.hint != nil && (g.hint.A == pos || g.hint.B == pos) && (g.tick/15)%2 == 0:
				left, right, bracketColor = '{', '}', core.ColorBrightCyan
			case f != nil && f.kind == framePop && p < 0.5 && containsPos(f.sparks, pos):
				left, right, bracketColor = '*', '*', core.ColorBrightYellow
			}
			dst.SetColor(cx, cy, left, bracketColor)
			dst.SetColor(cx+2, cy, right, bracketColor)
		}
	}
}

func copyKinds(src [][]m3.ItemKind) [][]m3.ItemKind {
	out := make([][]m3.ItemKind, len(src))
	for y, row := range src {
		out[y] = append([]m3.ItemKind(nil), row...)
	}
	return out
}

func glyphFor(k m3.ItemKind) (rune, core.Color) {
	color, _ := core.ParseColor(k.Color)
	if k.Glyph == 0 {
		return '?', color
	}
	return k.Glyph, color
}

// animatedGlyph shrinks popped tiles and grows refilled ones.
func animatedGlyph(kind frameKind, p float64, glyph rune, color core.Color) (rune, core.Color) {
	switch kind {
	case frameSwap:
		return glyph, color.Bright()
	case framePop:
		switch {
		case p < 0.34:
			return glyph, color.Bright()
		case p < 0.67:
			return '•', color
		default:
			return '·', color
		}
	case frameRefill:
		if p < 0.5 {
			return '·', color
		}
		return glyph, color
	}
	return glyph, color
}

func containsPos(list []m3.Pos, p m3.Pos) bool {
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}

// renderGoals draws the goal counters under the board.
func (g *Game) renderGoals(dst *core.Screen, y int) {
	if g.mode == ModeEndless {
		dst.DrawTextCenteredColor(y, fmt.Sprintf("Score attack · %d kinds in play", g.kindsInPlay()), core.ColorGray)
		return
	}
	if g.goals == nil {
		return
	}

	entries := g.goals.Entries()
	widths := 0
	parts := make([]string, len(entries))
	for i, e := range entries {
		remaining := e.Remaining + g.play.pendingCollects(e.Kind.ID)
		label := fmt.Sprintf("%c %d", glyphOrQ(e.Kind), remaining)
		if remaining == 0 {
			label = fmt.Sprintf("%c ✓", glyphOrQ(e.Kind))
		}
		parts[i] = label
		widths += utf8.RuneCountInString(label)
	}
	gap := 3
	total := widths + gap*(len(parts)-1)
	x := (g.screenW - total) / 2
	for i, part := range parts {
		_, color := glyphFor(entries[i].Kind)
		dst.DrawTextColor(x, y, part, color)
		x += utf8.RuneCountInString(part) + gap
	}
}

func glyphOrQ(k m3.ItemKind) rune {
	r, _ := glyphFor(k)
	return r
}

func (g *Game) kindsInPlay() int {
	if g.endless == nil {
		return len(g.kinds)
	}
	return g.endless.active()
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		lvl := g.levels[g.levelIndex]
		if g.levelIndex >= len(g.levels)-1 {
			g.drawOverlay(dst, centerX, centerY, lvl.Name+" cleared!", "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, lvl.Name+" cleared!", fmt.Sprintf("Next: %s", g.levels[g.levelIndex+1].Name))
		}
		return
	}

	if g.won {
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.score.Total()), "Press R to restart")
		return
	}

	if g.gameOver {
		reason := g.message
		if reason == "" {
			reason = "Game over"
		}
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", reason, fmt.Sprintf("Score: %d", g.score.Total()), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - utf8.RuneCountInString(line)/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return strings.Join([]string{
		"Arrows/WASD: Move",
		"Enter/Space: Pick",
		"X: Drop",
		"H: Hint",
		"P: Pause",
		"Q: Quit",
	}, " | ")
}
