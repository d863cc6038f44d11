package forest

import (
	"fmt"

	"github.com/vovakirdan/forest-escape/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // each tile is drawn as glyph + space to look square
	fogGlyph  = '░'
)

type glyph struct {
	r rune
	c core.Color
}

var tileGlyphs = [...]glyph{
	Ground:       {'.', core.ColorGreen},
	Tree:         {'T', core.ColorBrightGreen},
	Rock:         {'o', core.ColorGray},
	Bush:         {'%', core.ColorGreen},
	Campfire:     {'^', core.ColorOrange},
	Mushroom:     {'m', core.ColorBrightRed},
	SpeedPowerUp: {'S', core.ColorBrightYellow},
	InvisPowerUp: {'I', core.ColorCyan},
	ExtraLife:    {'+', core.ColorPink},
}

// Render draws the session into dst: HUD, map under fog of war, wolves,
// the player and an end-of-run overlay.
func Render(s *Session, dst *core.Screen) {
	dst.Clear()

	m := s.Map()
	mapW := m.Cols() * cellWidth
	if dst.Width() < mapW || dst.Height() < m.Rows()+hudHeight {
		Overlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", mapW, m.Rows()+hudHeight))
		return
	}

	dst.DrawText(0, 0, s.StatusLine())
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offX := (dst.Width() - mapW) / 2
	cellX := func(p Pos) int { return offX + p.Col*cellWidth }
	cellY := func(p Pos) int { return hudHeight + p.Row }

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			p := Pos{Row: r, Col: c}
			if !s.Visible(p) {
				dst.SetColored(cellX(p), cellY(p), fogGlyph, core.ColorDarkGray)
				dst.SetColored(cellX(p)+1, cellY(p), fogGlyph, core.ColorDarkGray)
				continue
			}
			g := tileGlyphs[m.Tile(p)]
			dst.SetColored(cellX(p), cellY(p), g.r, g.c)
		}
	}

	for _, w := range s.wolves {
		if s.Visible(w.Pos()) {
			dst.SetColored(cellX(w.Pos()), cellY(w.Pos()), 'W', core.ColorRed)
		}
	}

	playerColor := core.ColorBrightBlue
	if s.player.Invisible() {
		playerColor = core.ColorGray
	}
	dst.SetColored(cellX(s.player.Pos()), cellY(s.player.Pos()), '@', playerColor)

	switch s.status {
	case StatusCleared:
		Overlay(dst,
			"Level cleared!",
			fmt.Sprintf("Mushrooms: %d  Time: %d", s.player.Mushrooms(), s.elapsed),
			"Enter: play again")
	case StatusGameOver:
		Overlay(dst,
			"GAME OVER",
			fmt.Sprintf("Mushrooms: %d  Time: %d", s.player.Mushrooms(), s.elapsed),
			"R: restart  Esc: menu")
	}
}

// Overlay draws a centered box with one line of text per argument.
func Overlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l)
	}
}
