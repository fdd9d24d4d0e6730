package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const (
	mergeMark = '+'
	spawnMark = '*'
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = grid.Size*cellWidth + 1
	boardH = grid.Size*cellHeight + 1
)

// MinWidth and MinHeight are the smallest screen the board fits on.
const (
	MinWidth  = boardW + 2
	MinHeight = hudHeight + 1 + boardH + 1
)

// Theme maps tile values to colors. Values without an entry use
// ColorDefault.
type Theme map[int]core.Color

// DefaultTheme returns the built-in tile palette.
func DefaultTheme() Theme {
	return Theme{
		2:    core.ColorWhite,
		4:    core.ColorBrightWhite,
		8:    core.ColorYellow,
		16:   core.ColorBrightYellow,
		32:   core.ColorRed,
		64:   core.ColorBrightRed,
		128:  core.ColorMagenta,
		256:  core.ColorBrightMagenta,
		512:  core.ColorBlue,
		1024: core.ColorBrightCyan,
		2048: core.ColorBrightGreen,
	}
}

// Color returns the color for a tile value.
func (t Theme) Color(value int) core.Color {
	if c, ok := t[value]; ok {
		return c
	}
	return core.ColorDefault
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}

// renderHUD draws the title, the score and the largest tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("SCORE: %010d", g.score))

	info := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	dst.DrawText(core.Max(boardX+boardW-len(info), boardX), 2, info)
	dst.DrawText(boardX, 2, fmt.Sprintf("Moves: %d", g.moves))
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range grid.Size + 1 {
		for x := range grid.Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, junction(x, y))

			if x < grid.Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < grid.Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for row := range grid.Size {
		for col := range grid.Size {
			val := g.grid.At(row, col)
			if val == grid.Empty {
				continue
			}

			s := strconv.Itoa(val)
			pad := core.Max((cellWidth-1-len(s))/2, 0)
			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			dst.DrawTextColored(cellX+pad, cellY, s, g.theme.Color(val))

			// Mark the last move's merges and spawn in the free last column
			if len(s) >= cellWidth-1 {
				continue
			}
			markX := cellX + cellWidth - 2
			switch idx := grid.Index(row, col); {
			case g.merged[idx]:
				dst.SetColored(markX, cellY, mergeMark, core.ColorBrightYellow)
			case idx == g.spawned:
				dst.SetColored(markX, cellY, spawnMark, core.ColorGray)
			}
		}
	}
}

// junction picks the box-drawing rune for a grid line crossing.
func junction(x, y int) rune {
	last := grid.Size
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the end-of-game banner.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch g.state {
	case StateWon:
		drawOverlay(dst, centerX, centerY, core.ColorBrightGreen, "YOU WIN", "Enter: new game")
	case StateLost:
		drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "YOU LOSE", "Enter: new game")
	}
}

// drawOverlay draws a boxed message. The first line is the headline.
func drawOverlay(dst *core.Screen, centerX, centerY int, headline core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = headline
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, c)
	}
}
