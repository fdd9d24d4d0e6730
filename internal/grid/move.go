package grid

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a fixed order.
var Directions = [...]Direction{Left, Right, Up, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// MoveResult is returned by every move operation.
type MoveResult struct {
	Moved  bool        // Whether any tile changed position or value
	Score  int         // Sum of merged tile values produced by this move
	Merged [Cells]bool // Cells that received a merge
}

// traversal describes how a direction walks the grid as four lines.
// Position k of line l is at edge + l*lineStride + k*inward, where
// position 0 is the cell on the edge the tiles move toward.
type traversal struct {
	edge       int // Index of the edge cell of line 0
	lineStride int // Index delta between consecutive lines
	inward     int // Index delta from the edge toward the far side
}

var traversals = [...]traversal{
	Left:  {edge: 0, lineStride: Size, inward: 1},
	Right: {edge: Size - 1, lineStride: Size, inward: -1},
	Up:    {edge: 0, lineStride: 1, inward: Size},
	Down:  {edge: Cells - Size, lineStride: 1, inward: -Size},
}

// index returns the grid index of position k on line l.
func (t traversal) index(l, k int) int {
	return t.edge + l*t.lineStride + k*t.inward
}

// Move shifts and merges all tiles toward the given edge.
// Each destination cell accepts at most one merge per call.
func Move(g *Grid, d Direction) MoveResult {
	if d < Left || d > Down {
		panic(fmt.Sprintf("grid: unknown direction %d", int(d)))
	}

	t := traversals[d]
	var res MoveResult
	for l := range Size {
		shiftLine(g, t, l, &res)
	}
	return res
}

// shiftLine processes one row or column, nearest-to-edge first.
func shiftLine(g *Grid, t traversal, l int, res *MoveResult) {
	var merged [Size]bool

	for k := 1; k < Size; k++ {
		if g[t.index(l, k)] == Empty {
			continue
		}

		// Slide toward the edge through empty cells
		pos := k
		for pos > 0 && g[t.index(l, pos-1)] == Empty {
			g[t.index(l, pos-1)] = g[t.index(l, pos)]
			g[t.index(l, pos)] = Empty
			pos--
			res.Moved = true
		}
		if pos == 0 {
			continue
		}

		src, dst := t.index(l, pos), t.index(l, pos-1)
		if g[dst] == g[src] && !merged[pos-1] {
			g[dst] *= 2
			g[src] = Empty
			res.Score += g[dst]
			res.Merged[dst] = true
			merged[pos-1] = true
			res.Moved = true
		}
	}
}

// MoveLeft shifts all tiles toward column 0.
func MoveLeft(g *Grid) MoveResult { return Move(g, Left) }

// MoveRight shifts all tiles toward the last column.
func MoveRight(g *Grid) MoveResult { return Move(g, Right) }

// MoveUp shifts all tiles toward row 0.
func MoveUp(g *Grid) MoveResult { return Move(g, Up) }

// MoveDown shifts all tiles toward the last row.
func MoveDown(g *Grid) MoveResult { return Move(g, Down) }

// CanMove reports whether any direction would change the grid.
// It works on a copy and never modifies g.
func CanMove(g Grid) bool {
	for _, d := range Directions {
		scratch := g
		if Move(&scratch, d).Moved {
			return true
		}
	}
	return false
}
