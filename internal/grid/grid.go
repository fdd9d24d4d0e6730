// Package grid implements the 4x4 board of the 2048 puzzle: the cell array,
// the directional move engine and the tile spawner.
// It has no external dependencies so the rules stay pure and testable.
package grid

import "fmt"

// Board dimensions and rule constants.
const (
	Size   = 4           // Cells per row and per column
	Cells  = Size * Size // Total number of cells
	Empty  = 0           // Value of an empty cell
	Target = 2048        // Tile value that wins the game
)

// Grid is the row-major cell array: index = Size*row + col.
// Grid is an array, so plain assignment produces an independent copy.
type Grid [Cells]int

// Index returns the cell index for the given row and column.
func Index(row, col int) int {
	return Size*row + col
}

// At returns the value at the given row and column.
func (g *Grid) At(row, col int) int {
	return g[Index(row, col)]
}

// EmptyIndices returns the indices of all empty cells in ascending order.
func (g *Grid) EmptyIndices() []int {
	var empty []int
	for i, v := range g {
		if v == Empty {
			empty = append(empty, i)
		}
	}
	return empty
}

// Contains reports whether any cell holds value.
func (g *Grid) Contains(value int) bool {
	for _, v := range g {
		if v == value {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is empty.
func (g *Grid) IsFull() bool {
	return !g.Contains(Empty)
}

// MaxTile returns the highest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Validate checks that every non-empty cell is a power of two >= 2.
func (g *Grid) Validate() error {
	for i, v := range g {
		if v == Empty {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("grid: cell %d (row %d, col %d) holds %d, not a power of two",
				i, i/Size, i%Size, v)
		}
	}
	return nil
}

// String formats the grid as four rows, mostly for test failures.
func (g Grid) String() string {
	s := ""
	for row := range Size {
		if row > 0 {
			s += "\n"
		}
		s += fmt.Sprint(g[row*Size : row*Size+Size])
	}
	return s
}
