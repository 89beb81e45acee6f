package wordsearch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned by Grid.At for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// Cell is a single grid cell: either Empty or an uppercase letter.
type Cell rune

// Empty is the zero Cell, marking a position no word has written to.
const Empty Cell = 0

func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Grid is a square 2D grid of cells.
//
// It is mutated in place while words are placed and never resized.
type Grid struct {
	size  int
	cells [][]Cell
}

func NewGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for r := range cells {
		cells[r] = make([]Cell, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

func (g *Grid) Size() int {
	return g.size
}

// Get returns the cell at (row, col). Bounds are the caller's
// responsibility; the placement engine pre-validates via CanPlace.
func (g *Grid) Get(row, col int) Cell {
	return g.cells[row][col]
}

// Set writes a cell at (row, col). Like Get, it is unchecked.
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[row][col] = c
}

// At is the bounds-checked accessor for use outside the placement loop.
func (g *Grid) At(row, col int) (Cell, error) {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Empty, fmt.Errorf("at (%d, %d) in %dx%d grid: %w", row, col, g.size, g.size, ErrOutOfBounds)
	}
	return g.cells[row][col], nil
}

// Repr renders the grid as space-separated rows, one row per line.
// Empty cells render as '_'.
func (g *Grid) Repr() string {
	lines := make([]string, g.size)
	runes := make([]string, g.size)
	for r := range g.size {
		for c := range g.size {
			cell := g.cells[r][c]
			if cell.IsEmpty() {
				runes[c] = "_"
			} else {
				runes[c] = string(rune(cell))
			}
		}
		lines[r] = strings.Join(runes, " ")
	}
	return strings.Join(lines, "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{size: %d, cells: %v}", g.size, g.cells)
}
