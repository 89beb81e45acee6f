package wordsearch

import "crosswarped.com/wordsearch/pkg/primitives"

// CanPlace reports whether word fits starting at pos and stepping
// along dir: every letter must land inside the grid, on a cell that is
// either empty or already holds that same letter. Crossing words may
// share letter-identical cells.
//
// Pure check, no side effects.
func (g *Grid) CanPlace(word string, pos primitives.Position, dir Direction) bool {
	for i := 0; i < len(word); i++ {
		r := pos.Row + i*dir.DR
		c := pos.Col + i*dir.DC
		if r < 0 || r >= g.size || c < 0 || c >= g.size {
			return false
		}
		cell := g.cells[r][c]
		if !cell.IsEmpty() && cell != Cell(word[i]) {
			return false
		}
	}
	return true
}

// Place writes word into the grid starting at pos along dir. The
// caller must have validated the placement with CanPlace first.
func (g *Grid) Place(word string, pos primitives.Position, dir Direction) {
	for i := 0; i < len(word); i++ {
		g.cells[pos.Row+i*dir.DR][pos.Col+i*dir.DC] = Cell(word[i])
	}
}
