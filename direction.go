package wordsearch

// Direction is a unit step vector applied once per letter while a word
// is written into the grid.
type Direction struct {
	DR, DC int
}

// AllDirections returns the 8 non-zero vectors of the 3x3 neighborhood:
// horizontal, vertical and diagonal, each in both orientations.
func AllDirections() []Direction {
	dirs := make([]Direction, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			dirs = append(dirs, Direction{DR: dr, DC: dc})
		}
	}
	return dirs
}
