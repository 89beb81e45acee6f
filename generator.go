package wordsearch

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"crosswarped.com/wordsearch/internal/wordlist"
	"crosswarped.com/wordsearch/pkg/primitives"
)

// ErrInvalidConfiguration is returned by Generate for degenerate
// inputs (non-positive board size, empty vocabulary).
var ErrInvalidConfiguration = errors.New("invalid generator configuration")

// Generator hides vocabulary words in a square letter grid. All
// randomness flows through the injected rand, so a fixed seed yields a
// reproducible puzzle.
type Generator struct {
	BoardSize  int
	Vocabulary []string

	rand *rand.Rand
}

func CreateGenerator(boardSize int, vocabulary []string, rand *rand.Rand) *Generator {
	return &Generator{
		BoardSize:  boardSize,
		Vocabulary: vocabulary,
		rand:       rand,
	}
}

// Puzzle is a finished word-search board.
type Puzzle struct {
	Grid *Grid

	// Words lists the successfully placed words, alphabetically.
	// Vocabulary words whose placement search was exhausted are
	// dropped; a dense grid rejecting late words is expected.
	Words []string

	// MaxWordLength is the length of the longest placed word, 0 when
	// nothing was placed. Consumers use it for column alignment.
	MaxWordLength int
}

// Generate builds the puzzle: normalize and shuffle the vocabulary,
// place what fits, fill the remaining cells with random letters.
func (g *Generator) Generate() (*Puzzle, error) {
	if g.BoardSize <= 0 {
		return nil, fmt.Errorf("board size %d: %w", g.BoardSize, ErrInvalidConfiguration)
	}
	vocabulary := wordlist.Normalize(g.Vocabulary)
	if len(vocabulary) == 0 {
		return nil, fmt.Errorf("empty vocabulary: %w", ErrInvalidConfiguration)
	}

	g.rand.Shuffle(len(vocabulary), func(i, j int) {
		vocabulary[i], vocabulary[j] = vocabulary[j], vocabulary[i]
	})

	grid := NewGrid(g.BoardSize)
	words, maxLength := g.populate(grid, vocabulary)
	g.fillEmpty(grid)

	slices.Sort(words)
	return &Puzzle{
		Grid:          grid,
		Words:         words,
		MaxWordLength: maxLength,
	}, nil
}

// populate tries to place each vocabulary word in turn. Per word: the
// position pool is restored to full size and reshuffled, then
// positions are popped one at a time with one uniformly random
// direction drawn per position. The first valid (position, direction)
// wins; an exhausted pool drops the word.
func (g *Generator) populate(grid *Grid, vocabulary []string) ([]string, int) {
	pool := primitives.NewPositionPool(grid.Size(), g.rand)
	directions := AllDirections()

	var placed []string
	maxLength := 0
	for _, word := range vocabulary {
		pool.Recycle()
		pool.Shuffle()
		for {
			pos, ok := pool.Pop()
			if !ok {
				break
			}
			dir := directions[g.rand.IntN(len(directions))]
			if !grid.CanPlace(word, pos, dir) {
				continue
			}
			grid.Place(word, pos, dir)
			placed = append(placed, word)
			maxLength = max(maxLength, len(word))
			break
		}
	}
	return placed, maxLength
}

// fillEmpty assigns a uniform random letter A..Z to every cell no word
// claimed. Row-major traversal, random content.
func (g *Generator) fillEmpty(grid *Grid) {
	for r := range grid.Size() {
		for c := range grid.Size() {
			if grid.Get(r, c).IsEmpty() {
				grid.Set(r, c, Cell('A'+rune(g.rand.IntN(26))))
			}
		}
	}
}
