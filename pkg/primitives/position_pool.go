package primitives

import "math/rand/v2"

// Position is a (row, col) cell coordinate in a square grid.
type Position struct {
	Row, Col int
}

// PositionPool holds candidate starting positions for one placement
// search. Popped positions move to a spent list instead of being lost,
// so the pool can be recycled to full size between searches.
type PositionPool struct {
	live  []Position
	spent []Position
	rand  *rand.Rand
}

// NewPositionPool creates a pool over every cell of a size x size grid.
func NewPositionPool(size int, rand *rand.Rand) *PositionPool {
	live := make([]Position, 0, size*size)
	for row := range size {
		for col := range size {
			live = append(live, Position{Row: row, Col: col})
		}
	}
	return &PositionPool{
		live:  live,
		spent: make([]Position, 0, size*size),
		rand:  rand,
	}
}

// Len returns the number of positions still poppable.
func (p *PositionPool) Len() int {
	return len(p.live)
}

// Recycle folds spent positions back into the live pool. Positions
// consumed by one search become eligible again for the next.
func (p *PositionPool) Recycle() {
	p.live = append(p.live, p.spent...)
	p.spent = p.spent[:0]
}

// Shuffle randomizes the pop order of the live positions.
func (p *PositionPool) Shuffle() {
	p.rand.Shuffle(len(p.live), func(i, j int) {
		p.live[i], p.live[j] = p.live[j], p.live[i]
	})
}

// Pop removes and returns the last live position, recording it as
// spent. The second return is false once the pool is exhausted.
func (p *PositionPool) Pop() (Position, bool) {
	if len(p.live) == 0 {
		return Position{}, false
	}
	pos := p.live[len(p.live)-1]
	p.live = p.live[:len(p.live)-1]
	p.spent = append(p.spent, pos)
	return pos, true
}
