package primitives

import (
	"math/rand/v2"
	"testing"
)

func TestPositionPoolCoversAllCells(t *testing.T) {
	pool := NewPositionPool(4, rand.New(rand.NewPCG(42, 1024)))
	pool.Shuffle()

	seen := make(map[Position]bool)
	for {
		pos, ok := pool.Pop()
		if !ok {
			break
		}
		if pos.Row < 0 || pos.Row >= 4 || pos.Col < 0 || pos.Col >= 4 {
			t.Errorf("position %v outside 4x4 grid", pos)
		}
		if seen[pos] {
			t.Errorf("position %v popped twice", pos)
		}
		seen[pos] = true
	}
	if len(seen) != 16 {
		t.Errorf("popped %d positions, want 16", len(seen))
	}
	if _, ok := pool.Pop(); ok {
		t.Error("Pop succeeded on an exhausted pool")
	}
}

func TestPositionPoolRecycle(t *testing.T) {
	pool := NewPositionPool(3, rand.New(rand.NewPCG(1, 2)))
	pool.Shuffle()

	for range 5 {
		if _, ok := pool.Pop(); !ok {
			t.Fatal("pool exhausted early")
		}
	}
	if pool.Len() != 4 {
		t.Fatalf("Len = %d after 5 pops, want 4", pool.Len())
	}

	pool.Recycle()
	if pool.Len() != 9 {
		t.Fatalf("Len = %d after recycle, want 9", pool.Len())
	}

	seen := make(map[Position]bool)
	for {
		pos, ok := pool.Pop()
		if !ok {
			break
		}
		if seen[pos] {
			t.Errorf("position %v popped twice after recycle", pos)
		}
		seen[pos] = true
	}
	if len(seen) != 9 {
		t.Errorf("popped %d positions after recycle, want 9", len(seen))
	}
}

func TestPositionPoolSameSeedSameOrder(t *testing.T) {
	popAll := func(seed uint64) []Position {
		pool := NewPositionPool(5, rand.New(rand.NewPCG(seed, seed)))
		pool.Shuffle()
		var order []Position
		for {
			pos, ok := pool.Pop()
			if !ok {
				return order
			}
			order = append(order, pos)
		}
	}

	first := popAll(9)
	second := popAll(9)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order diverges at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
