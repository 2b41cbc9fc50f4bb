package core

import "math/rand"

// Level owns the board: a fixed-size grid of optional bricks plus the score.
// Cells are stored in row-major order: index = y*W + x.
//
// A Level is not safe for concurrent use; the driver serializes all calls.
type Level struct {
	w     int
	h     int
	cells []*Brick
	score float64
	rng   *rand.Rand
}

// NewLevel creates an empty board. The RNG drives piece colors and random
// shapes; a nil RNG is replaced by one with a fixed seed.
func NewLevel(width, height int, rng *rand.Rand) *Level {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Level{
		w:     width,
		h:     height,
		cells: make([]*Brick, width*height),
		rng:   rng,
	}
}

// Width returns the board width in cells.
func (l *Level) Width() int {
	return l.w
}

// Height returns the board height in cells.
func (l *Level) Height() int {
	return l.h
}

// Score returns the accumulated score. It never decreases.
func (l *Level) Score() float64 {
	return l.score
}

func (l *Level) inBounds(x, y int) bool {
	return x >= 0 && x < l.w && y >= 0 && y < l.h
}

func (l *Level) index(x, y int) int {
	return y*l.w + x
}

// IsEmpty reports whether (x, y) is an in-bounds empty cell.
// Out-of-bounds cells count as blocked.
func (l *Level) IsEmpty(x, y int) bool {
	if !l.inBounds(x, y) {
		return false
	}
	return l.cells[l.index(x, y)] == nil
}

// Get returns the brick at (x, y), or nil for empty or out-of-bounds cells.
func (l *Level) Get(x, y int) *Brick {
	if !l.inBounds(x, y) {
		return nil
	}
	return l.cells[l.index(x, y)]
}

func (l *Level) at(c Coord) *Brick {
	return l.Get(c.X, c.Y)
}

func (l *Level) put(c Coord, b *Brick) {
	if l.inBounds(c.X, c.Y) {
		l.cells[l.index(c.X, c.Y)] = b
	}
}

// All returns every brick on the board, bottom-right first.
func (l *Level) All() []*Brick {
	bricks := make([]*Brick, 0, len(l.cells))
	for i := len(l.cells) - 1; i >= 0; i-- {
		if l.cells[i] != nil {
			bricks = append(bricks, l.cells[i])
		}
	}
	return bricks
}

// Count returns the number of occupied cells.
func (l *Level) Count() int {
	n := 0
	for _, b := range l.cells {
		if b != nil {
			n++
		}
	}
	return n
}
