// Package core implements the Big Brick board: a falling-block grid where
// pieces that touch weld into rigid compound groups.
// This package is UI-agnostic and deterministic for a given RNG.
package core

// State is the lifecycle of a brick.
type State uint8

const (
	// Dynamic bricks still fall, move and rotate.
	Dynamic State = iota
	// Static bricks are settled until a row clear reactivates them.
	Static
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// Links records which of the four neighbours belong to the same big brick.
// Links are the only source of truth for grouping; they are never re-derived
// from board occupancy.
type Links struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// Rotated returns the links after a quarter turn clockwise.
func (l Links) Rotated() Links {
	return Links{
		Left:   l.Bottom,
		Right:  l.Top,
		Top:    l.Left,
		Bottom: l.Right,
	}
}

// Brick is a single occupied cell.
type Brick struct {
	Pos          Coord
	Links        Links
	State        State
	Controllable bool   // Cleared the first time the brick's group lands
	Owner        string // Who spawned it; not used by board logic
	Color        Color
}

// NewBrick creates a dynamic, controllable brick.
func NewBrick(owner string, pos Coord, links Links, color Color) *Brick {
	return &Brick{
		Pos:          pos,
		Links:        links,
		State:        Dynamic,
		Controllable: true,
		Owner:        owner,
		Color:        color,
	}
}

// linksFromFootprint derives the links of the cell at c from the piece's own
// footprint. Board occupancy is deliberately ignored.
func linksFromFootprint(c Coord, footprint map[Coord]struct{}) Links {
	has := func(x, y int) bool {
		_, ok := footprint[C(x, y)]
		return ok
	}
	return Links{
		Left:   has(c.X-1, c.Y),
		Right:  has(c.X+1, c.Y),
		Top:    has(c.X, c.Y-1),
		Bottom: has(c.X, c.Y+1),
	}
}
