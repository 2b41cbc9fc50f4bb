package core

// SpawnRandom drops a uniformly chosen built-in shape at the top of the board.
func (l *Level) SpawnRandom(owner string) bool {
	return l.SpawnShape(owner, Shape(l.rng.Intn(int(ShapeCount))))
}

// SpawnShape drops a built-in shape at the top of the board.
func (l *Level) SpawnShape(owner string, s Shape) bool {
	return l.Spawn(owner, s.Coords())
}

// Spawn places a piece with the given local footprint on row 0, centered
// horizontally. Every brick of the piece shares one random color and is linked
// to its footprint neighbours.
//
// Spawn returns false without touching the board when any target cell is
// taken; the caller treats that as "no room for a new piece".
func (l *Level) Spawn(owner string, coords []Coord) bool {
	color := l.randomColor()
	if len(coords) == 0 {
		return false
	}

	lo, hi := bounds(coords)
	offsetX := l.w/2 - (hi.X-lo.X+1)/2

	placed := make([]Coord, len(coords))
	for i, c := range coords {
		placed[i] = c.Add(offsetX, 0)
	}
	return l.place(owner, coords, placed, color)
}

// Place puts a piece at absolute board coordinates with an explicit color.
// Links come from the footprint itself. Returns false, leaving the board
// unchanged, if any cell is taken or the footprint repeats a cell.
func (l *Level) Place(owner string, coords []Coord, color Color) bool {
	if len(coords) == 0 {
		return false
	}
	return l.place(owner, coords, coords, color)
}

func (l *Level) place(owner string, local, placed []Coord, color Color) bool {
	footprint := make(map[Coord]struct{}, len(local))
	for _, c := range local {
		footprint[c] = struct{}{}
	}
	if len(footprint) != len(local) {
		return false
	}

	for _, c := range placed {
		if !l.IsEmpty(c.X, c.Y) {
			return false
		}
	}

	for i, c := range local {
		l.put(placed[i], NewBrick(owner, placed[i], linksFromFootprint(c, footprint), color))
	}
	return true
}

func (l *Level) randomColor() Color {
	return Color(l.rng.Intn(ColorCount))
}
