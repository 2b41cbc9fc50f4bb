package core

// Rotate turns every steerable group a quarter turn clockwise about its own
// pivot. Groups are handled independently; a group whose rotated footprint
// would overlap a foreign brick or leave the board is left untouched.
// Returns the number of groups that rotated.
func (l *Level) Rotate() int {
	rotated := 0
	for _, g := range l.Controllable() {
		if l.rotateGroup(g) {
			rotated++
		}
	}
	return rotated
}

// Pivot returns the rotation center of a group: the middle of its bounding
// box, rounded toward the top-left for even spans.
func Pivot(g []*Brick) Coord {
	coords := make([]Coord, len(g))
	for i, b := range g {
		coords[i] = b.Pos
	}
	lo, hi := bounds(coords)
	return C(lo.X+(hi.X-lo.X)/2, lo.Y+(hi.Y-lo.Y)/2)
}

// rotateAbout maps c a quarter turn clockwise around pivot p.
func rotateAbout(c, p Coord) Coord {
	return C(p.X+p.Y-c.Y, p.Y-p.X+c.X)
}

func (l *Level) rotateGroup(g []*Brick) bool {
	if len(g) == 0 {
		return false
	}
	pivot := Pivot(g)
	members := membership([][]*Brick{g})

	targets := make([]Coord, len(g))
	for i, b := range g {
		t := rotateAbout(b.Pos, pivot)
		if !l.IsEmpty(t.X, t.Y) {
			occupant := l.at(t)
			if occupant == nil {
				return false
			}
			if _, ok := members[occupant]; !ok {
				return false
			}
		}
		targets[i] = t
	}

	for _, b := range g {
		l.put(b.Pos, nil)
	}
	for i, b := range g {
		b.Pos = targets[i]
		b.Links = b.Links.Rotated()
		l.put(b.Pos, b)
	}
	return true
}
