package core

import "sort"

// Move translates several big bricks by (dx, dy) at once and returns the
// number of bricks that moved.
//
// A group moves only if every cell it enters is empty or belongs to another
// group that is moving too; otherwise the whole group stays put. Links are
// unchanged by translation.
func (l *Level) Move(groups [][]*Brick, dx, dy int) int {
	batch := l.movable(groups, dx, dy)

	var bricks []*Brick
	seen := make(map[*Brick]struct{})
	for _, g := range batch {
		for _, b := range g {
			if _, dup := seen[b]; dup {
				continue
			}
			seen[b] = struct{}{}
			bricks = append(bricks, b)
		}
	}
	sortForTravel(bricks, dx, dy)

	for _, b := range bricks {
		l.put(b.Pos, nil)
		b.Pos = b.Pos.Add(dx, dy)
		l.put(b.Pos, b)
	}
	return len(bricks)
}

// movable drops blocked groups from the batch until the remaining set is
// stable. Dropping one group can block another that was counting on it to
// vacate a cell, so a single pass is not enough.
func (l *Level) movable(groups [][]*Brick, dx, dy int) [][]*Brick {
	batch := make([][]*Brick, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			batch = append(batch, g)
		}
	}

	for {
		members := membership(batch)
		kept := batch[:0:0]
		for _, g := range batch {
			if !l.blocked(g, dx, dy, members) {
				kept = append(kept, g)
			}
		}
		if len(kept) == len(batch) {
			return kept
		}
		batch = kept
	}
}

// blocked reports whether any brick of g would enter a cell that is neither
// empty nor held by a member of the batch.
func (l *Level) blocked(g []*Brick, dx, dy int, members map[*Brick]struct{}) bool {
	for _, b := range g {
		dst := b.Pos.Add(dx, dy)
		if l.IsEmpty(dst.X, dst.Y) {
			continue
		}
		occupant := l.at(dst)
		if occupant == nil {
			return true
		}
		if _, ok := members[occupant]; !ok {
			return true
		}
	}
	return false
}

// sortForTravel orders bricks so the ones farthest along the direction of
// travel go first and vacate their cells before trailing bricks arrive.
func sortForTravel(bricks []*Brick, dx, dy int) {
	sort.SliceStable(bricks, func(i, j int) bool {
		a, b := bricks[i].Pos, bricks[j].Pos
		if a.Y != b.Y {
			if dy >= 0 {
				return a.Y > b.Y
			}
			return a.Y < b.Y
		}
		if dx >= 0 {
			return a.X > b.X
		}
		return a.X < b.X
	})
}

// MoveControllable shifts every steerable group horizontally.
// Returns true if anything moved.
func (l *Level) MoveControllable(dx int) bool {
	return l.Move(l.Controllable(), dx, 0) > 0
}
