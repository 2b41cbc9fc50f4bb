package core

// GroundBonus is awarded the first time a controllable group lands.
const GroundBonus = 1.5

// TickResult describes what one gravity step did.
type TickResult struct {
	Grounded int // Groups frozen this tick
	Bonuses  int // Of those, groups that were still controllable
	Moved    int // Bricks that fell one row
}

// Tick advances gravity by one row.
//
// A dynamic group lands when any of its bricks sits on a cell that is taken by
// something outside the falling set (or on the floor). Landed groups become
// static; a group landing for the first time stops being controllable and
// scores GroundBonus. Every other dynamic group falls one row.
func (l *Level) Tick() TickResult {
	var res TickResult

	falling := l.Falling()
	members := membership(falling)

	for _, g := range falling {
		for _, b := range g {
			below := b.Pos.Add(0, 1)
			if l.IsEmpty(below.X, below.Y) || b.Links.Bottom {
				continue
			}
			if occupant := l.at(below); occupant != nil {
				if _, ok := members[occupant]; ok {
					continue
				}
			}
			res.Grounded++
			if l.ground(g) {
				res.Bonuses++
			}
			break
		}
	}

	// Grounded groups stay in the batch; the blocking filter keeps them still.
	res.Moved = l.Move(falling, 0, 1)
	return res
}

// ground freezes a group. Returns true if it was still controllable, in which
// case the landing bonus is added once for the whole group.
func (l *Level) ground(g []*Brick) bool {
	wasControllable := false
	for _, b := range g {
		b.State = Static
		if b.Controllable {
			wasControllable = true
			b.Controllable = false
		}
	}
	if wasControllable {
		l.score += GroundBonus
	}
	return wasControllable
}

// HardDrop runs gravity until no controllable group is left. It returns the
// number of ticks it took and how many landing bonuses were scored.
func (l *Level) HardDrop() (ticks, bonuses int) {
	for len(l.Controllable()) > 0 {
		res := l.Tick()
		ticks++
		bonuses += res.Bonuses
		if res.Moved == 0 && res.Grounded == 0 {
			break
		}
	}
	return ticks, bonuses
}
