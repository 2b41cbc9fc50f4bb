package core

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// Group returns the big brick containing (x, y): every brick reachable from
// it by following set links. Returns nil for an empty cell.
//
// The result is ordered bottom-right first: a brick whose X and Y are both
// greater or equal to another's always precedes it.
func (l *Level) Group(x, y int) []*Brick {
	if l.Get(x, y) == nil {
		return nil
	}
	seen := intmap.New[int, struct{}](8)
	group := l.collect(C(x, y), seen)
	sortGroup(group)
	return group
}

// AllGroups partitions every brick into its big brick.
// Seeds are scanned from the bottom-right cell to the top-left one; groups
// are emitted in the order their first seed is met.
func (l *Level) AllGroups() [][]*Brick {
	seen := intmap.New[int, struct{}](len(l.cells))
	var groups [][]*Brick
	for y := l.h - 1; y >= 0; y-- {
		for x := l.w - 1; x >= 0; x-- {
			idx := l.index(x, y)
			if l.cells[idx] == nil {
				continue
			}
			if _, done := seen.Get(idx); done {
				continue
			}
			group := l.collect(C(x, y), seen)
			sortGroup(group)
			groups = append(groups, group)
		}
	}
	return groups
}

// Controllable returns the groups the player steers: dynamic groups that have
// not landed yet.
func (l *Level) Controllable() [][]*Brick {
	return l.filterGroups(func(b *Brick) bool {
		return b.State == Dynamic && b.Controllable
	})
}

// Falling returns every dynamic group.
func (l *Level) Falling() [][]*Brick {
	return l.filterGroups(func(b *Brick) bool {
		return b.State == Dynamic
	})
}

// filterGroups keeps the groups whose first brick matches. Lifecycle flags
// are uniform within a group, so the first brick speaks for all of them.
func (l *Level) filterGroups(match func(*Brick) bool) [][]*Brick {
	var out [][]*Brick
	for _, g := range l.AllGroups() {
		if len(g) > 0 && match(g[0]) {
			out = append(out, g)
		}
	}
	return out
}

// collect walks the link graph depth-first from seed, exploring left, right,
// top, bottom in that priority. Visited cells are recorded in seen.
func (l *Level) collect(seed Coord, seen *intmap.Map[int, struct{}]) []*Brick {
	var group []*Brick
	stack := []Coord{seed}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b := l.at(c)
		if b == nil {
			continue
		}
		idx := l.index(c.X, c.Y)
		if _, ok := seen.Get(idx); ok {
			continue
		}
		seen.Put(idx, struct{}{})
		group = append(group, b)

		// Pushed in reverse so that left is explored first.
		if b.Links.Bottom {
			stack = append(stack, c.Add(0, 1))
		}
		if b.Links.Top {
			stack = append(stack, c.Add(0, -1))
		}
		if b.Links.Right {
			stack = append(stack, c.Add(1, 0))
		}
		if b.Links.Left {
			stack = append(stack, c.Add(-1, 0))
		}
	}
	return group
}

func sortGroup(group []*Brick) {
	sort.SliceStable(group, func(i, j int) bool {
		a, b := group[i].Pos, group[j].Pos
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X > b.X
	})
}

// membership indexes every brick of the given groups.
func membership(groups [][]*Brick) map[*Brick]struct{} {
	set := make(map[*Brick]struct{})
	for _, g := range groups {
		for _, b := range g {
			set[b] = struct{}{}
		}
	}
	return set
}
