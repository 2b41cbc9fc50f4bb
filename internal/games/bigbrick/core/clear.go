package core

import "math"

// ClearRows removes every row that is full of static bricks and returns how
// many were removed.
//
// Links across each removed row are cut. Every brick above the topmost removed
// row becomes dynamic again so that it falls on later ticks; nothing is
// shifted here. Clearing n rows scores 2^(1+n).
func (l *Level) ClearRows() int {
	var rows []int
	for y := l.h - 1; y >= 0; y-- {
		if l.rowComplete(y) {
			rows = append(rows, y)
		}
	}
	if len(rows) == 0 {
		return 0
	}

	for _, y := range rows {
		for x := l.w - 1; x >= 0; x-- {
			l.put(C(x, y), nil)
			if up := l.Get(x, y-1); up != nil {
				up.Links.Bottom = false
			}
			if down := l.Get(x, y+1); down != nil {
				down.Links.Top = false
			}
		}
	}

	// rows is bottom-to-top, so the last entry is the topmost.
	top := rows[len(rows)-1]
	for y := top - 1; y >= 0; y-- {
		for x := l.w - 1; x >= 0; x-- {
			if b := l.Get(x, y); b != nil {
				b.State = Dynamic
			}
		}
	}

	l.score += RowBonus(len(rows))
	return len(rows)
}

// RowBonus is the score for clearing n rows at once.
func RowBonus(n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Ldexp(1, n+1)
}

func (l *Level) rowComplete(y int) bool {
	for x := l.w - 1; x >= 0; x-- {
		b := l.Get(x, y)
		if b == nil || b.State == Dynamic {
			return false
		}
	}
	return true
}
