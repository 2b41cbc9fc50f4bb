package core_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

func newLevel(w, h int) *core.Level {
	return core.NewLevel(w, h, rand.New(rand.NewSource(42)))
}

// placeStatic puts settled single bricks at the given cells.
func placeStatic(t *testing.T, l *core.Level, cells ...core.Coord) {
	t.Helper()
	for _, c := range cells {
		require.True(t, l.Place("wall", []core.Coord{c}, 0), "place %v", c)
		settle(l.Get(c.X, c.Y))
	}
}

// settle marks a brick as landed.
func settle(b *core.Brick) {
	b.State = core.Static
	b.Controllable = false
}

func positions(bricks []*core.Brick) []core.Coord {
	out := make([]core.Coord, len(bricks))
	for i, b := range bricks {
		out[i] = b.Pos
	}
	sortCoords(out)
	return out
}

func sortCoords(cs []core.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}

// occupied returns every taken cell of the board in row-major order.
func occupied(l *core.Level) []core.Coord {
	var out []core.Coord
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			if l.Get(x, y) != nil {
				out = append(out, core.C(x, y))
			}
		}
	}
	return out
}

// requireLinksSymmetric checks that every set link points at a brick that links back.
func requireLinksSymmetric(t *testing.T, l *core.Level) {
	t.Helper()
	for _, b := range l.All() {
		x, y := b.Pos.X, b.Pos.Y
		if b.Links.Right {
			n := l.Get(x+1, y)
			require.NotNil(t, n, "right of %v", b.Pos)
			require.True(t, n.Links.Left, "right of %v does not link back", b.Pos)
		}
		if b.Links.Left {
			n := l.Get(x-1, y)
			require.NotNil(t, n, "left of %v", b.Pos)
			require.True(t, n.Links.Right, "left of %v does not link back", b.Pos)
		}
		if b.Links.Top {
			n := l.Get(x, y-1)
			require.NotNil(t, n, "above %v", b.Pos)
			require.True(t, n.Links.Bottom, "above %v does not link back", b.Pos)
		}
		if b.Links.Bottom {
			n := l.Get(x, y+1)
			require.NotNil(t, n, "below %v", b.Pos)
			require.True(t, n.Links.Top, "below %v does not link back", b.Pos)
		}
	}
}
