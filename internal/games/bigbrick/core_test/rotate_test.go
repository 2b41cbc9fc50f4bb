package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

func TestRotateLine4(t *testing.T) {
	l := newLevel(10, 20)
	require.True(t, l.Place("p", []core.Coord{core.C(3, 1), core.C(4, 1), core.C(5, 1), core.C(6, 1)}, 0))

	assert.Equal(t, 1, l.Rotate())

	expected := []core.Coord{core.C(4, 0), core.C(4, 1), core.C(4, 2), core.C(4, 3)}
	assert.Equal(t, expected, occupied(l))
	assert.Equal(t, core.Links{Bottom: true}, l.Get(4, 0).Links)
	assert.Equal(t, core.Links{Top: true, Bottom: true}, l.Get(4, 1).Links)
	assert.Equal(t, core.Links{Top: true}, l.Get(4, 3).Links)
	requireLinksSymmetric(t, l)
}

func TestRotateSpawnedLine4AtTopIsRejected(t *testing.T) {
	l := newLevel(10, 20)
	require.True(t, l.SpawnShape("p", core.ShapeLine4))
	before := occupied(l)

	assert.Equal(t, 0, l.Rotate(), "top cell would leave the board")
	assert.Equal(t, before, occupied(l))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	testCases := []struct {
		name   string
		coords []core.Coord
	}{
		{"single", []core.Coord{core.C(4, 4)}},
		{"line3", []core.Coord{core.C(3, 4), core.C(4, 4), core.C(5, 4)}},
		{"plus", []core.Coord{core.C(4, 3), core.C(3, 4), core.C(4, 4), core.C(5, 4), core.C(4, 5)}},
		{"corner", []core.Coord{core.C(3, 3), core.C(3, 4), core.C(3, 5), core.C(4, 5), core.C(5, 5)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newLevel(10, 10)
			require.True(t, l.Place("p", tc.coords, 0))

			start := make(map[*core.Brick]core.Coord)
			links := make(map[*core.Brick]core.Links)
			for _, b := range l.All() {
				start[b] = b.Pos
				links[b] = b.Links
			}

			for i := 0; i < 4; i++ {
				require.Equal(t, 1, l.Rotate(), "rotation %d", i+1)
				requireLinksSymmetric(t, l)
			}

			for b, pos := range start {
				assert.Equal(t, pos, b.Pos)
				assert.Equal(t, links[b], b.Links)
				assert.Same(t, b, l.Get(pos.X, pos.Y))
			}
		})
	}
}

func TestRotateSquareDriftsLeft(t *testing.T) {
	l := newLevel(10, 10)
	require.True(t, l.Place("p", []core.Coord{core.C(4, 1), core.C(5, 1), core.C(4, 2), core.C(5, 2)}, 0))

	require.Equal(t, 1, l.Rotate())

	// The pivot rounds toward the top-left, so even-sized boxes shift.
	assert.Equal(t, []core.Coord{core.C(3, 1), core.C(4, 1), core.C(3, 2), core.C(4, 2)}, occupied(l))
	requireLinksSymmetric(t, l)
}

func TestRotateBlockedByForeignBrick(t *testing.T) {
	l := newLevel(10, 20)
	require.True(t, l.Place("p", []core.Coord{core.C(3, 1), core.C(4, 1), core.C(5, 1), core.C(6, 1)}, 0))
	placeStatic(t, l, core.C(4, 2))
	before := occupied(l)

	assert.Equal(t, 0, l.Rotate())
	assert.Equal(t, before, occupied(l))
	assert.Equal(t, core.Links{Right: true}, l.Get(3, 1).Links)
}

func TestRotateOnlyControllable(t *testing.T) {
	l := newLevel(10, 10)
	require.True(t, l.Place("p", []core.Coord{core.C(3, 4), core.C(4, 4), core.C(5, 4)}, 0))
	for _, b := range l.All() {
		b.Controllable = false
	}
	before := occupied(l)

	assert.Equal(t, 0, l.Rotate())
	assert.Equal(t, before, occupied(l))
}

func TestRotateGroupsIndependently(t *testing.T) {
	l := newLevel(10, 10)
	require.True(t, l.Place("a", []core.Coord{core.C(1, 4), core.C(2, 4), core.C(3, 4)}, 0))
	require.True(t, l.Place("b", []core.Coord{core.C(6, 0), core.C(7, 0), core.C(8, 0)}, 0))

	assert.Equal(t, 1, l.Rotate(), "b cannot rotate at the top edge")
	assert.NotNil(t, l.Get(2, 3))
	assert.NotNil(t, l.Get(2, 5))
	assert.NotNil(t, l.Get(6, 0))
}

func TestLinksRotated(t *testing.T) {
	testCases := []struct {
		in, out core.Links
	}{
		{core.Links{Left: true}, core.Links{Top: true}},
		{core.Links{Top: true}, core.Links{Right: true}},
		{core.Links{Right: true}, core.Links{Bottom: true}},
		{core.Links{Bottom: true}, core.Links{Left: true}},
	}

	for _, tc := range testCases {
		if got := tc.in.Rotated(); got != tc.out {
			t.Errorf("Rotated(%+v) = %+v, expected %+v", tc.in, got, tc.out)
		}
	}
}

func TestPivot(t *testing.T) {
	l := newLevel(10, 10)
	require.True(t, l.Place("p", []core.Coord{core.C(3, 1), core.C(4, 1), core.C(5, 1), core.C(6, 1)}, 0))
	assert.Equal(t, core.C(4, 1), core.Pivot(l.Group(3, 1)))
}
