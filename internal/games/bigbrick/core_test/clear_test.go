package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/bigbrick/internal/games/bigbrick/core"
)

func TestClearSingleRow(t *testing.T) {
	l := newLevel(3, 4)
	placeStatic(t, l, core.C(0, 3), core.C(1, 3), core.C(2, 3))
	placeStatic(t, l, core.C(1, 2))

	assert.Equal(t, 1, l.ClearRows())
	assert.Equal(t, 4.0, l.Score())

	for x := 0; x < 3; x++ {
		assert.True(t, l.IsEmpty(x, 3))
	}
	b := l.Get(1, 2)
	require.NotNil(t, b, "bricks above are not shifted")
	assert.Equal(t, core.Dynamic, b.State)
	assert.False(t, b.Controllable, "reactivated bricks are not steerable")
}

func TestClearNothing(t *testing.T) {
	l := newLevel(3, 3)
	placeStatic(t, l, core.C(0, 2), core.C(1, 2))

	assert.Equal(t, 0, l.ClearRows())
	assert.Equal(t, 0.0, l.Score())
	assert.Equal(t, 2, l.Count())
}

func TestClearSkipsRowWithDynamicBrick(t *testing.T) {
	l := newLevel(3, 3)
	placeStatic(t, l, core.C(0, 2), core.C(1, 2))
	require.True(t, l.Place("p", []core.Coord{core.C(2, 2)}, 0))

	assert.Equal(t, 0, l.ClearRows())
	assert.Equal(t, 3, l.Count())
}

func TestClearSeversLinks(t *testing.T) {
	l := newLevel(3, 4)
	require.True(t, l.Place("p", []core.Coord{core.C(0, 1), core.C(0, 2), core.C(0, 3)}, 0))
	for _, b := range l.All() {
		settle(b)
	}
	placeStatic(t, l, core.C(1, 2), core.C(2, 2))

	require.Equal(t, 1, l.ClearRows())

	assert.False(t, l.Get(0, 1).Links.Bottom)
	assert.False(t, l.Get(0, 3).Links.Top)
	requireLinksSymmetric(t, l)
	assert.Len(t, l.Group(0, 1), 1)
	assert.Len(t, l.Group(0, 3), 1)

	assert.Equal(t, core.Dynamic, l.Get(0, 1).State)
	assert.Equal(t, core.Static, l.Get(0, 3).State, "below the gap stays settled")
}

func TestClearMultipleRows(t *testing.T) {
	testCases := []struct {
		rows  int
		score float64
	}{
		{1, 4},
		{2, 8},
		{3, 16},
		{4, 32},
	}

	for _, tc := range testCases {
		l := newLevel(2, 6)
		for y := 5; y > 5-tc.rows; y-- {
			placeStatic(t, l, core.C(0, y), core.C(1, y))
		}
		placeStatic(t, l, core.C(0, 0))

		if got := l.ClearRows(); got != tc.rows {
			t.Errorf("ClearRows() = %d, expected %d", got, tc.rows)
		}
		if l.Score() != tc.score {
			t.Errorf("Score() = %v, expected %v", l.Score(), tc.score)
		}
		if l.Get(0, 0).State != core.Dynamic {
			t.Errorf("brick above %d cleared rows not reactivated", tc.rows)
		}
	}
}

func TestClearReactivatesAboveTopmostOnly(t *testing.T) {
	l := newLevel(2, 5)
	placeStatic(t, l, core.C(0, 4), core.C(1, 4))
	placeStatic(t, l, core.C(0, 3))
	placeStatic(t, l, core.C(0, 2), core.C(1, 2))
	placeStatic(t, l, core.C(1, 1))

	require.Equal(t, 2, l.ClearRows())

	assert.Equal(t, core.Static, l.Get(0, 3).State, "between cleared rows")
	assert.Equal(t, core.Dynamic, l.Get(1, 1).State)
}

func TestClearedBricksFallAgain(t *testing.T) {
	l := newLevel(2, 4)
	placeStatic(t, l, core.C(0, 3), core.C(1, 3))
	placeStatic(t, l, core.C(0, 1))

	require.Equal(t, 1, l.ClearRows())
	for i := 0; i < 3; i++ {
		l.Tick()
	}

	b := l.Get(0, 3)
	require.NotNil(t, b)
	assert.Equal(t, core.Static, b.State)
	assert.Equal(t, 4.0, l.Score(), "no landing bonus for reactivated bricks")
}

func TestRowBonus(t *testing.T) {
	assert.Equal(t, 0.0, core.RowBonus(0))
	assert.Equal(t, 4.0, core.RowBonus(1))
	assert.Equal(t, 8.0, core.RowBonus(2))
}

func TestRowBonusTallBoards(t *testing.T) {
	for _, n := range []int{62, 63, 64, 100} {
		assert.Equal(t, math.Pow(2, float64(n+1)), core.RowBonus(n), "rows=%d", n)
	}
	assert.Greater(t, core.RowBonus(64), core.RowBonus(63))
}
