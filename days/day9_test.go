package days

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adventkit/aoc2022/grid"
)

func TestFollow(t *testing.T) {
	head := grid.Pt(0, 0)

	// adjacent or overlapping tails stay put
	for _, tail := range []grid.XY{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 1}} {
		require.Equal(t, tail, follow(head, tail))
	}

	// straight pulls
	require.Equal(t, grid.Pt(1, 0), follow(head, grid.Pt(2, 0)))
	require.Equal(t, grid.Pt(0, -1), follow(head, grid.Pt(0, -2)))

	// diagonal pulls close both axes
	require.Equal(t, grid.Pt(1, 1), follow(grid.Pt(0, 0), grid.Pt(2, 1)))
	require.Equal(t, grid.Pt(-1, -1), follow(grid.Pt(0, 0), grid.Pt(-2, -2)))
}

func TestRopeLongSample(t *testing.T) {
	lines, err := readLines("testdata/day9_long.txt")
	require.NoError(t, err)

	visits, err := ropeTailVisits(lines, 10)
	require.NoError(t, err)
	require.Equal(t, 36, visits)
}
