package days

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Five elves disperse in three rounds and round four moves nobody. The
// ground count is still well-defined: the box stops changing when the
// elves do.
func TestDay23SettlesBeforeTen(t *testing.T) {
	got, err := Day23("testdata/day23_small.txt")
	require.NoError(t, err)
	require.Equal(t, "25", got.PartA)
	require.Equal(t, "4", got.PartB)
}
