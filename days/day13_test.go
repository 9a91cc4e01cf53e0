package days

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComparePackets(t *testing.T) {
	ordered := []struct{ a, b string }{
		{"[1,1,3,1,1]", "[1,1,5,1,1]"},
		{"[[1],[2,3,4]]", "[[1],4]"},
		{"[[4,4],4,4]", "[[4,4],4,4,4]"},
		{"[]", "[3]"},
	}
	for _, tc := range ordered {
		a, err := parsePacket(tc.a)
		require.NoError(t, err)
		b, err := parsePacket(tc.b)
		require.NoError(t, err)
		require.Negative(t, comparePackets(a, b), "%s vs %s", tc.a, tc.b)
		require.Positive(t, comparePackets(b, a), "%s vs %s reversed", tc.b, tc.a)
	}

	a, err := parsePacket("[1,[2],3]")
	require.NoError(t, err)
	require.Zero(t, comparePackets(a, a))
}

func TestParsePacketErrors(t *testing.T) {
	for _, bad := range []string{"", "[1,2", "[1]]", "[a]", "[1,,2]"} {
		_, err := parsePacket(bad)
		require.ErrorIs(t, err, ErrParse, "%q", bad)
	}
}
