package days

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

const day10Screen = "##..##..##..##..##..##..##..##..##..##..\n" +
	"###...###...###...###...###...###...###.\n" +
	"####....####....####....####....####....\n" +
	"#####.....#####.....#####.....#####.....\n" +
	"######......######......######......####\n" +
	"#######.......#######.......#######....."

func sample(day int) string {
	return filepath.Join("testdata", "day"+strconv.Itoa(day)+".txt")
}

func TestSamples(t *testing.T) {
	cases := []struct {
		day          int
		partA, partB string
	}{
		{1, "24000", "45000"},
		{2, "15", "12"},
		{3, "157", "70"},
		{4, "2", "4"},
		{5, "CMZ", "MCD"},
		{6, "7", "19"},
		{7, "95437", "24933642"},
		{8, "21", "8"},
		{9, "13", "1"},
		{10, "13140", day10Screen},
		{11, "10605", "2713310158"},
		{12, "31", "29"},
		{13, "13", "140"},
		{14, "24", "93"},
		{16, "1651", "1707"},
		{17, "3068", ""},
		{18, "64", "58"},
		{19, "33", "3472"},
		{20, "3", "1623178306"},
		{21, "152", "301"},
		{23, "110", "20"},
		{24, "18", "54"},
		{25, "2=-1=0", ""},
	}
	for _, tc := range cases {
		t.Run("day"+strconv.Itoa(tc.day), func(t *testing.T) {
			got, err := Run(tc.day, sample(tc.day))
			require.NoError(t, err)
			require.Equal(t, tc.partA, got.PartA)
			require.Equal(t, tc.partB, got.PartB)
		})
	}
}

// the published answers use row 2000000 and limit 4000000; the sample is
// scaled down to row 10 and limit 20
func TestDay15Sample(t *testing.T) {
	got, err := day15(sample(15), 10, 20)
	require.NoError(t, err)
	require.Equal(t, "26", got.PartA)
	require.Equal(t, "56000011", got.PartB)
}

func TestRunUnknownDay(t *testing.T) {
	_, err := Run(22, "testdata/day1.txt")
	require.ErrorIs(t, err, ErrUnknownDay)

	_, err = Run(26, "testdata/day1.txt")
	require.ErrorIs(t, err, ErrUnknownDay)
}

func TestRunMissingInput(t *testing.T) {
	_, err := Run(1, filepath.Join("testdata", "no-such-file.txt"))
	require.ErrorIs(t, err, ErrInput)
}

func TestDays(t *testing.T) {
	ds := Days()
	require.Len(t, ds, 24)
	require.Equal(t, 1, ds[0])
	require.Equal(t, 25, ds[len(ds)-1])
	require.NotContains(t, ds, 22)
}
