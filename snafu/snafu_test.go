package snafu_test

import (
	"errors"
	"testing"

	"github.com/adventkit/aoc2022/snafu"
)

// pairs is the published decimal↔SNAFU correspondence table.
var pairs = []struct {
	decimal int
	text    string
}{
	{0, "0"},
	{1, "1"},
	{2, "2"},
	{3, "1="},
	{4, "1-"},
	{5, "10"},
	{6, "11"},
	{7, "12"},
	{8, "2="},
	{9, "2-"},
	{10, "20"},
	{11, "21"},
	{15, "1=0"},
	{20, "1-0"},
	{31, "111"},
	{32, "112"},
	{37, "122"},
	{107, "1-12"},
	{198, "2=0="},
	{201, "2=01"},
	{353, "1=-1="},
	{906, "12111"},
	{1257, "20012"},
	{1747, "1=-0-2"},
	{2022, "1=11-2"},
	{12345, "1-0---0"},
	{314159265, "1121-1110-1=0"},
}

func TestRoundTrip(t *testing.T) {
	for _, p := range pairs {
		got, err := snafu.Parse(p.text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", p.text, err)
		}
		if got != p.decimal {
			t.Errorf("Parse(%q) = %d; want %d", p.text, got, p.decimal)
		}

		text, err := snafu.Format(p.decimal)
		if err != nil {
			t.Fatalf("Format(%d): %v", p.decimal, err)
		}
		if text != p.text {
			t.Errorf("Format(%d) = %q; want %q", p.decimal, text, p.text)
		}
	}
}

func TestParseFormatIdentity(t *testing.T) {
	// Every small integer must survive a format→parse round trip.
	for n := 0; n < 10_000; n++ {
		text, err := snafu.Format(n)
		if err != nil {
			t.Fatalf("Format(%d): %v", n, err)
		}
		back, err := snafu.Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q): %v", text, err)
		}
		if back != n {
			t.Fatalf("round trip %d → %q → %d", n, text, back)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := snafu.Parse(""); !errors.Is(err, snafu.ErrEmpty) {
		t.Errorf("empty: want ErrEmpty, got %v", err)
	}
	if _, err := snafu.Parse("12x"); !errors.Is(err, snafu.ErrBadDigit) {
		t.Errorf("bad digit: want ErrBadDigit, got %v", err)
	}
	if _, err := snafu.Format(-1); !errors.Is(err, snafu.ErrNegative) {
		t.Errorf("negative: want ErrNegative, got %v", err)
	}
}
