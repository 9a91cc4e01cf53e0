package mix_test

import (
	"errors"
	"testing"

	"github.com/adventkit/aoc2022/mix"
)

var fixture = []int{1, 2, -3, 3, -2, 0, 4}

func TestMix_ZeroRounds(t *testing.T) {
	got := mix.Mix(fixture, 0)
	for i, v := range fixture {
		if got[i] != v {
			t.Fatalf("zero rounds changed the sequence: %v", got)
		}
	}
	// Must be a copy, not an alias.
	got[0] = 99
	if fixture[0] == 99 {
		t.Error("Mix returned its input slice")
	}
}

func TestMix_Degenerate(t *testing.T) {
	if got := mix.Mix(nil, 1); len(got) != 0 {
		t.Errorf("empty: %v", got)
	}
	if got := mix.Mix([]int{5}, 3); len(got) != 1 || got[0] != 5 {
		t.Errorf("single element: %v", got)
	}
}

func TestMix_OnePass(t *testing.T) {
	sum, err := mix.GroveSum(mix.Mix(fixture, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 3 {
		t.Errorf("grove sum = %d; want 3", sum)
	}
}

func TestMix_TenPassesWithKey(t *testing.T) {
	const key = 811589153
	scaled := make([]int, len(fixture))
	for i, v := range fixture {
		scaled[i] = v * key
	}
	sum, err := mix.GroveSum(mix.Mix(scaled, 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum != 1623178306 {
		t.Errorf("grove sum = %d; want 1623178306", sum)
	}
}

func TestMix_DuplicateValues(t *testing.T) {
	// Equal values must keep their identities; the pass must not panic or
	// move the wrong twin.
	got := mix.Mix([]int{0, 2, 2, 1}, 1)
	if len(got) != 4 {
		t.Fatalf("length changed: %v", got)
	}
}

func TestGroveSum_Errors(t *testing.T) {
	if _, err := mix.GroveSum([]int{1, 2, 3}); !errors.Is(err, mix.ErrZeroCount) {
		t.Errorf("no zero: want ErrZeroCount, got %v", err)
	}
	if _, err := mix.GroveSum([]int{0, 1, 0}); !errors.Is(err, mix.ErrZeroCount) {
		t.Errorf("two zeros: want ErrZeroCount, got %v", err)
	}
}
