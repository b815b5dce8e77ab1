package library

import (
	"errors"
	"fmt"
	"testing"
)

func TestPlayChart_MostPlayedTracksHighestCount(t *testing.T) {
	chart := newPlayChart(10)

	for i := 0; i < 3; i++ {
		if err := chart.recordPlay("bohemian rhapsody"); err != nil {
			t.Fatalf("recordPlay failed: %v", err)
		}
	}
	if err := chart.recordPlay("imagine"); err != nil {
		t.Fatalf("recordPlay failed: %v", err)
	}

	if got := chart.mostPlayed(); got != "bohemian rhapsody" {
		t.Fatalf("mostPlayed = %q, want %q", got, "bohemian rhapsody")
	}
}

func TestPlayChart_EmptyChartHasNoMostPlayed(t *testing.T) {
	chart := newPlayChart(10)
	if got := chart.mostPlayed(); got != "" {
		t.Fatalf("expected empty sentinel, got %q", got)
	}
}

func TestPlayChart_OvertakingRestoresHeapOrder(t *testing.T) {
	chart := newPlayChart(10)

	for i := 0; i < 5; i++ {
		chart.recordPlay("alpha")
	}
	for i := 0; i < 4; i++ {
		chart.recordPlay("beta")
	}

	if got := chart.mostPlayed(); got != "alpha" {
		t.Fatalf("mostPlayed = %q, want alpha", got)
	}

	// Two more plays push beta past alpha.
	chart.recordPlay("beta")
	chart.recordPlay("beta")

	if got := chart.mostPlayed(); got != "beta" {
		t.Fatalf("mostPlayed = %q, want beta after overtake", got)
	}

	assertHeapOrder(t, chart)
}

func TestPlayChart_TieBreaksLexicographically(t *testing.T) {
	chart := newPlayChart(10)

	chart.recordPlay("zebra song")
	chart.recordPlay("apple song")

	if got := chart.mostPlayed(); got != "apple song" {
		t.Fatalf("mostPlayed = %q, want lexicographic winner on tie", got)
	}
}

func TestPlayChart_FullChartRejectsNewNames(t *testing.T) {
	const capacity = 25
	chart := newPlayChart(capacity)

	for i := 0; i < capacity; i++ {
		if err := chart.recordPlay(fmt.Sprintf("song %c", 'a'+i)); err != nil {
			t.Fatalf("recordPlay %d failed: %v", i, err)
		}
	}

	before := chart.mostPlayed()

	if err := chart.recordPlay("one too many"); !errors.Is(err, ErrChartFull) {
		t.Fatalf("expected ErrChartFull, got %v", err)
	}
	if chart.size() != capacity {
		t.Fatalf("size = %d, want %d", chart.size(), capacity)
	}
	if chart.mostPlayed() != before {
		t.Fatalf("rejected play changed mostPlayed")
	}

	// Tracked names still accumulate plays on a full chart.
	if err := chart.recordPlay("song b"); err != nil {
		t.Fatalf("recordPlay of tracked name failed: %v", err)
	}
	if got := chart.mostPlayed(); got != "song b" {
		t.Fatalf("mostPlayed = %q, want song b", got)
	}
}

func TestPlayChart_TopReturnsChartOrder(t *testing.T) {
	chart := newPlayChart(10)

	for i := 0; i < 3; i++ {
		chart.recordPlay("gamma")
	}
	for i := 0; i < 2; i++ {
		chart.recordPlay("delta")
	}
	chart.recordPlay("omega")
	chart.recordPlay("epsilon")

	top := chart.top(3)
	if len(top) != 3 {
		t.Fatalf("len(top) = %d, want 3", len(top))
	}

	want := []PlayEntry{
		{Name: "gamma", Plays: 3},
		{Name: "delta", Plays: 2},
		{Name: "epsilon", Plays: 1},
	}
	for i, entry := range want {
		if top[i] != entry {
			t.Fatalf("top[%d] = %+v, want %+v", i, top[i], entry)
		}
	}

	if got := chart.top(100); len(got) != 4 {
		t.Fatalf("oversized top returned %d entries, want 4", len(got))
	}
	if got := chart.top(0); got != nil {
		t.Fatalf("top(0) = %v, want nil", got)
	}
}

func TestPlayChart_ResetKeepsCapacity(t *testing.T) {
	chart := newPlayChart(2)

	chart.recordPlay("one")
	chart.recordPlay("two")
	chart.reset()

	if chart.size() != 0 {
		t.Fatalf("size after reset = %d", chart.size())
	}
	if err := chart.recordPlay("three"); err != nil {
		t.Fatalf("recordPlay after reset failed: %v", err)
	}
	if got := chart.mostPlayed(); got != "three" {
		t.Fatalf("mostPlayed = %q, want three", got)
	}
}

// assertHeapOrder checks the max-heap invariant on every parent/child edge.
func assertHeapOrder(t *testing.T, chart *playChart) {
	t.Helper()
	for i := 1; i < len(chart.entries); i++ {
		parent := (i - 1) / 2
		if chart.entries[i].Plays > chart.entries[parent].Plays {
			t.Fatalf("heap violation at %d: %+v above %+v", i, chart.entries[i], chart.entries[parent])
		}
	}
}
