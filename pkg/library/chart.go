package library

import "golang.org/x/exp/slices"

// DefaultChartCapacity is the historical bound on distinct tracked songs.
const DefaultChartCapacity = 2000

// PlayEntry is one tracked song on the popularity chart.
type PlayEntry struct {
	Name  string
	Plays int
}

// playChart is a bounded max-heap over play counts. Name lookup is a linear
// scan, which is fine at the capacities the chart runs with.
type playChart struct {
	entries  []PlayEntry
	capacity int
}

func newPlayChart(capacity int) *playChart {
	if capacity <= 0 {
		capacity = DefaultChartCapacity
	}

	return &playChart{
		entries:  make([]PlayEntry, 0, capacity),
		capacity: capacity,
	}
}

// outranks reports whether a sits above b on the chart. Equal play counts are
// broken lexicographically, so the chart order is a total order and
// mostPlayed is deterministic.
func outranks(a, b PlayEntry) bool {
	if a.Plays != b.Plays {
		return a.Plays > b.Plays
	}
	return a.Name < b.Name
}

// recordPlay increments the play count of name, tracking it with count 1 on
// its first play. Returns ErrChartFull when a never-played name arrives on a
// full chart; plays of already tracked names always succeed.
func (c *playChart) recordPlay(name string) error {
	for i := range c.entries {
		if c.entries[i].Name == name {
			c.entries[i].Plays++
			c.siftUp(i)
			return nil
		}
	}

	if len(c.entries) >= c.capacity {
		return ErrChartFull
	}

	c.entries = append(c.entries, PlayEntry{Name: name, Plays: 1})
	c.siftUp(len(c.entries) - 1)
	return nil
}

// siftUp restores the heap property after the entry at index gained priority.
// Counts only ever grow, so no downward sift is needed anywhere.
func (c *playChart) siftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !outranks(c.entries[index], c.entries[parent]) {
			return
		}
		c.entries[index], c.entries[parent] = c.entries[parent], c.entries[index]
		index = parent
	}
}

func (c *playChart) mostPlayed() string {
	if len(c.entries) == 0 {
		return ""
	}
	return c.entries[0].Name
}

// top returns the n highest entries in chart order.
func (c *playChart) top(n int) []PlayEntry {
	if n <= 0 {
		return nil
	}

	sorted := slices.Clone(c.entries)
	slices.SortFunc(sorted, func(a, b PlayEntry) int {
		switch {
		case outranks(a, b):
			return -1
		case outranks(b, a):
			return 1
		default:
			return 0
		}
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// reset drops every entry but keeps the backing storage.
func (c *playChart) reset() {
	c.entries = c.entries[:0]
}

func (c *playChart) size() int {
	return len(c.entries)
}
