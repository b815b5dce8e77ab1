// Package library implements an in-process index over a set of song titles.
// Two structures share one normalized vocabulary: a letter trie answering
// exact whole-word membership and a bounded max-heap answering "most played".
// Song identity is persisted to a flat text file; play counts are not.
package library

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrEmptyName   = errors.New("song name contains no letters")
	ErrNameTooLong = errors.New("song name is too long")
	ErrChartFull   = errors.New("popularity chart is full")
)

// Library is one indexing session. It is not safe for concurrent use.
type Library struct {
	trie   *songTrie
	chart  *playChart
	logger *zap.Logger

	chartCapacity int
}

type Option func(l *Library)

// WithChartCapacity bounds the number of distinct songs the popularity chart
// tracks. Values below 1 fall back to DefaultChartCapacity.
func WithChartCapacity(n int) Option {
	return func(l *Library) {
		l.chartCapacity = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// New returns an empty session.
func New(opts ...Option) *Library {
	lib := &Library{
		logger:        zap.NewNop(),
		chartCapacity: DefaultChartCapacity,
	}

	for _, opt := range opts {
		opt(lib)
	}

	lib.trie = newSongTrie()
	lib.chart = newPlayChart(lib.chartCapacity)

	return lib
}

// Reset discards every stored song and every play count. The chart keeps its
// backing storage.
func (l *Library) Reset() {
	l.trie = newSongTrie()
	l.chart.reset()
}

// AddSong normalizes raw and stores it in the membership index, returning the
// stored name. Adding a song twice is a no-op. The popularity chart is not
// touched.
func (l *Library) AddSong(raw string) (string, error) {
	name, err := checkName(raw)
	if err != nil {
		return "", err
	}

	l.trie.insert(name)
	l.logger.Debug("added song", zap.String("name", name))

	return name, nil
}

// Search reports whether some stored song normalizes to the same letter path
// as raw. Partial prefixes do not match. Inputs without letters are never
// found.
func (l *Library) Search(raw string) bool {
	name := Normalize(raw)
	if name == "" {
		return false
	}
	return l.trie.contains(name)
}

// RecordPlay counts one play of raw on the popularity chart, returning the
// normalized name it was counted under. The song does not need to be in the
// membership index.
func (l *Library) RecordPlay(raw string) (string, error) {
	name, err := checkName(raw)
	if err != nil {
		return "", err
	}

	if err := l.chart.recordPlay(name); err != nil {
		return "", err
	}

	return name, nil
}

// MostPlayed returns the name with the highest play count, or "" when no
// play was ever recorded. Equal counts are broken lexicographically.
func (l *Library) MostPlayed() string {
	return l.chart.mostPlayed()
}

// TopPlayed returns up to n chart entries, most played first.
func (l *Library) TopPlayed(n int) []PlayEntry {
	return l.chart.top(n)
}

// TrackedPlays returns the number of distinct songs on the chart.
func (l *Library) TrackedPlays() int {
	return l.chart.size()
}

// Songs returns every stored name in traversal order.
func (l *Library) Songs() []string {
	songs := []string{}
	l.trie.walk(func(name string) bool {
		songs = append(songs, name)
		return true
	})
	return songs
}

// WalkSongs visits every stored name in traversal order without
// materializing the whole set. Returning false from fn stops the walk.
func (l *Library) WalkSongs(fn func(name string) bool) {
	l.trie.walk(fn)
}

// Len returns the number of stored songs.
func (l *Library) Len() int {
	count := 0
	l.trie.walk(func(string) bool {
		count++
		return true
	})
	return count
}

func checkName(raw string) (string, error) {
	name := Normalize(raw)

	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return "", ErrNameTooLong
	}

	return name, nil
}
