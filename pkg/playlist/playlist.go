// Package playlist holds the ordered per-user playlists, kept separate from
// the library indexes: removing a song from a playlist does not remove it
// from the library.
package playlist

import (
	"errors"
	"time"
)

var (
	ErrNoSongs               = errors.New("no songs in the playlist")
	ErrRemoveInvalidPosition = errors.New("invalid playlist position")
)

// Song is one playlist entry. Title keeps the spelling the user typed, Key is
// the normalized form the library indexes it under.
type Song struct {
	Title   string    `json:"title"`
	Key     string    `json:"key"`
	AddedAt time.Time `json:"added_at"`
}

func (s *Song) GetHumanName() string {
	return s.Title
}

// Storage holds one user's playlist. Positions are 1-based.
type Storage interface {
	AppendSong(song *Song) error
	RemoveSong(position int) (*Song, error)
	GetSongs() ([]*Song, error)
	PopFirstSong() (*Song, error)
	ClearPlaylist() error
}
