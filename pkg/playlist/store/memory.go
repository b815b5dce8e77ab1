package store

import (
	"sync"

	"musify/pkg/playlist"
)

type InMemoryPlaylistStorage struct {
	mutex sync.RWMutex
	songs []*playlist.Song
}

func NewInMemoryPlaylistStorage() *InMemoryPlaylistStorage {
	return &InMemoryPlaylistStorage{
		mutex: sync.RWMutex{},
		songs: make([]*playlist.Song, 0),
	}
}

func (s *InMemoryPlaylistStorage) AppendSong(song *playlist.Song) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.songs = append(s.songs, song)
	return nil
}

func (s *InMemoryPlaylistStorage) RemoveSong(position int) (*playlist.Song, error) {
	index := position - 1

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if index >= len(s.songs) || index < 0 {
		return nil, playlist.ErrRemoveInvalidPosition
	}

	song := s.songs[index]

	copy(s.songs[index:], s.songs[index+1:])
	s.songs[len(s.songs)-1] = nil
	s.songs = s.songs[:len(s.songs)-1]

	return song, nil
}

func (s *InMemoryPlaylistStorage) GetSongs() ([]*playlist.Song, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	songs := make([]*playlist.Song, len(s.songs))
	copy(songs, s.songs)

	return songs, nil
}

func (s *InMemoryPlaylistStorage) PopFirstSong() (*playlist.Song, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(s.songs) == 0 {
		return nil, playlist.ErrNoSongs
	}

	song := s.songs[0]
	s.songs = s.songs[1:]

	return song, nil
}

func (s *InMemoryPlaylistStorage) ClearPlaylist() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.songs = make([]*playlist.Song, 0)
	return nil
}
