package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"musify/pkg/playlist"
)

type fileState struct {
	Songs []*playlist.Song `json:"songs"`
}

// FilePlaylistStorage keeps one user's playlist in a JSON file, read and
// rewritten on every operation.
type FilePlaylistStorage struct {
	mutex    sync.RWMutex
	filepath string
}

func NewFilePlaylistStorage(filepath string) (*FilePlaylistStorage, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		if err := os.WriteFile(filepath, []byte("{}"), 0644); err != nil {
			return nil, fmt.Errorf("failed to create file: %w", err)
		}
	}

	return &FilePlaylistStorage{
		mutex:    sync.RWMutex{},
		filepath: filepath,
	}, nil
}

func (s *FilePlaylistStorage) AppendSong(song *playlist.Song) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.readState()
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	state.Songs = append(state.Songs, song)

	if err := s.writeState(state); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *FilePlaylistStorage) RemoveSong(position int) (*playlist.Song, error) {
	index := position - 1

	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.readState()
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	if index >= len(state.Songs) || index < 0 {
		return nil, playlist.ErrRemoveInvalidPosition
	}

	song := state.Songs[index]

	copy(state.Songs[index:], state.Songs[index+1:])
	state.Songs[len(state.Songs)-1] = nil
	state.Songs = state.Songs[:len(state.Songs)-1]

	if err := s.writeState(state); err != nil {
		return nil, fmt.Errorf("failed to write state: %w", err)
	}

	return song, nil
}

func (s *FilePlaylistStorage) GetSongs() ([]*playlist.Song, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	state, err := s.readState()
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	return state.Songs, nil
}

func (s *FilePlaylistStorage) PopFirstSong() (*playlist.Song, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.readState()
	if err != nil {
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	if len(state.Songs) == 0 {
		return nil, playlist.ErrNoSongs
	}

	song := state.Songs[0]
	state.Songs = state.Songs[1:]

	if err := s.writeState(state); err != nil {
		return nil, fmt.Errorf("failed to write state: %w", err)
	}

	return song, nil
}

func (s *FilePlaylistStorage) ClearPlaylist() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, err := s.readState()
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	state.Songs = make([]*playlist.Song, 0)

	if err := s.writeState(state); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}

	return nil
}

func (s *FilePlaylistStorage) readState() (*fileState, error) {
	data, err := os.ReadFile(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var state fileState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal songs: %w", err)
	}

	return &state, nil
}

func (s *FilePlaylistStorage) writeState(state *fileState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
