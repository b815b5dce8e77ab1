package config

import (
	"fmt"
	"os"
	"path/filepath"

	"musify/pkg/playlist"
	"musify/pkg/playlist/store"
)

type Config struct {
	LibraryFile string `default:"./library.txt"`
	UsersFile   string `default:"./users.json"`

	ChartCapacity int `default:"2000"`

	Store StoreConfig
}

type StoreConfig struct {
	Type string `default:"memory"`
	File FileStoreConfig
}

type FileStoreConfig struct {
	Dir string `default:"./playlists"`
}

// GetPlaylistStore builds the playlist storage for one user from the
// configured store type.
func GetPlaylistStore(cfg *Config, username string) (playlist.Storage, error) {
	switch cfg.Store.Type {
	case "memory":
		return store.NewInMemoryPlaylistStorage(), nil

	case "file":
		if err := os.MkdirAll(cfg.Store.File.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create playlist dir: %w", err)
		}

		path := filepath.Join(cfg.Store.File.Dir, username+".json")
		return store.NewFilePlaylistStorage(path)

	default:
		return nil, fmt.Errorf("invalid store type %q", cfg.Store.Type)
	}
}
