// Package scanner imports song titles from a music directory by reading
// embedded tags.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
	"go.uber.org/zap"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".oga":  true,
	".flac": true,
}

type Scanner struct {
	logger *zap.Logger
}

func New() *Scanner {
	return &Scanner{logger: zap.NewNop()}
}

func (s *Scanner) WithLogger(l *zap.Logger) *Scanner {
	s.logger = l
	return s
}

// Scan walks root and calls fn with the title of every audio file. Files
// without a readable title tag fall back to the file stem. An error from fn
// aborts the walk.
func (s *Scanner) Scan(ctx context.Context, root string, fn func(title string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || !IsAudioFile(path) {
			return nil
		}

		return fn(s.titleOf(path))
	})
}

// IsAudioFile reports whether path has a known audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

func (s *Scanner) titleOf(path string) string {
	file, err := os.Open(path)
	if err != nil {
		s.logger.Warn("failed to open media file", zap.String("path", path), zap.Error(err))
		return fileStem(path)
	}
	defer file.Close()

	metadata, err := tag.ReadFrom(file)
	if err != nil {
		s.logger.Debug("failed to parse tags", zap.String("path", path), zap.Error(err))
		return fileStem(path)
	}

	title := strings.TrimSpace(metadata.Title())
	if title == "" {
		return fileStem(path)
	}
	return title
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
