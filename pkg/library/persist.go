package library

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Save writes every stored song name to path, one per line, replacing any
// existing content. Play counts are not persisted.
func (l *Library) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create library file: %w", err)
	}

	writer := bufio.NewWriter(file)

	var writeErr error
	l.trie.walk(func(name string) bool {
		if _, err := fmt.Fprintln(writer, name); err != nil {
			writeErr = err
			return false
		}
		return true
	})

	if writeErr == nil {
		writeErr = writer.Flush()
	}
	if writeErr != nil {
		file.Close()
		return fmt.Errorf("failed to write library file: %w", writeErr)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close library file: %w", err)
	}

	l.logger.Debug("saved library", zap.String("path", path))
	return nil
}

// Load reads one name per line from path and stores each through the normal
// insert path, so every line is normalized again on the way in. Songs the
// session already holds are kept. Lines that normalize to nothing are
// skipped, they never abort the load.
func (l *Library) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open library file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if _, err := l.AddSong(line); err != nil {
			l.logger.Warn("skipped library line", zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read library file: %w", err)
	}

	l.logger.Debug("loaded library", zap.String("path", path))
	return nil
}
