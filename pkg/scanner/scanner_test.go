package scanner

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestIsAudioFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"nested/dir/track.flac", true},
		{"voice.ogg", true},
		{"cover.jpg", false},
		{"notes.txt", false},
		{"noext", false},
	}

	for _, tc := range cases {
		if got := IsAudioFile(tc.path); got != tc.want {
			t.Fatalf("IsAudioFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestScan_FallsBackToFileStem(t *testing.T) {
	dir := t.TempDir()

	// Empty files carry no parseable tags, so titles come from file stems.
	files := []string{"Bohemian Rhapsody.mp3", "Imagine.flac", "cover.jpg"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "Hey Jude.ogg"), nil, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var titles []string
	err := New().Scan(context.Background(), dir, func(title string) error {
		titles = append(titles, title)
		return nil
	})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	sort.Strings(titles)
	want := []string{"Bohemian Rhapsody", "Hey Jude", "Imagine"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
}

func TestScan_StopsOnCancelledContext(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "track.mp3"), nil, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Scan(ctx, dir, func(string) error {
		t.Fatalf("callback ran despite cancelled context")
		return nil
	})
	if err == nil {
		t.Fatalf("expected context error")
	}
}
