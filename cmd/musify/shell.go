package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"musify/pkg/config"
	"musify/pkg/library"
	"musify/pkg/playlist"
	"musify/pkg/sources"
	"musify/pkg/users"
)

const shellHelp = `Commands:
  add NAME        add a song to the library
  search NAME     check whether a song is in the library
  play NAME       record a play and print a YouTube search link
  most            print the most played song
  top [N]         print the N most played songs (default 10)
  songs           list every song in the library
  save [FILE]     save the library (default: configured library file)
  load [FILE]     load songs from a file into the library
  reset           discard the library and all play counts
  register NAME   create a user account
  login NAME      log in as a user
  pladd NAME      append a song to your playlist
  plist           print your playlist
  plremove N      remove the song at position N from your playlist
  plclear         clear your playlist
  quit            leave the shell`

// shell keeps one library session alive across commands, so play counts
// recorded here feed "most" and "top" directly, as in the original desktop
// front-end.
type shell struct {
	lib   *library.Library
	out   *bufio.Writer
	users *users.Store

	username string
	plstore  playlist.Storage
}

func shellAction(c *cli.Context) error {
	userStore, err := users.NewStore(cfg.UsersFile)
	if err != nil {
		return err
	}

	sh := &shell{
		lib:   openLibrary(),
		out:   bufio.NewWriter(os.Stdout),
		users: userStore,
	}

	return sh.run(bufio.NewScanner(os.Stdin))
}

func (sh *shell) run(input *bufio.Scanner) error {
	sh.printf("musify %d songs loaded. Type \"help\" for commands.\n", sh.lib.Len())

	for {
		sh.printf("> ")
		sh.out.Flush()

		if !input.Scan() {
			return input.Err()
		}

		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}

		command, rest := splitCommand(line)
		if command == "quit" || command == "exit" {
			return nil
		}

		sh.dispatch(input, command, rest)
	}
}

func splitCommand(line string) (string, string) {
	fields := strings.SplitN(line, " ", 2)
	if len(fields) == 1 {
		return strings.ToLower(fields[0]), ""
	}
	return strings.ToLower(fields[0]), strings.TrimSpace(fields[1])
}

func (sh *shell) dispatch(input *bufio.Scanner, command, rest string) {
	switch command {
	case "help":
		sh.printf("%s\n", shellHelp)
	case "add":
		sh.addSong(rest)
	case "search":
		sh.searchSong(rest)
	case "play":
		sh.playSong(rest)
	case "most":
		sh.mostPlayed()
	case "top":
		sh.topPlayed(rest)
	case "songs":
		sh.listSongs()
	case "save":
		sh.saveLibrary(rest)
	case "load":
		sh.loadLibrary(rest)
	case "reset":
		sh.lib.Reset()
		sh.printf("Library reset.\n")
	case "register":
		sh.register(input, rest)
	case "login":
		sh.login(input, rest)
	case "pladd":
		sh.playlistAdd(rest)
	case "plist":
		sh.playlistList()
	case "plremove":
		sh.playlistRemove(rest)
	case "plclear":
		sh.playlistClear()
	default:
		sh.printf("Unknown command %q. Type \"help\" for commands.\n", command)
	}
}

func (sh *shell) printf(format string, args ...any) {
	fmt.Fprintf(sh.out, format, args...)
}

func (sh *shell) addSong(title string) {
	if title == "" {
		sh.printf("Enter a song name\n")
		return
	}

	name, err := sh.lib.AddSong(title)
	if err != nil {
		sh.printf("Cannot add song: %v\n", err)
		return
	}

	sh.printf("Added '%s' to library.\n", name)
}

func (sh *shell) searchSong(title string) {
	if title == "" {
		sh.printf("Enter a song name\n")
		return
	}

	if sh.lib.Search(title) {
		sh.printf("'%s' exists in library.\n", title)
	} else {
		sh.printf("'%s' not found in library.\n", title)
	}
}

func (sh *shell) playSong(title string) {
	if title == "" {
		sh.printf("Enter a song name\n")
		return
	}

	name, err := sh.lib.RecordPlay(title)
	if err != nil {
		if errors.Is(err, library.ErrChartFull) {
			sh.printf("Chart is full, play not counted.\n")
		} else {
			sh.printf("Cannot play song: %v\n", err)
		}
		return
	}

	sh.printf("Playing '%s': %s\n", name, sources.YoutubeSearchURL(title))
	sh.printf("Most Played: %s\n", orDash(sh.lib.MostPlayed()))
}

func (sh *shell) mostPlayed() {
	sh.printf("Most Played: %s\n", orDash(sh.lib.MostPlayed()))
}

func (sh *shell) topPlayed(rest string) {
	n := 10
	if rest != "" {
		parsed, err := strconv.Atoi(rest)
		if err != nil || parsed < 1 {
			sh.printf("top takes a positive number\n")
			return
		}
		n = parsed
	}

	entries := sh.lib.TopPlayed(n)
	if len(entries) == 0 {
		sh.printf("No plays recorded yet.\n")
		return
	}

	for i, entry := range entries {
		sh.printf("%d. %s (%d plays)\n", i+1, entry.Name, entry.Plays)
	}
}

func (sh *shell) listSongs() {
	songs := sh.lib.Songs()
	if len(songs) == 0 {
		sh.printf("Library is empty.\n")
		return
	}

	for i, name := range songs {
		sh.printf("%d. %s\n", i+1, name)
	}
}

func (sh *shell) saveLibrary(path string) {
	if path == "" {
		path = cfg.LibraryFile
	}

	if err := sh.lib.Save(path); err != nil {
		sh.printf("Save failed: %v\n", err)
		return
	}
	sh.printf("Library saved to %s\n", path)
}

func (sh *shell) loadLibrary(path string) {
	if path == "" {
		path = cfg.LibraryFile
	}

	if err := sh.lib.Load(path); err != nil {
		sh.printf("Load failed: %v\n", err)
		return
	}
	sh.printf("Library loaded from %s (%d songs)\n", path, sh.lib.Len())
}

func (sh *shell) register(input *bufio.Scanner, username string) {
	if username == "" {
		sh.printf("Enter a username\n")
		return
	}

	password := sh.promptLine(input, "Password: ")
	if password == "" {
		sh.printf("Enter a password\n")
		return
	}

	if err := sh.users.Register(username, password); err != nil {
		sh.printf("Signup failed: %v\n", err)
		return
	}
	sh.printf("Signup successful. You can now log in.\n")
}

func (sh *shell) login(input *bufio.Scanner, username string) {
	if username == "" {
		sh.printf("Enter a username\n")
		return
	}

	password := sh.promptLine(input, "Password: ")
	if err := sh.users.Authenticate(username, password); err != nil {
		sh.printf("Login failed: %v\n", err)
		return
	}

	storage, err := config.GetPlaylistStore(cfg, username)
	if err != nil {
		sh.printf("Login failed: %v\n", err)
		return
	}

	sh.username = username
	sh.plstore = storage
	sh.printf("Welcome, %s!\n", username)
}

func (sh *shell) promptLine(input *bufio.Scanner, prompt string) string {
	sh.printf("%s", prompt)
	sh.out.Flush()

	if !input.Scan() {
		return ""
	}
	return strings.TrimSpace(input.Text())
}

func (sh *shell) playlistAdd(title string) {
	if !sh.requireLogin() {
		return
	}
	if title == "" {
		sh.printf("Enter a song name\n")
		return
	}

	name, err := sh.lib.AddSong(title)
	if err != nil {
		sh.printf("Cannot add song: %v\n", err)
		return
	}

	song := &playlist.Song{
		Title:   title,
		Key:     name,
		AddedAt: time.Now().UTC(),
	}
	if err := sh.plstore.AppendSong(song); err != nil {
		sh.printf("Cannot add to playlist: %v\n", err)
		return
	}

	sh.printf("Added '%s' to %s's playlist.\n", title, sh.username)
}

func (sh *shell) playlistList() {
	if !sh.requireLogin() {
		return
	}

	songs, err := sh.plstore.GetSongs()
	if err != nil {
		sh.printf("Cannot read playlist: %v\n", err)
		return
	}
	if len(songs) == 0 {
		sh.printf("Playlist is empty.\n")
		return
	}

	for i, song := range songs {
		sh.printf("%d. %s\n", i+1, song.GetHumanName())
	}
}

func (sh *shell) playlistRemove(rest string) {
	if !sh.requireLogin() {
		return
	}

	position, err := strconv.Atoi(rest)
	if err != nil {
		sh.printf("plremove takes a playlist position\n")
		return
	}

	song, err := sh.plstore.RemoveSong(position)
	if err != nil {
		sh.printf("Cannot remove song: %v\n", err)
		return
	}

	sh.printf("Removed '%s' from playlist.\n", song.GetHumanName())
}

func (sh *shell) playlistClear() {
	if !sh.requireLogin() {
		return
	}

	if err := sh.plstore.ClearPlaylist(); err != nil {
		sh.printf("Cannot clear playlist: %v\n", err)
		return
	}
	sh.printf("Playlist cleared.\n")
}

func (sh *shell) requireLogin() bool {
	if sh.plstore == nil {
		sh.printf("Login first.\n")
		return false
	}
	return true
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
