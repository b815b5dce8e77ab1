package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"musify/pkg/config"
	"musify/pkg/library"
	"musify/pkg/scanner"
	"musify/pkg/sources"
	"musify/pkg/users"
)

var (
	cfg    = &config.Config{}
	logger *zap.Logger
)

func main() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()

	if err := envconfig.Process("MUSIFY", cfg); err != nil {
		logger.Fatal("failed to load envconfig", zap.Error(err))
	}

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "musify",
		Usage: "Musify indexes a song library and tracks the most played songs.",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a song to the library",
				ArgsUsage: "NAME",
				Action:    addAction,
			},
			{
				Name:      "search",
				Usage:     "Check whether a song is in the library",
				ArgsUsage: "NAME",
				Action:    searchAction,
			},
			{
				Name:      "play",
				Usage:     "Record a play and print a YouTube search link",
				ArgsUsage: "NAME",
				Action:    playAction,
			},
			{
				Name:   "songs",
				Usage:  "List every song in the library",
				Action: songsAction,
			},
			{
				Name:  "save",
				Usage: "Export the library to a text file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "target file (defaults to the configured library file)"},
				},
				Action: saveAction,
			},
			{
				Name:  "load",
				Usage: "Import songs from a text file into the library",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "source file (defaults to the configured library file)"},
				},
				Action: loadAction,
			},
			{
				Name:      "scan",
				Usage:     "Import song titles from a music directory",
				ArgsUsage: "DIR",
				Action:    scanAction,
			},
			{
				Name:  "user",
				Usage: "Manage user accounts",
				Subcommands: []*cli.Command{
					{
						Name:      "register",
						Usage:     "Create a user account",
						ArgsUsage: "USERNAME",
						Action:    registerAction,
					},
					{
						Name:      "login",
						Usage:     "Check the credentials of a user account",
						ArgsUsage: "USERNAME",
						Action:    loginAction,
					},
				},
			},
			{
				Name:   "shell",
				Usage:  "Start an interactive session",
				Action: shellAction,
			},
		},
	}
}

// openLibrary builds a session seeded from the configured library file. A
// missing file means an empty library, not an error.
func openLibrary() *library.Library {
	lib := library.New(
		library.WithChartCapacity(cfg.ChartCapacity),
		library.WithLogger(logger),
	)

	if _, err := os.Stat(cfg.LibraryFile); err == nil {
		if err := lib.Load(cfg.LibraryFile); err != nil {
			logger.Warn("failed to load library file", zap.Error(err))
		}
	}

	return lib
}

func titleArg(c *cli.Context) (string, error) {
	title := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if title == "" {
		return "", cli.Exit("Enter a song name", 1)
	}
	return title, nil
}

func addAction(c *cli.Context) error {
	title, err := titleArg(c)
	if err != nil {
		return err
	}

	lib := openLibrary()

	name, err := lib.AddSong(title)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if err := lib.Save(cfg.LibraryFile); err != nil {
		return err
	}

	fmt.Printf("Added '%s' to library.\n", name)
	return nil
}

func searchAction(c *cli.Context) error {
	title, err := titleArg(c)
	if err != nil {
		return err
	}

	if openLibrary().Search(title) {
		fmt.Printf("'%s' exists in library.\n", title)
		return nil
	}

	fmt.Printf("'%s' not found in library.\n", title)
	return cli.Exit("", 1)
}

func playAction(c *cli.Context) error {
	title, err := titleArg(c)
	if err != nil {
		return err
	}

	lib := openLibrary()

	name, err := lib.RecordPlay(title)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Playing '%s': %s\n", name, sources.YoutubeSearchURL(title))
	return nil
}

func songsAction(c *cli.Context) error {
	songs := openLibrary().Songs()
	if len(songs) == 0 {
		fmt.Println("Library is empty.")
		return nil
	}

	for i, name := range songs {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	return nil
}

func saveAction(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		path = cfg.LibraryFile
	}

	lib := openLibrary()
	if err := lib.Save(path); err != nil {
		return err
	}

	fmt.Printf("Library saved to %s (%d songs)\n", path, lib.Len())
	return nil
}

func loadAction(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		path = cfg.LibraryFile
	}

	lib := openLibrary()
	if err := lib.Load(path); err != nil {
		return err
	}
	if err := lib.Save(cfg.LibraryFile); err != nil {
		return err
	}

	fmt.Printf("Library loaded from %s (%d songs)\n", path, lib.Len())
	return nil
}

func scanAction(c *cli.Context) error {
	root := c.Args().First()
	if root == "" {
		return cli.Exit("directory required", 1)
	}

	lib := openLibrary()

	imported := 0
	err := scanner.New().WithLogger(logger).Scan(c.Context, root, func(title string) error {
		name, err := lib.AddSong(title)
		if err != nil {
			logger.Warn("skipped scanned title", zap.String("title", title), zap.Error(err))
			return nil
		}

		logger.Debug("imported song", zap.String("name", name))
		imported++
		return nil
	})
	if err != nil {
		return fmt.Errorf("while scanning %s: %w", root, err)
	}

	if err := lib.Save(cfg.LibraryFile); err != nil {
		return err
	}

	fmt.Printf("Imported %d songs from %s\n", imported, root)
	return nil
}

func registerAction(c *cli.Context) error {
	username := c.Args().First()
	if username == "" {
		return cli.Exit("username required", 1)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	store, err := users.NewStore(cfg.UsersFile)
	if err != nil {
		return err
	}
	if err := store.Register(username, password); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Println("Signup successful. You can now log in.")
	return nil
}

func loginAction(c *cli.Context) error {
	username := c.Args().First()
	if username == "" {
		return cli.Exit("username required", 1)
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	store, err := users.NewStore(cfg.UsersFile)
	if err != nil {
		return err
	}
	if err := store.Authenticate(username, password); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Welcome, %s!\n", username)
	return nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", cli.Exit("password required", 1)
	}
	return password, nil
}
