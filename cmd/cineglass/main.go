package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/cenkeray/cineglass/internal/adapter"
	"github.com/cenkeray/cineglass/internal/domain"
	"github.com/cenkeray/cineglass/internal/favorites"
	"github.com/cenkeray/cineglass/internal/feed"
	"github.com/cenkeray/cineglass/internal/settings"
	"github.com/cenkeray/cineglass/internal/store"
	"github.com/cenkeray/cineglass/internal/tmdb"
	"github.com/cenkeray/cineglass/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("cineglass %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting cineglass", "version", Version)

	if !cfg.IsConfigured() {
		if err := runSetupFlow(cfg); err != nil {
			return err
		}
	}

	client := tmdb.NewClient(cfg.TMDB.BaseURL, cfg.TMDB.APIKey, logger)

	db, err := store.Open(adapter.DataPath())
	if err != nil {
		return fmt.Errorf("failed to open favorites store: %w", err)
	}
	defer db.Close()

	settingsSvc := settings.NewService(cfg, logger)
	lang := settingsSvc.Current().Language

	movieFeed := feed.New(feed.Options[domain.Movie]{
		Kind:     domain.KindMovie,
		Source:   client.Movies(),
		Genres:   client.Movies(),
		HasGenre: domain.Movie.HasGenre,
		Keep:     func(m domain.Movie) bool { return !domain.HasCJKTitle(m.Title) },
		Language: lang,
		Logger:   logger,
	})
	seriesFeed := feed.New(feed.Options[domain.Series]{
		Kind:     domain.KindSeries,
		Source:   client.Series(),
		Genres:   client.Series(),
		HasGenre: domain.Series.HasGenre,
		Keep:     func(s domain.Series) bool { return !domain.HasCJKTitle(s.Name) },
		Language: lang,
		Logger:   logger,
	})
	personFeed := feed.New(feed.Options[domain.Person]{
		Kind:     domain.KindPerson,
		Source:   client.Persons(),
		Keep:     func(p domain.Person) bool { return domain.IsLatinName(p.Name) },
		Language: lang,
		Logger:   logger,
	})

	movieFavs := favorites.New(
		store.NewTable[domain.FavoriteMovie](db, store.BucketMovies),
		domain.SnapshotMovie, logger)
	seriesFavs := favorites.New(
		store.NewTable[domain.FavoriteSeries](db, store.BucketSeries),
		domain.SnapshotSeries, logger)
	personFavs := favorites.New(
		store.NewTable[domain.FavoritePerson](db, store.BucketPersons),
		domain.SnapshotPerson, logger)

	model := tui.NewModel(context.Background(), tui.Deps{
		Movies:     movieFeed,
		Series:     seriesFeed,
		People:     personFeed,
		MovieFavs:  movieFavs,
		SeriesFavs: seriesFavs,
		PersonFavs: personFavs,
		Client:     client,
		Settings:   settingsSvc,
		Language:   lang,
		ImageBase:  cfg.TMDB.ImageBaseURL,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow prompts for the TMDB API key on first start
func runSetupFlow(cfg *adapter.Config) error {
	fmt.Println()
	fmt.Println("Welcome to cineglass!")
	fmt.Println()
	fmt.Print("Enter your TMDB API key (input hidden): ")

	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	cfg.TMDB.APIKey = apiKey
	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	return nil
}
