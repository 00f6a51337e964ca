package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/camdenreyes/loci/internal/config"
	"github.com/camdenreyes/loci/internal/events"
	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/geo"
	"github.com/camdenreyes/loci/internal/logging"
	"github.com/camdenreyes/loci/internal/share"
	"github.com/camdenreyes/loci/internal/source"
	"github.com/camdenreyes/loci/internal/store"
	"github.com/camdenreyes/loci/internal/ui"
)

func main() {
	// .env is optional, config/env vars win anyway.
	godotenv.Load()

	if err := logging.Init(); err != nil {
		log.Printf("logging disabled: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(config.DataDir(), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	timeout := time.Duration(cfg.API.TimeoutSec) * time.Second

	// Location provider per config.
	var locator geo.Locator
	switch cfg.Geo.Mode {
	case "fixed":
		locator = geo.Fixed{Coords: geo.Coords{Lat: cfg.Geo.Lat, Lng: cfg.Geo.Lng}}
	case "ip":
		locator = geo.NewIPLocator(cfg.Geo.IPEndpoint, timeout)
	default:
		locator = geo.Denied{}
	}

	// Data sources: the spots API plus any configured GeoRSS feeds.
	sources := []source.Source{
		source.NewClient("spots", cfg.API.BaseURL, cfg.API.Key, timeout),
	}
	for i, feedURL := range cfg.API.EventFeeds {
		sources = append(sources, source.NewRSSSource(fmt.Sprintf("events-%d", i+1), feedURL, timeout))
	}
	var src source.Source = sources[0]
	if len(sources) > 1 {
		src = source.NewMulti(sources...)
	}

	// Interaction sink: recording needs an authenticated API key,
	// otherwise events are silently discarded.
	recorder := feed.Discard
	var dispatcher *events.Dispatcher
	var st *store.Store
	if cfg.Events.Enabled && cfg.API.Key != "" {
		dbPath := cfg.Events.DBPath
		if dbPath == "" {
			dbPath = filepath.Join(config.DataDir(), "loci.db")
		}
		st, err = store.Open(dbPath)
		if err != nil {
			// Continue without recording, scrolling matters more.
			logging.Error("interaction store unavailable", "err", err)
		} else {
			dispatcher = events.NewDispatcher(st, cfg.Events.Buffer)
			recorder = dispatcher
		}
	}

	tracker := feed.NewTracker(feed.TrackerConfig{Recorder: recorder})

	loadFeed := func(gen uint64) tea.Cmd {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			coords, err := locator.Locate(ctx)
			if err != nil {
				return ui.FeedLoadedMsg{Gen: gen, Err: fmt.Errorf("locate: %w", err)}
			}
			items, err := src.FetchNearby(ctx, coords, cfg.API.RadiusM)
			return ui.FeedLoadedMsg{Gen: gen, Items: items, Err: err}
		}
	}

	app := ui.NewApp(ui.AppConfig{
		Tracker:           tracker,
		Load:              loadFeed,
		Sharer:            share.Fallback{share.Clipboard{}, share.Browser{}},
		CoverageThreshold: cfg.UI.CoverageThreshold,
		MinDwell:          time.Duration(cfg.UI.MinDwellMs) * time.Millisecond,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Printf("Error running program: %v", err)
	}

	// Drain pending interactions before exit.
	if dispatcher != nil {
		dispatcher.Close()
	}
	if st != nil {
		st.Close()
	}
}
