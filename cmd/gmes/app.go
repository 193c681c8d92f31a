package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mmcdole/gmes/internal/adapter"
	"github.com/mmcdole/gmes/internal/adapter/source"
	"github.com/mmcdole/gmes/internal/service"
	"github.com/mmcdole/gmes/internal/store"
)

// appOptions controls how much of the application is started
type appOptions struct {
	configPath   string
	searchMode   string // overrides search.mode when set
	startSandbox bool
}

// app holds the wired services shared by every command
type app struct {
	cfg     *adapter.Config
	logger  *slog.Logger
	prefs   *store.PrefsStore
	sandbox *adapter.Sandbox
	library *service.LibraryService

	logCloser io.Closer
}

func newApp(opts appOptions) (*app, error) {
	// Load configuration
	var (
		cfg *adapter.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = adapter.LoadConfigFile(opts.configPath)
	} else {
		cfg, err = adapter.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.searchMode != "" {
		cfg.Search.Mode = opts.searchMode
	}

	a := &app{cfg: cfg}

	// Setup logger
	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	a.logger = logger
	a.logCloser = closer
	slog.SetDefault(logger)

	logger.Info("starting gmes", "version", Version)

	client, err := source.NewClient(cfg, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create catalog client: %w", err)
	}

	prefs, err := store.NewPrefsStore(cfg.Store.Path, logger)
	if err != nil {
		// Favorites still work for this session
		logger.Warn("favorites store unavailable, keeping favorites in memory", "path", cfg.Store.Path, "error", err)
		prefs, err = store.NewPrefsStore("", logger)
		if err != nil {
			a.Close()
			return nil, err
		}
	}
	a.prefs = prefs

	a.sandbox = adapter.NewSandbox(logger)
	if opts.startSandbox {
		if err := a.sandbox.Start(cfg.Sandbox.Addr); err != nil {
			a.Close()
			return nil, err
		}
	}

	launcher := adapter.NewLauncher(cfg.Browser, logger)

	a.library = service.NewLibraryService(
		service.NewCatalogService(client, logger),
		service.NewFavoritesService(prefs, logger),
		a.sandbox,
		logger,
		service.WithLauncher(launcher),
		service.WithSearchMode(service.ParseSearchMode(cfg.Search.Mode)),
	)
	return a, nil
}

// Close stops the sandbox and releases the store and log file
func (a *app) Close() {
	if a.sandbox != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := a.sandbox.Shutdown(ctx); err != nil {
			a.logger.Warn("sandbox shutdown failed", "error", err)
		}
		cancel()
	}
	if a.prefs != nil {
		if err := a.prefs.Close(); err != nil {
			a.logger.Warn("failed to close favorites store", "error", err)
		}
	}
	if a.logger != nil {
		a.logger.Info("shutting down")
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
