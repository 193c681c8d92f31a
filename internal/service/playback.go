package service

import (
	"context"
	"fmt"

	"github.com/mmcdole/gmes/internal/domain"
)

const (
	defaultItemName  = "Gme"
	defaultItemTitle = "Unnamed Gme"
)

func displayName(name string) string {
	if name == "" {
		return defaultItemName
	}
	return name
}

// BeginPlay starts loading an item and returns the request token.
// A missing url is reported to the user and returns ErrMissingURL.
func (s *LibraryService) BeginPlay(url, name string) (uint64, error) {
	if url == "" {
		s.notify(domain.NotifyWarning, fmt.Sprintf("%s - files missing!", displayName(name)))
		return 0, domain.ErrMissingURL
	}
	s.playToken++
	s.logger.Info("loading item", "name", name, "url", url, "token", s.playToken)
	return s.playToken, nil
}

// FetchContent fetches an item's markup; safe to call off the update loop
func (s *LibraryService) FetchContent(ctx context.Context, url string) (string, error) {
	return s.catalog.FetchContent(ctx, url)
}

// FinishPlay applies the result of a load started with BeginPlay.
// Results for superseded tokens are dropped with ErrStaleRequest.
// On failure the user is notified and the viewer stays where it was.
func (s *LibraryService) FinishPlay(token uint64, url, name, markup string, loadErr error) error {
	if token != s.playToken {
		s.logger.Debug("dropping stale play result", "url", url, "token", token, "latest", s.playToken)
		return domain.ErrStaleRequest
	}

	if loadErr != nil {
		s.notify(domain.NotifyWarning, fmt.Sprintf("%s - failed to load game content.", displayName(name)))
		return fmt.Errorf("%w: %v", domain.ErrContentUnavailable, loadErr)
	}

	viewURL, err := s.view.Load(markup)
	if err != nil {
		s.notify(domain.NotifyWarning, fmt.Sprintf("%s - failed to load game content.", displayName(name)))
		return fmt.Errorf("loading embedded view: %w", err)
	}

	s.state = domain.ViewerPlaying
	s.current = url
	s.title = name
	if s.title == "" {
		s.title = defaultItemTitle
	}
	s.markup = markup
	s.viewURL = viewURL

	s.logger.Info("playing item", "title", s.title, "view", viewURL)
	s.openView()
	return nil
}

// Play loads an item and shows it, blocking until the fetch completes
func (s *LibraryService) Play(ctx context.Context, url, name string) error {
	token, err := s.BeginPlay(url, name)
	if err != nil {
		return err
	}
	markup, fetchErr := s.FetchContent(ctx, url)
	return s.FinishPlay(token, url, name, markup, fetchErr)
}

// Close returns to the grid and discards the embedded content.
// Any load still in flight is invalidated.
func (s *LibraryService) Close() {
	s.playToken++
	s.view.Clear()
	s.state = domain.ViewerGrid
	s.current = ""
	s.title = ""
	s.markup = ""
	s.viewURL = ""
	s.logger.Info("viewer closed")
}

// Refresh re-applies the open item's markup verbatim without refetching it
func (s *LibraryService) Refresh() error {
	if s.state != domain.ViewerPlaying {
		return domain.ErrNoContent
	}
	viewURL, err := s.view.Load(s.markup)
	if err != nil {
		return fmt.Errorf("reloading embedded view: %w", err)
	}
	s.viewURL = viewURL
	s.logger.Info("viewer refreshed", "view", viewURL)
	s.openView()
	return nil
}

// Fullscreen opens the embedded view in a fullscreen-capable browser
func (s *LibraryService) Fullscreen() error {
	if s.state != domain.ViewerPlaying {
		return domain.ErrNoContent
	}
	if s.launcher == nil {
		return nil
	}
	if err := s.launcher.Fullscreen(s.viewURL); err != nil {
		s.notify(domain.NotifyWarning, "Fullscreen is not available")
		return err
	}
	return nil
}

// OpenView reopens the embedded view in the browser
func (s *LibraryService) OpenView() error {
	if s.state != domain.ViewerPlaying {
		return domain.ErrNoContent
	}
	s.openView()
	return nil
}

func (s *LibraryService) openView() {
	if s.launcher == nil {
		return
	}
	if err := s.launcher.Open(s.viewURL); err != nil {
		s.logger.Warn("failed to open browser", "url", s.viewURL, "error", err)
		s.notify(domain.NotifyInfo, "Open "+s.viewURL+" in your browser")
	}
}

// State returns the viewer state
func (s *LibraryService) State() domain.ViewerState {
	return s.state
}

// Current returns the url and title of the open item
func (s *LibraryService) Current() (url, title string) {
	return s.current, s.title
}

// ViewURL returns the address the open item is served at
func (s *LibraryService) ViewURL() string {
	return s.viewURL
}

// Markup returns the open item's markup
func (s *LibraryService) Markup() string {
	return s.markup
}
