package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gmes/internal/domain"
)

// Favorite button labels for the open item
const (
	LabelFavorited = "★ Favorited"
	LabelFavorite  = "☆ Favorite"
)

// launcher abstracts opening the embedded view in a browser (consumer-defined interface)
type launcher interface {
	Open(url string) error
	Fullscreen(url string) error
}

// LibraryService owns all library state: the catalog, the filtered view,
// the favorites set and the viewer. It is not safe for concurrent use;
// every method is expected to run on the UI update loop.
type LibraryService struct {
	catalog   *CatalogService
	favorites *FavoritesService
	view      domain.EmbeddedView
	launcher  launcher
	notifier  domain.Notifier
	mode      SearchMode
	logger    *slog.Logger

	items    []domain.CatalogItem
	filtered []domain.CatalogItem
	term     string

	// Viewer
	state   domain.ViewerState
	current string // URL of the open item, empty when none
	title   string
	markup  string
	viewURL string

	// Request tokens; results carrying an older token are dropped
	loadToken uint64
	playToken uint64
}

// LibraryOption configures a LibraryService
type LibraryOption func(*LibraryService)

// WithLauncher opens the embedded view in a browser after it loads
func WithLauncher(l launcher) LibraryOption {
	return func(s *LibraryService) { s.launcher = l }
}

// WithNotifier sets the receiver of user-visible notifications
func WithNotifier(n domain.Notifier) LibraryOption {
	return func(s *LibraryService) { s.notifier = n }
}

// WithSearchMode sets the search matching mode
func WithSearchMode(mode SearchMode) LibraryOption {
	return func(s *LibraryService) { s.mode = mode }
}

// NewLibraryService creates a new library service in the grid state
func NewLibraryService(
	catalog *CatalogService,
	favorites *FavoritesService,
	view domain.EmbeddedView,
	logger *slog.Logger,
	opts ...LibraryOption,
) *LibraryService {
	if logger == nil {
		logger = slog.Default()
	}
	s := &LibraryService{
		catalog:   catalog,
		favorites: favorites,
		view:      view,
		mode:      SearchSubstring,
		logger:    logger,
		items:     []domain.CatalogItem{},
		filtered:  []domain.CatalogItem{},
		state:     domain.ViewerGrid,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetNotifier replaces the notification receiver
func (s *LibraryService) SetNotifier(n domain.Notifier) {
	s.notifier = n
}

// notify logs a notification and forwards it to the notifier
func (s *LibraryService) notify(level domain.NotificationLevel, msg string) {
	s.logger.Info("notification", "level", level, "message", msg)
	if s.notifier != nil {
		s.notifier.Notify(domain.Notification{Message: msg, Level: level})
	}
}

// === Catalog ===

// BeginLoad starts a catalog load and returns its token
func (s *LibraryService) BeginLoad() uint64 {
	s.loadToken++
	return s.loadToken
}

// FetchCatalog fetches the catalog; safe to call off the update loop
func (s *LibraryService) FetchCatalog(ctx context.Context) []domain.CatalogItem {
	return s.catalog.Load(ctx)
}

// ApplyCatalog replaces the catalog wholesale if token is the latest load.
// The active search term is re-applied to the new catalog.
func (s *LibraryService) ApplyCatalog(token uint64, items []domain.CatalogItem) bool {
	if token != s.loadToken {
		s.logger.Debug("dropping stale catalog", "token", token, "latest", s.loadToken)
		return false
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	s.items = items
	s.filtered = Filter(s.items, s.term, s.mode)
	return true
}

// LoadCatalog fetches and applies the catalog in one step
func (s *LibraryService) LoadCatalog(ctx context.Context) {
	token := s.BeginLoad()
	s.ApplyCatalog(token, s.FetchCatalog(ctx))
}

// Catalog returns the full catalog
func (s *LibraryService) Catalog() []domain.CatalogItem {
	return s.items
}

// === Search ===

// Search recomputes the filtered view for term
func (s *LibraryService) Search(term string) {
	s.term = term
	s.filtered = Filter(s.items, term, s.mode)
}

// Term returns the active search term
func (s *LibraryService) Term() string {
	return s.term
}

// Filtered returns the items matching the active term, in catalog order
func (s *LibraryService) Filtered() []domain.CatalogItem {
	return s.filtered
}

// Suggestion returns a close catalog name when the filtered view is empty
func (s *LibraryService) Suggestion() (string, bool) {
	if len(s.filtered) > 0 {
		return "", false
	}
	return Suggest(s.term, s.items)
}

// === Grid ===

// Rendered returns the filtered view with favorites first
func (s *LibraryService) Rendered() []domain.CatalogItem {
	return PartitionFavorites(s.filtered, s.favorites.Contains)
}

// === Favorites ===

// ToggleFavorite flips url's favorite state and persists it
func (s *LibraryService) ToggleFavorite(url, title string) (bool, error) {
	added, err := s.favorites.Toggle(url, title)
	if err != nil {
		s.notify(domain.NotifyWarning, "Could not save favorites")
	}
	return added, err
}

// ToggleCurrentFavorite flips the favorite state of the open item
func (s *LibraryService) ToggleCurrentFavorite() (bool, error) {
	if s.current == "" {
		return false, domain.ErrNoContent
	}
	return s.ToggleFavorite(s.current, s.title)
}

// IsFavorite reports whether url is a favorite
func (s *LibraryService) IsFavorite(url string) bool {
	return s.favorites.Contains(url)
}

// Favorites returns the favorites in insertion order
func (s *LibraryService) Favorites() []domain.FavoriteEntry {
	return s.favorites.All()
}

// FavoriteLabel returns the favorite button label for the open item,
// or an empty string when nothing is open
func (s *LibraryService) FavoriteLabel() string {
	if s.current == "" {
		return ""
	}
	if s.favorites.Contains(s.current) {
		return LabelFavorited
	}
	return LabelFavorite
}
