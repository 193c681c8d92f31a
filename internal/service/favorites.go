package service

import (
	"log/slog"

	"github.com/mmcdole/gmes/internal/domain"
)

// FavoritesService manages the favorites set, persisting every mutation
type FavoritesService struct {
	store   domain.FavoritesStore
	entries []domain.FavoriteEntry
	logger  *slog.Logger
}

// NewFavoritesService loads the stored favorites once
func NewFavoritesService(store domain.FavoritesStore, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	entries := store.LoadFavorites()
	logger.Debug("favorites loaded", "count", len(entries))
	return &FavoritesService{
		store:   store,
		entries: entries,
		logger:  logger,
	}
}

// Toggle adds the url if absent or removes it if present, then persists.
// It reports whether the url is a favorite afterwards.
func (s *FavoritesService) Toggle(url, title string) (bool, error) {
	added := false
	if i := s.indexOf(url); i >= 0 {
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	} else {
		s.entries = append(s.entries, domain.FavoriteEntry{URL: url, Title: title})
		added = true
	}

	if err := s.store.SaveFavorites(s.entries); err != nil {
		s.logger.Error("failed to persist favorites", "error", err)
		return added, err
	}
	s.logger.Info("favorite toggled", "url", url, "favorite", added)
	return added, nil
}

// Contains reports whether url is a favorite
func (s *FavoritesService) Contains(url string) bool {
	return s.indexOf(url) >= 0
}

// All returns a copy of the favorites in insertion order
func (s *FavoritesService) All() []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *FavoritesService) indexOf(url string) int {
	for i, f := range s.entries {
		if f.URL == url {
			return i
		}
	}
	return -1
}
