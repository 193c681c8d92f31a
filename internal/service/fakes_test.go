package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmcdole/gmes/internal/domain"
)

type fakeSource struct {
	items      []domain.CatalogItem
	catalogErr error
	content    map[string]string
	contentErr error
}

func (f *fakeSource) FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	return f.items, nil
}

func (f *fakeSource) FetchContent(ctx context.Context, url string) (string, error) {
	if f.contentErr != nil {
		return "", f.contentErr
	}
	markup, ok := f.content[url]
	if !ok {
		return "", fmt.Errorf("%w: 404", domain.ErrContentUnavailable)
	}
	return markup, nil
}

type memStore struct {
	entries []domain.FavoriteEntry
	saves   int
	saveErr error
}

func (m *memStore) LoadFavorites() []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *memStore) SaveFavorites(entries []domain.FavoriteEntry) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries = append([]domain.FavoriteEntry{}, entries...)
	return nil
}

func (m *memStore) Close() error { return nil }

type fakeView struct {
	loads   []string
	cleared int
	loadErr error
}

func (v *fakeView) Load(markup string) (string, error) {
	if v.loadErr != nil {
		return "", v.loadErr
	}
	v.loads = append(v.loads, markup)
	return fmt.Sprintf("http://sandbox.test/play/%d", len(v.loads)), nil
}

func (v *fakeView) Clear() { v.cleared++ }

type fakeLauncher struct {
	opened        []string
	fullscreened  []string
	fullscreenErr error
}

func (l *fakeLauncher) Open(url string) error {
	l.opened = append(l.opened, url)
	return nil
}

func (l *fakeLauncher) Fullscreen(url string) error {
	if l.fullscreenErr != nil {
		return l.fullscreenErr
	}
	l.fullscreened = append(l.fullscreened, url)
	return nil
}

type recorder struct {
	notes []domain.Notification
}

func (r *recorder) Notify(n domain.Notification) { r.notes = append(r.notes, n) }

var errNetwork = errors.New("dial tcp: connection refused")

// sampleCatalog is the two-item catalog used throughout the tests
func sampleCatalog() []domain.CatalogItem {
	return []domain.CatalogItem{
		{URL: "a", Name: "Foo"},
		{URL: "b", Name: "Bar"},
	}
}
