package domain

// FavoritesStore persists the favorites list.
// Load never fails on bad data: a missing or malformed value yields an empty list.
type FavoritesStore interface {
	LoadFavorites() []FavoriteEntry
	SaveFavorites(entries []FavoriteEntry) error
	Close() error
}
