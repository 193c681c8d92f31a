package domain

import "strings"

// CatalogItem is a playable entry in the game catalog
type CatalogItem struct {
	URL   string `json:"url"`   // Resolved markup URL
	Name  string `json:"name"`  // Display name
	Cover string `json:"cover"` // Resolved cover image URL
}

// GetTitle returns the display name
func (c CatalogItem) GetTitle() string {
	return c.Name
}

// MatchesTerm reports whether the name contains term, ignoring case.
// An empty term matches everything.
func (c CatalogItem) MatchesTerm(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term))
}

// FavoriteEntry is a user-marked item, unique by URL
type FavoriteEntry struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
