package service

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/sahilm/fuzzy"
)

// SearchMode selects how the search term is matched against names
type SearchMode string

const (
	// SearchSubstring matches names containing the term, ignoring case
	SearchSubstring SearchMode = "substring"
	// SearchFuzzy matches names containing the term's characters in order
	SearchFuzzy SearchMode = "fuzzy"
)

// ParseSearchMode maps a config value to a SearchMode, defaulting to substring
func ParseSearchMode(s string) SearchMode {
	if strings.EqualFold(strings.TrimSpace(s), string(SearchFuzzy)) {
		return SearchFuzzy
	}
	return SearchSubstring
}

// nameIndex implements sahilm/fuzzy.Source over lowercase names
type nameIndex struct {
	lowerNames []string
}

// String returns the lowercase name at index i (implements fuzzy.Source)
func (idx nameIndex) String(i int) string { return idx.lowerNames[i] }

// Len returns the number of names (implements fuzzy.Source)
func (idx nameIndex) Len() int { return len(idx.lowerNames) }

func newNameIndex(items []domain.CatalogItem) nameIndex {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = strings.ToLower(it.Name)
	}
	return nameIndex{lowerNames: names}
}

// Filter returns the items matching term, in catalog order.
// An empty term returns every item.
func Filter(items []domain.CatalogItem, term string, mode SearchMode) []domain.CatalogItem {
	if term == "" {
		out := make([]domain.CatalogItem, len(items))
		copy(out, items)
		return out
	}

	if mode == SearchFuzzy {
		return fuzzyFilter(items, term)
	}

	out := make([]domain.CatalogItem, 0, len(items))
	for _, it := range items {
		if it.MatchesTerm(term) {
			out = append(out, it)
		}
	}
	return out
}

// fuzzyFilter keeps catalog order rather than score order so results stay a stable subset
func fuzzyFilter(items []domain.CatalogItem, term string) []domain.CatalogItem {
	matches := fuzzy.FindFrom(strings.ToLower(term), newNameIndex(items))

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	sort.Ints(idx)

	out := make([]domain.CatalogItem, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// PartitionFavorites returns items with favorites first.
// The partition is stable: relative order inside each group is preserved.
func PartitionFavorites(items []domain.CatalogItem, isFavorite func(url string) bool) []domain.CatalogItem {
	out := make([]domain.CatalogItem, 0, len(items))
	for _, it := range items {
		if isFavorite(it.URL) {
			out = append(out, it)
		}
	}
	for _, it := range items {
		if !isFavorite(it.URL) {
			out = append(out, it)
		}
	}
	return out
}

// Suggest returns the catalog name closest to term, for empty results.
// Subsequence matches win; otherwise the nearest name by edit distance within a small budget.
func Suggest(term string, items []domain.CatalogItem) (string, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" || len(items) == 0 {
		return "", false
	}

	names := newNameIndex(items).lowerNames

	if ranks := lfuzzy.RankFindFold(term, names); len(ranks) > 0 {
		sort.Sort(ranks)
		return items[ranks[0].OriginalIndex].Name, true
	}

	budget := len(term) / 3
	if budget < 2 {
		budget = 2
	}

	best, bestDist := -1, budget+1
	for i, name := range names {
		if d := lfuzzy.LevenshteinDistance(term, name); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return "", false
	}
	return items[best].Name, true
}
