package service

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mmcdole/gmes/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFilter_SubstringIgnoresCase(t *testing.T) {
	got := Filter(sampleCatalog(), "foo", SearchSubstring)
	assert.Equal(t, []domain.CatalogItem{{URL: "a", Name: "Foo"}}, got)

	got = Filter(sampleCatalog(), "AR", SearchSubstring)
	assert.Equal(t, []domain.CatalogItem{{URL: "b", Name: "Bar"}}, got)
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	items := sampleCatalog()
	got := Filter(items, "", SearchSubstring)
	assert.Equal(t, items, got)

	got[0].Name = "mutated"
	assert.Equal(t, "Foo", items[0].Name, "result must not alias the catalog")
}

func TestFilter_ExactSubsetAndIdempotent(t *testing.T) {
	items := []domain.CatalogItem{
		{URL: "1", Name: "Slope"},
		{URL: "2", Name: "Retro Bowl"},
		{URL: "3", Name: "slow roads"},
		{URL: "4", Name: "Cookie Clicker"},
		{URL: "5", Name: "BLOONS"},
		{URL: "6", Name: ""},
	}
	for _, term := range []string{"", "s", "SLO", "o", "bowl", "zzz", "oo", " "} {
		got := Filter(items, term, SearchSubstring)

		var want []domain.CatalogItem
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), strings.ToLower(term)) {
				want = append(want, it)
			}
		}
		if want == nil {
			want = []domain.CatalogItem{}
		}
		assert.Equal(t, want, got, "term=%q", term)
		assert.Equal(t, got, Filter(got, term, SearchSubstring), "filtering twice, term=%q", term)
	}
}

func TestFilter_FuzzyKeepsCatalogOrder(t *testing.T) {
	items := []domain.CatalogItem{
		{URL: "1", Name: "Retro Bowl"},
		{URL: "2", Name: "Slope"},
		{URL: "3", Name: "Super Mario Bros"},
	}
	got := Filter(items, "rb", SearchFuzzy)
	assert.Equal(t, []domain.CatalogItem{items[0], items[2]}, got)

	assert.Empty(t, Filter(items, "xyz", SearchFuzzy))
}

func TestParseSearchMode(t *testing.T) {
	assert.Equal(t, SearchFuzzy, ParseSearchMode(" Fuzzy "))
	assert.Equal(t, SearchSubstring, ParseSearchMode("substring"))
	assert.Equal(t, SearchSubstring, ParseSearchMode(""))
	assert.Equal(t, SearchSubstring, ParseSearchMode("regex"))
}

func TestPartitionFavorites_Scenario(t *testing.T) {
	favs := map[string]bool{"b": true}
	got := PartitionFavorites(sampleCatalog(), func(url string) bool { return favs[url] })

	assert.Equal(t, []string{"Bar", "Foo"}, names(got))
}

func TestPartitionFavorites_StableForRandomSubsets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := make([]domain.CatalogItem, 30)
	for i := range items {
		items[i] = domain.CatalogItem{URL: string(rune('A' + i)), Name: string(rune('a' + i))}
	}

	for round := 0; round < 50; round++ {
		favs := map[string]bool{}
		for _, it := range items {
			if rng.Intn(3) == 0 {
				favs[it.URL] = true
			}
		}
		got := PartitionFavorites(items, func(url string) bool { return favs[url] })
		assert.Len(t, got, len(items))

		// Favorites strictly precede non-favorites
		seenNonFav := false
		for _, it := range got {
			if !favs[it.URL] {
				seenNonFav = true
			} else {
				assert.False(t, seenNonFav, "favorite %s after a non-favorite", it.URL)
			}
		}

		// Relative order within each group matches the input
		var wantFav, wantRest []domain.CatalogItem
		for _, it := range items {
			if favs[it.URL] {
				wantFav = append(wantFav, it)
			} else {
				wantRest = append(wantRest, it)
			}
		}
		assert.Equal(t, append(wantFav, wantRest...), got)
	}
}

func TestSuggest(t *testing.T) {
	items := []domain.CatalogItem{
		{URL: "1", Name: "Minecraft"},
		{URL: "2", Name: "Slope"},
	}

	got, ok := Suggest("mncrft", items)
	assert.True(t, ok)
	assert.Equal(t, "Minecraft", got)

	got, ok = Suggest("slpoe", items)
	assert.True(t, ok)
	assert.Equal(t, "Slope", got)

	_, ok = Suggest("completely different", items)
	assert.False(t, ok)

	_, ok = Suggest("", items)
	assert.False(t, ok)
}

func names(items []domain.CatalogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
