package gnmath

import (
	"regexp"
	"testing"
	"time"

	"github.com/mmcdole/gmes/internal/domain"
	"github.com/stretchr/testify/assert"
)

var testOpts = MapOptions{
	HTMLBase:        "https://html.test",
	CoverBase:       "https://covers.test",
	NamePattern:     regexp.MustCompile("(?i)game"),
	NameReplacement: "gme",
}

func TestMapZones_DropsSentinel(t *testing.T) {
	zones := []Zone{
		{ID: -1, Name: "Suggest a game", URL: "{HTML_URL}/suggest.html", Cover: "{COVER_URL}/s.png"},
		{ID: 0, Name: "Snake", URL: "{HTML_URL}/0.html", Cover: "{COVER_URL}/0.png"},
		{ID: 1, Name: "Tetris", URL: "{HTML_URL}/1.html", Cover: "{COVER_URL}/1.png"},
	}

	items := MapZones(zones, testOpts, time.UnixMilli(1700000000000))

	assert.Len(t, items, 2)
	for _, it := range items {
		assert.NotContains(t, it.Name, "Suggest")
	}
}

func TestMapZones_ResolvesPlaceholders(t *testing.T) {
	zones := []Zone{{ID: 7, Name: "Game of Games", URL: "{HTML_URL}/7.html", Cover: "{COVER_URL}/7.png"}}

	items := MapZones(zones, testOpts, time.UnixMilli(42))

	assert.Equal(t, []domain.CatalogItem{{
		URL:   "https://html.test/7.html?t=42",
		Name:  "gme of gmes",
		Cover: "https://covers.test/7.png",
	}}, items)
}

func TestMapZones_NoPatternKeepsName(t *testing.T) {
	opts := testOpts
	opts.NamePattern = nil

	items := MapZones([]Zone{{ID: 1, Name: "Game", URL: "/x.html?v=2"}}, opts, time.UnixMilli(5))

	assert.Equal(t, "Game", items[0].Name)
	assert.Equal(t, "https://html.test/x.html?v=2&t=5", items[0].URL)
}

func TestMapZones_Empty(t *testing.T) {
	items := MapZones(nil, testOpts, time.Now())
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
