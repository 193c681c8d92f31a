package components

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []domain.CatalogItem {
	out := make([]domain.CatalogItem, n)
	for i := range out {
		out[i] = domain.CatalogItem{URL: fmt.Sprintf("u%d", i), Name: fmt.Sprintf("Gme %d", i)}
	}
	return out
}

func press(g Grid, k string) Grid {
	var msg tea.KeyMsg
	switch k {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	g, _ = g.Update(msg)
	return g
}

func TestGrid_Columns(t *testing.T) {
	g := NewGrid(0)
	g.SetSize(BorderWidth+CardWidth*3+5, 40)
	assert.Equal(t, 3, g.Columns())

	g.SetSize(4, 40)
	assert.Equal(t, 1, g.Columns(), "never fewer than one column")

	fixed := NewGrid(5)
	fixed.SetSize(40, 40)
	assert.Equal(t, 5, fixed.Columns())
}

func TestGrid_Navigation(t *testing.T) {
	g := NewGrid(3)
	g.SetSize(100, 40)
	g.SetItems(items(7), nil)

	g = press(g, "l")
	assert.Equal(t, 1, g.Cursor())

	g = press(g, "j")
	assert.Equal(t, 4, g.Cursor())

	// Row below is partial: land on the last card
	g = press(g, "down")
	assert.Equal(t, 6, g.Cursor())

	g = press(g, "k")
	assert.Equal(t, 3, g.Cursor())

	g = press(g, "G")
	assert.Equal(t, 6, g.Cursor())

	g = press(g, "g")
	assert.Equal(t, 0, g.Cursor())

	g = press(g, "h")
	assert.Equal(t, 0, g.Cursor(), "cursor stops at the first card")
}

func TestGrid_SelectionFollowsURL(t *testing.T) {
	g := NewGrid(2)
	g.SetSize(100, 40)
	g.SetItems(items(3), nil)
	g.SetCursor(2)

	reordered := items(3)
	reordered[0], reordered[2] = reordered[2], reordered[0]
	g.SetItems(reordered, nil)

	sel, ok := g.Selected()
	require.True(t, ok)
	assert.Equal(t, "u2", sel.URL)
	assert.Equal(t, 0, g.Cursor())

	g.SetItems(items(1)[:0], nil)
	_, ok = g.Selected()
	assert.False(t, ok)
}

func TestGrid_ScrollsToCursor(t *testing.T) {
	g := NewGrid(1)
	// Room for exactly two card rows
	g.SetSize(40, BorderHeight+ScrollIndicatorLines+CardHeight*2)
	g.SetItems(items(5), nil)

	g = press(g, "G")
	assert.Equal(t, 3, g.offsetRow)
	assert.Contains(t, g.View(), "↑ more")
	assert.NotContains(t, g.View(), "↓ more")

	g = press(g, "g")
	assert.Equal(t, 0, g.offsetRow)
	assert.Contains(t, g.View(), "↓ more")
}

func TestGrid_ViewShowsFavorites(t *testing.T) {
	g := NewGrid(0)
	g.SetSize(100, 20)
	g.SetItems(items(2), func(url string) bool { return url == "u1" })

	view := g.View()
	assert.Contains(t, view, "Gme 0")
	assert.Contains(t, view, "Gme 1")
	assert.Contains(t, view, "★")
	assert.Contains(t, view, "☆")
}

func TestGrid_EmptyPlaceholder(t *testing.T) {
	g := NewGrid(0)
	g.SetSize(80, 20)

	assert.Contains(t, g.View(), EmptyText)
	assert.NotContains(t, g.View(), "Did you mean")

	g.SetSuggestion("Foo")
	assert.Contains(t, g.View(), "Did you mean")
	assert.Contains(t, g.View(), `"Foo"`)
}

func TestGrid_UnfocusedIgnoresKeys(t *testing.T) {
	g := NewGrid(2)
	g.SetSize(100, 40)
	g.SetItems(items(4), nil)
	g.SetFocused(false)

	g = press(g, "l")
	assert.Equal(t, 0, g.Cursor())
}

func TestGrid_LoadingPlaceholder(t *testing.T) {
	g := NewGrid(0)
	g.SetSize(80, 20)
	g.SetLoading(true)
	g.SetSuggestion("Foo")

	assert.Contains(t, g.View(), LoadingText)
	assert.NotContains(t, g.View(), EmptyText)
	assert.NotContains(t, g.View(), "Did you mean")

	g.SetLoading(false)
	assert.Contains(t, g.View(), EmptyText)
}
