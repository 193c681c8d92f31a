package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/mmcdole/gmes/internal/tui/styles"
)

// Layout constants for the card grid
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Card interior width including its horizontal padding
	CardInnerWidth = 20
	CardWidth      = CardInnerWidth + BorderWidth
	// Two text lines plus the card border
	CardHeight = 2 + BorderHeight

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// EmptyText is shown when nothing matches
	EmptyText = "No gmes found"
	// LoadingText is shown while the catalog has not arrived yet
	LoadingText = "Loading gmes..."
)

// Grid renders catalog items as a grid of cards
type Grid struct {
	items      []domain.CatalogItem
	isFavorite func(url string) bool
	suggestion string
	loading    bool

	// Selection
	cursor    int
	offsetRow int

	// Dimensions
	width   int
	height  int
	columns int // configured column count, 0 sizes to width
	focused bool
}

// NewGrid creates a new grid; columns of 0 fits as many cards as the width allows
func NewGrid(columns int) Grid {
	if columns < 0 {
		columns = 0
	}
	return Grid{
		columns:    columns,
		isFavorite: func(string) bool { return false },
		focused:    true,
	}
}

// SetItems replaces the rendered items. The selection follows the
// previously selected URL when it is still present.
func (g *Grid) SetItems(items []domain.CatalogItem, isFavorite func(url string) bool) {
	var selectedURL string
	if sel, ok := g.Selected(); ok {
		selectedURL = sel.URL
	}

	g.items = items
	if isFavorite != nil {
		g.isFavorite = isFavorite
	}

	g.cursor = 0
	if selectedURL != "" {
		for i, item := range items {
			if item.URL == selectedURL {
				g.cursor = i
				break
			}
		}
	}
	g.ensureVisible()
}

// SetSuggestion sets the "did you mean" text shown when the grid is empty
func (g *Grid) SetSuggestion(s string) {
	g.suggestion = s
}

// SetLoading marks the catalog as still loading
func (g *Grid) SetLoading(loading bool) {
	g.loading = loading
}

// SetSize updates the component dimensions
func (g *Grid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *Grid) SetFocused(focused bool) {
	g.focused = focused
}

// IsFocused returns the focus state
func (g Grid) IsFocused() bool {
	return g.focused
}

// Len returns the number of items in the grid
func (g Grid) Len() int {
	return len(g.items)
}

// IsEmpty returns true if there are no items
func (g Grid) IsEmpty() bool {
	return len(g.items) == 0
}

// Cursor returns the current cursor position
func (g Grid) Cursor() int {
	return g.cursor
}

// SetCursor sets the cursor position, clamped to the items
func (g *Grid) SetCursor(pos int) {
	max := len(g.items) - 1
	if max < 0 {
		g.cursor = 0
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > max {
		pos = max
	}
	g.cursor = pos
	g.ensureVisible()
}

// Selected returns the item under the cursor
func (g Grid) Selected() (domain.CatalogItem, bool) {
	if g.cursor < 0 || g.cursor >= len(g.items) {
		return domain.CatalogItem{}, false
	}
	return g.items[g.cursor], true
}

// Columns returns the number of cards per row
func (g Grid) Columns() int {
	if g.columns > 0 {
		return g.columns
	}
	cols := (g.width - BorderWidth) / CardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// visibleRows returns how many card rows fit in the current height
func (g Grid) visibleRows() int {
	rows := (g.height - BorderHeight - ScrollIndicatorLines) / CardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g Grid) totalRows() int {
	cols := g.Columns()
	return (len(g.items) + cols - 1) / cols
}

// ensureVisible scrolls so the cursor row is on screen
func (g *Grid) ensureVisible() {
	if len(g.items) == 0 {
		g.cursor = 0
		g.offsetRow = 0
		return
	}
	if g.cursor >= len(g.items) {
		g.cursor = len(g.items) - 1
	}
	row := g.cursor / g.Columns()
	visible := g.visibleRows()
	if row < g.offsetRow {
		g.offsetRow = row
	}
	if row >= g.offsetRow+visible {
		g.offsetRow = row - visible + 1
	}
	if maxOffset := g.totalRows() - visible; g.offsetRow > maxOffset {
		g.offsetRow = max(maxOffset, 0)
	}
}

// Init initializes the component
func (g Grid) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys
func (g Grid) Update(msg tea.Msg) (Grid, tea.Cmd) {
	if !g.IsFocused() || g.IsEmpty() {
		return g, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	cols := g.Columns()
	count := len(g.items)
	page := g.visibleRows() * cols

	switch {
	case key.Matches(keyMsg, gridKeys.Left):
		if g.cursor > 0 {
			g.cursor--
		}
	case key.Matches(keyMsg, gridKeys.Right):
		if g.cursor < count-1 {
			g.cursor++
		}
	case key.Matches(keyMsg, gridKeys.Up):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case key.Matches(keyMsg, gridKeys.Down):
		if g.cursor+cols < count {
			g.cursor += cols
		} else if g.cursor/cols < (count-1)/cols {
			// Partial last row: land on its final card
			g.cursor = count - 1
		}
	case key.Matches(keyMsg, gridKeys.Home):
		g.cursor = 0
	case key.Matches(keyMsg, gridKeys.End):
		g.cursor = count - 1
	case key.Matches(keyMsg, gridKeys.PageUp):
		g.cursor -= page
		if g.cursor < 0 {
			g.cursor = 0
		}
	case key.Matches(keyMsg, gridKeys.PageDown):
		g.cursor += page
		if g.cursor >= count {
			g.cursor = count - 1
		}
	default:
		return g, nil
	}

	g.ensureVisible()
	return g, nil
}

// View renders the component
func (g Grid) View() string {
	style := styles.InactiveBorder
	if g.IsFocused() {
		style = styles.ActiveBorder
	}

	// Subtract frame (border) size so total rendered size equals g.width x g.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(g.width-frameW, 0)).
		Height(max(g.height-frameH, 0)).
		Render(g.renderCards())
}

// renderCards renders the visible rows of cards
func (g Grid) renderCards() string {
	if g.IsEmpty() {
		return g.renderEmpty()
	}

	cols := g.Columns()
	visible := g.visibleRows()
	end := min(g.offsetRow+visible, g.totalRows())

	var rows []string
	for row := g.offsetRow; row < end; row++ {
		var cards []string
		for col := 0; col < cols; col++ {
			i := row*cols + col
			if i >= len(g.items) {
				break
			}
			cards = append(cards, g.renderCard(g.items[i], i == g.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	// Reserve both indicator lines to prevent layout shifts
	header := " "
	if g.offsetRow > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < g.totalRows() {
		footer = styles.DimStyle.Render("↓ more")
	}

	return header + "\n" + strings.Join(rows, "\n") + "\n" + footer
}

// renderCard renders a single card: favorite star then the name
func (g Grid) renderCard(item domain.CatalogItem, selected bool) string {
	favorite := g.isFavorite(item.URL)

	star := styles.NotFavoriteStar
	if favorite {
		star = styles.FavoriteStar
	}

	style := styles.CardStyle
	titleStyle := styles.CardTitleStyle
	switch {
	case selected:
		style = styles.CardSelectedStyle
		titleStyle = styles.CardTitleSelectedStyle
	case favorite:
		style = styles.CardFavoriteStyle
	}

	textWidth := CardInnerWidth - 2
	name := styles.Truncate(item.GetTitle(), textWidth)

	return style.
		Width(CardInnerWidth).
		Render(star + "\n" + titleStyle.Render(styles.Pad(name, textWidth)))
}

// renderEmpty renders the placeholder for an empty result
func (g Grid) renderEmpty() string {
	if g.loading {
		return " \n" + styles.DimStyle.Render(LoadingText)
	}
	lines := []string{" ", styles.DimStyle.Render(EmptyText)}
	if g.suggestion != "" {
		lines = append(lines, styles.DimStyle.Render("Did you mean ")+
			styles.AccentStyle.Render(fmt.Sprintf("%q", g.suggestion))+
			styles.DimStyle.Render("?"))
	}
	return strings.Join(lines, "\n")
}
