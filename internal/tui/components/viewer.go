package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gmes/internal/tui/styles"
)

// Viewer shows the item that is currently playing in the embedded view
type Viewer struct {
	title         string
	viewURL       string
	favoriteLabel string
	favorited     bool
	loading       bool

	width  int
	height int
}

// NewViewer creates an empty viewer
func NewViewer() Viewer {
	return Viewer{}
}

// SetItem sets the playing item's title and the address it is served at
func (v *Viewer) SetItem(title, viewURL string) {
	v.title = title
	v.viewURL = viewURL
}

// SetFavoriteLabel sets the favorite button text
func (v *Viewer) SetFavoriteLabel(label string, favorited bool) {
	v.favoriteLabel = label
	v.favorited = favorited
}

// SetLoading marks a newer item as loading behind the current one
func (v *Viewer) SetLoading(loading bool) {
	v.loading = loading
}

// SetSize updates the component dimensions
func (v *Viewer) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Title returns the displayed title
func (v Viewer) Title() string {
	return v.title
}

// FavoriteLabel returns the favorite button text
func (v Viewer) FavoriteLabel() string {
	return v.favoriteLabel
}

// View renders the component
func (v Viewer) View() string {
	frameW, frameH := styles.ViewerStyle.GetFrameSize()
	inner := max(v.width-frameW, 0)

	button := styles.ButtonStyle
	if v.favorited {
		button = styles.FavoritedButtonStyle
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.TitleStyle.Render(styles.Truncate(v.title, max(inner-lipgloss.Width(v.favoriteLabel)-4, 1))),
		"  ",
		button.Render(v.favoriteLabel),
	)

	lines := []string{
		header,
		"",
		styles.SubtitleStyle.Render("Playing in your browser at"),
		styles.AccentStyle.Render(styles.Truncate(v.viewURL, inner)),
		"",
		styles.DimStyle.Render("The page runs sandboxed and is removed when the viewer closes."),
	}
	if v.loading {
		lines = append(lines, "", styles.DimStyle.Render("Loading next gme..."))
	}

	return styles.ViewerStyle.
		Width(max(v.width-BorderWidth, 0)).
		Height(max(v.height-frameH, 0)).
		Render(strings.Join(lines, "\n"))
}
