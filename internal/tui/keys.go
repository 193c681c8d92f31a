package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	// Actions
	Quit       key.Binding
	Help       key.Binding
	Escape     key.Binding
	Search     key.Binding
	Favorite   key.Binding
	Close      key.Binding
	Refresh    key.Binding
	Fullscreen key.Binding
	Open       key.Binding
	CopyURL    key.Binding
	Reload     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "favorite"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc/c", "close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open in browser"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy url"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload catalog"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// gridHelp lists the bindings shown in the footer while browsing
type gridHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (h gridHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Search, h.Enter, h.Favorite, h.CopyURL, h.Help}
}

// FullHelp implements help.KeyMap
func (h gridHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Up, h.Down, h.Left, h.Right},
		{h.Search, h.Enter, h.Favorite, h.CopyURL},
		{h.Reload, h.Help, h.Quit},
	}
}

// viewerHelp lists the bindings shown in the footer while playing
type viewerHelp struct{ KeyMap }

// ShortHelp implements help.KeyMap
func (h viewerHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Favorite, h.Refresh, h.Fullscreen, h.Close, h.Help}
}

// FullHelp implements help.KeyMap
func (h viewerHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.Favorite, h.Refresh, h.Fullscreen},
		{h.Open, h.CopyURL, h.Close},
		{h.Help, h.Quit},
	}
}
