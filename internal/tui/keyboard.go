package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gmes/internal/domain"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle state-specific keys
	switch m.State {
	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateSearching:
		return m.handleSearchKey(msg)
	}

	if m.Library.State() == domain.ViewerPlaying {
		return m.handleViewerKey(msg)
	}
	return m.handleGridKey(msg)
}

// handleSearchKey routes typing to the search input and re-filters live
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Search.SetValue("")
		m.Search.Blur()
		m.State = StateBrowsing
		m.Library.Search("")
		m.refreshGrid()
		return m, nil
	case tea.KeyEnter:
		// Accept the term, blur input to allow navigation
		m.Search.Blur()
		m.State = StateBrowsing
		m.refreshGrid()
		return m, nil
	}

	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if term := m.Search.Value(); term != m.Library.Term() {
		m.Library.Search(term)
		m.refreshGrid()
	}
	return m, cmd
}

// handleGridKey handles keys while browsing the grid
func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.State = StateSearching
		m.Grid.SetFocused(false)
		return m, m.Search.Focus()

	case key.Matches(msg, Keys.Escape):
		// Clear active search if any
		if m.Library.Term() != "" {
			m.Search.SetValue("")
			m.Library.Search("")
			m.refreshGrid()
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if item, ok := m.Grid.Selected(); ok {
			return m, m.play(item)
		}
		return m, nil

	case key.Matches(msg, Keys.Favorite):
		if item, ok := m.Grid.Selected(); ok {
			_, _ = m.Library.ToggleFavorite(item.URL, item.Name)
			m.refreshGrid()
		}
		return m, nil

	case key.Matches(msg, Keys.CopyURL):
		if item, ok := m.Grid.Selected(); ok {
			return m, m.copyURL(item.URL)
		}
		return m, nil

	case key.Matches(msg, Keys.Reload):
		return m, m.startCatalogLoad()
	}

	var cmd tea.Cmd
	m.Grid, cmd = m.Grid.Update(msg)
	return m, cmd
}

// handleViewerKey handles keys while an item is playing
func (m Model) handleViewerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp

	case key.Matches(msg, Keys.Close):
		m.Library.Close()
		m.LoadingContent = false
		m.refreshGrid()

	case key.Matches(msg, Keys.Favorite):
		_, _ = m.Library.ToggleCurrentFavorite()
		m.refreshGrid()

	case key.Matches(msg, Keys.Refresh):
		_ = m.Library.Refresh()
		m.syncViewer()

	case key.Matches(msg, Keys.Fullscreen):
		_ = m.Library.Fullscreen()

	case key.Matches(msg, Keys.Open):
		_ = m.Library.OpenView()

	case key.Matches(msg, Keys.CopyURL):
		return m, m.copyURL(m.Library.ViewURL())
	}
	return m, nil
}
