package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/mmcdole/gmes/internal/service"
	"github.com/mmcdole/gmes/internal/tui/components"
	"github.com/mmcdole/gmes/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateSearching
	StateHelp
)

// Layout
const (
	// Search bar on top, footer on the bottom
	ChromeHeight = 2
	// The viewer keeps only the footer
	FooterHeight = 1

	statusTimeout = 4 * time.Second
	notifyBuffer  = 16
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Library *service.LibraryService

	// UI Components
	Grid    components.Grid
	Viewer  components.Viewer
	Search  textinput.Model
	Spinner spinner.Model
	Help    help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg      string
	StatusIsErr    bool
	statusID       int
	LoadingCatalog bool
	LoadingContent bool

	notes chan domain.Notification
}

// NewModel creates a new application model. gridColumns of 0 sizes the
// grid to the terminal width.
func NewModel(library *service.LibraryService, gridColumns int) Model {
	ti := textinput.New()
	ti.Placeholder = "Search gmes..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.SearchPromptStyle
	ti.TextStyle = styles.SearchStyle
	ti.PlaceholderStyle = styles.SearchPlaceholderStyle

	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{
			Frames: styles.SpinnerFrames,
			FPS:    100 * time.Millisecond,
		}),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	notes := make(chan domain.Notification, notifyBuffer)
	library.SetNotifier(NewChannelNotifier(notes))

	m := Model{
		State:          StateBrowsing,
		Library:        library,
		Grid:           components.NewGrid(gridColumns),
		Viewer:         components.NewViewer(),
		Search:         ti,
		Spinner:        sp,
		Help:           help.New(),
		LoadingCatalog: true,
		notes:          notes,
	}
	m.refreshGrid()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.Library, m.Library.BeginLoad()),
		WaitForNotificationCmd(m.notes),
		m.Spinner.Tick,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		if !m.Library.ApplyCatalog(msg.Token, msg.Items) {
			return m, nil
		}
		m.LoadingCatalog = false
		m.refreshGrid()
		return m, nil

	case ContentLoadedMsg:
		err := m.Library.FinishPlay(msg.Token, msg.URL, msg.Name, msg.Markup, msg.Err)
		if errors.Is(err, domain.ErrStaleRequest) {
			return m, nil
		}
		m.LoadingContent = false
		if m.Library.State() == domain.ViewerPlaying && m.State == StateSearching {
			m.Search.Blur()
			m.State = StateBrowsing
		}
		m.syncViewer()
		return m, nil

	case NotificationMsg:
		cmd := m.setStatus(msg.Notification.Message, msg.Notification.Level == domain.NotifyWarning)
		return m, tea.Batch(cmd, WaitForNotificationCmd(m.notes))

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		if msg.ID == m.statusID {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// setStatus shows a status message and schedules its removal
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusID++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusID, statusTimeout)
}

// startCatalogLoad begins a fresh catalog load; older loads are dropped when they land
func (m *Model) startCatalogLoad() tea.Cmd {
	m.LoadingCatalog = true
	m.Grid.SetLoading(true)
	return LoadCatalogCmd(m.Library, m.Library.BeginLoad())
}

// play begins loading an item; a missing URL is reported by the service
func (m *Model) play(item domain.CatalogItem) tea.Cmd {
	token, err := m.Library.BeginPlay(item.URL, item.Name)
	if err != nil {
		return nil
	}
	m.LoadingContent = true
	m.Viewer.SetLoading(m.Library.State() == domain.ViewerPlaying)
	return LoadContentCmd(m.Library, token, item.URL, item.Name)
}

// copyURL writes url to the system clipboard
func (m *Model) copyURL(url string) tea.Cmd {
	if url == "" {
		return nil
	}
	if err := writeClipboard(url); err != nil {
		return m.setStatus("Could not copy to clipboard", true)
	}
	return m.setStatus("Copied "+url, false)
}

// refreshGrid re-renders the grid from the service: favorites first, then
// the rest, both in catalog order. The viewer's favorite label is
// re-synchronized after every render.
func (m *Model) refreshGrid() {
	m.Grid.SetLoading(m.LoadingCatalog)
	m.Grid.SetItems(m.Library.Rendered(), m.Library.IsFavorite)
	suggestion, _ := m.Library.Suggestion()
	m.Grid.SetSuggestion(suggestion)
	m.syncViewer()
}

// syncViewer copies the open item's state into the viewer component
func (m *Model) syncViewer() {
	_, title := m.Library.Current()
	m.Viewer.SetItem(title, m.Library.ViewURL())
	m.Viewer.SetFavoriteLabel(m.Library.FavoriteLabel(), m.Library.FavoriteLabel() == service.LabelFavorited)
	m.Viewer.SetLoading(m.LoadingContent && m.Library.State() == domain.ViewerPlaying)
	m.Grid.SetFocused(m.Library.State() == domain.ViewerGrid && m.State != StateSearching)
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	// The viewer replaces the search bar and grid
	if m.Library.State() == domain.ViewerPlaying {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.Viewer.View(),
			m.renderFooter(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearchBar(),
		m.Grid.View(),
		m.renderFooter(),
	)
}

// renderSearchBar renders the search input with a match count
func (m Model) renderSearchBar() string {
	bar := m.Search.View()
	if m.Library.Term() != "" {
		bar += styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", len(m.Library.Filtered()), len(m.Library.Catalog())))
	}
	return bar
}

// renderFooter renders the status line and key hints
func (m Model) renderFooter() string {
	// Left side: spinner + status when loading or status message active
	var left string
	switch {
	case m.StatusMsg != "":
		if m.StatusIsErr {
			left = styles.WarningStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	case m.LoadingContent:
		left = m.Spinner.View() + " " + styles.DimStyle.Render("Loading gme...")
	case m.LoadingCatalog:
		left = m.Spinner.View() + " " + styles.DimStyle.Render("Loading catalog...")
	}

	var right string
	if m.Library.State() == domain.ViewerPlaying {
		right = m.Help.ShortHelpView(viewerHelp{Keys}.ShortHelp())
	} else {
		right = m.Help.ShortHelpView(gridHelp{Keys}.ShortHelp())
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Not enough space - drop the hints
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	h := m.Help
	h.ShowAll = true

	body := styles.TitleStyle.Render("BROWSING") + "\n" +
		h.View(gridHelp{Keys}) + "\n\n" +
		styles.TitleStyle.Render("PLAYING") + "\n" +
		h.View(viewerHelp{Keys}) + "\n\n" +
		styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(body))
}
