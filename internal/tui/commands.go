package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/gmes/internal/domain"
	"github.com/mmcdole/gmes/internal/service"
)

// Command factories for async operations

// LoadCatalogCmd fetches the catalog for the load identified by token.
// Failures degrade to an empty catalog inside the service.
func LoadCatalogCmd(svc *service.LibraryService, token uint64) tea.Cmd {
	return func() tea.Msg {
		items := svc.FetchCatalog(context.Background())
		return CatalogLoadedMsg{Token: token, Items: items}
	}
}

// LoadContentCmd fetches an item's markup for the play identified by token
func LoadContentCmd(svc *service.LibraryService, token uint64, url, name string) tea.Cmd {
	return func() tea.Msg {
		markup, err := svc.FetchContent(context.Background(), url)
		return ContentLoadedMsg{
			Token:  token,
			URL:    url,
			Name:   name,
			Markup: markup,
			Err:    err,
		}
	}
}

// WaitForNotificationCmd reads the next notification from the channel
func WaitForNotificationCmd(ch <-chan domain.Notification) tea.Cmd {
	return func() tea.Msg {
		note, ok := <-ch
		if !ok {
			return nil
		}
		return NotificationMsg{Notification: note}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}
