package tui

import (
	"github.com/mmcdole/gmes/internal/domain"
)

// Message types for the TUI

// CatalogLoadedMsg carries a fetched catalog and the load it belongs to
type CatalogLoadedMsg struct {
	Token uint64
	Items []domain.CatalogItem
}

// ContentLoadedMsg carries an item's markup, or the error that prevented loading it
type ContentLoadedMsg struct {
	Token  uint64
	URL    string
	Name   string
	Markup string
	Err    error
}

// NotificationMsg delivers a user-visible notification from the services
type NotificationMsg struct {
	Notification domain.Notification
}

// ClearStatusMsg clears the status bar message if it is still the one shown
type ClearStatusMsg struct {
	ID int
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
