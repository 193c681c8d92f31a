package domain

import "context"

// CatalogSource fetches the remote catalog and per-item markup
type CatalogSource interface {
	// FetchCatalog returns the normalized catalog, sentinel records excluded
	FetchCatalog(ctx context.Context) ([]CatalogItem, error)

	// FetchContent returns the raw markup for a resolved item URL
	FetchContent(ctx context.Context, url string) (string, error)
}

// EmbeddedView is the isolated surface that displays item markup
type EmbeddedView interface {
	// Load replaces the displayed document and returns the address it is served at
	Load(markup string) (string, error)

	// Clear removes the displayed document entirely
	Clear()
}

// Notifier receives user-visible notifications
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }
