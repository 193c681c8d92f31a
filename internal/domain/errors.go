package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the remote catalog feed could not be fetched or parsed
	ErrCatalogUnavailable = errors.New("catalog feed is unavailable")

	// ErrContentUnavailable indicates an item's markup could not be fetched
	ErrContentUnavailable = errors.New("item content is unavailable")

	// ErrMissingURL indicates a play request carried no item URL
	ErrMissingURL = errors.New("item has no url")

	// ErrNoContent indicates the viewer has nothing loaded
	ErrNoContent = errors.New("no item is open")

	// ErrStaleRequest indicates a load result was superseded by a newer request
	ErrStaleRequest = errors.New("request superseded")
)
