package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gmes/internal/domain"
)

// CatalogService loads the remote catalog and item markup
type CatalogService struct {
	source domain.CatalogSource
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(source domain.CatalogSource, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{
		source: source,
		logger: logger,
	}
}

// Load fetches the catalog. Failures degrade to an empty catalog and are only logged.
func (s *CatalogService) Load(ctx context.Context) []domain.CatalogItem {
	items, err := s.source.FetchCatalog(ctx)
	if err != nil {
		s.logger.Warn("catalog load failed, showing empty catalog", "error", err)
		return []domain.CatalogItem{}
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	return items
}

// FetchContent returns the raw markup for an item
func (s *CatalogService) FetchContent(ctx context.Context, url string) (string, error) {
	markup, err := s.source.FetchContent(ctx, url)
	if err != nil {
		s.logger.Error("content load failed", "url", url, "error", err)
		return "", err
	}
	s.logger.Debug("content loaded", "url", url, "bytes", len(markup))
	return markup, nil
}
