package source

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/mmcdole/gmes/internal/adapter"
	"github.com/mmcdole/gmes/internal/adapter/source/gnmath"
	"github.com/mmcdole/gmes/internal/domain"
)

// NewClient creates the catalog source described by the configuration
func NewClient(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	if cfg.Catalog.FeedURL == "" {
		return nil, fmt.Errorf("catalog feed URL is required")
	}

	opts := gnmath.MapOptions{
		HTMLBase:        cfg.Catalog.HTMLBase,
		CoverBase:       cfg.Catalog.CoverBase,
		NameReplacement: cfg.Catalog.NameReplacement,
	}
	if cfg.Catalog.NamePattern != "" {
		re, err := regexp.Compile(cfg.Catalog.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog.name_pattern: %w", err)
		}
		opts.NamePattern = re
	}

	return gnmath.NewClient(cfg.Catalog.FeedURL, opts, cfg.HTTP.Timeout, logger), nil
}
