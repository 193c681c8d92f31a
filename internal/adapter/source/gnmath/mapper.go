package gnmath

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gmes/internal/domain"
)

// MapOptions controls how feed records are resolved into catalog items
type MapOptions struct {
	HTMLBase        string
	CoverBase       string
	NamePattern     *regexp.Regexp // nil leaves names untouched
	NameReplacement string
}

// MapZones converts feed records to catalog items, dropping the sentinel.
// now stamps each item URL with a cache-busting t parameter.
func MapZones(zones []Zone, opts MapOptions, now time.Time) []domain.CatalogItem {
	stamp := strconv.FormatInt(now.UnixMilli(), 10)

	items := make([]domain.CatalogItem, 0, len(zones))
	for _, z := range zones {
		if z.ID == SentinelID {
			continue
		}
		items = append(items, mapZone(z, opts, stamp))
	}
	return items
}

func mapZone(z Zone, opts MapOptions, stamp string) domain.CatalogItem {
	name := z.Name
	if opts.NamePattern != nil {
		name = opts.NamePattern.ReplaceAllLiteralString(name, opts.NameReplacement)
	}

	return domain.CatalogItem{
		URL:   withCacheBuster(opts.HTMLBase+strings.Replace(z.URL, htmlPlaceholder, "", 1), stamp),
		Name:  name,
		Cover: strings.Replace(z.Cover, coverPlaceholder, opts.CoverBase, 1),
	}
}

// withCacheBuster appends t=stamp to a URL's query string
func withCacheBuster(rawURL, stamp string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "t=" + stamp
}
