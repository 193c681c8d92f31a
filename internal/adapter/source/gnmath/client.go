package gnmath

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gmes/internal/domain"
)

const userAgent = "gmes/1.0"

// Client implements domain.CatalogSource against the gn-math CDN
type Client struct {
	feedURL    string
	mapOpts    MapOptions
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates a new catalog client. A zero timeout leaves requests unbounded.
func NewClient(feedURL string, opts MapOptions, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		feedURL: feedURL,
		mapOpts: opts,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
		now:    time.Now,
	}
}

// doRequest performs a GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("gnmath request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("gnmath request failed", "url", reqURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("gnmath request error", "url", reqURL, "status", resp.StatusCode)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// FetchZones returns the raw feed records
func (c *Client) FetchZones(ctx context.Context) ([]Zone, error) {
	u, err := url.Parse(c.feedURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid feed url: %v", domain.ErrCatalogUnavailable, err)
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	u.RawQuery = q.Encode()

	body, err := c.doRequest(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var zones []Zone
	if err := json.Unmarshal(body, &zones); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("%w: failed to parse feed: %v", domain.ErrCatalogUnavailable, err)
	}
	return zones, nil
}

// FetchCatalog returns the normalized catalog
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.CatalogItem, error) {
	zones, err := c.FetchZones(ctx)
	if err != nil {
		return nil, err
	}
	items := MapZones(zones, c.mapOpts, c.now())
	c.logger.Info("catalog fetched", "records", len(zones), "items", len(items))
	return items, nil
}

// FetchContent returns the raw markup served at an item URL
func (c *Client) FetchContent(ctx context.Context, itemURL string) (string, error) {
	if itemURL == "" {
		return "", domain.ErrMissingURL
	}
	body, err := c.doRequest(ctx, itemURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrContentUnavailable, err)
	}
	return string(body), nil
}
