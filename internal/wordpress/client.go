package wordpress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// perPage is the maximum page size the WordPress REST API allows.
const perPage = 100

// ErrUpdateUnsupported is returned by UpdateAltText until write-back lands.
// Callers should surface it so update mode is never mistaken for a no-op.
var ErrUpdateUnsupported = errors.New("alt text write-back is not implemented yet")

// Client talks to a WordPress site's REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given site URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchMedia pages through the media listing endpoint and returns the items
// in listing order. It stops on an empty page, or once limit items have been
// collected (limit 0 means unbounded). A non-success HTTP status stops
// pagination early and keeps the partial result; only transport failures are
// returned as errors, alongside whatever was collected before them.
func (c *Client) FetchMedia(ctx context.Context, limit int) ([]MediaItem, error) {
	endpoint := c.BaseURL + "/wp-json/wp/v2/media"

	var media []MediaItem
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("per_page", strconv.Itoa(perPage))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return media, fmt.Errorf("failed to create media request: %w", err)
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return media, fmt.Errorf("failed to fetch media page %d: %w", page, err)
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			// Partial result, not fatal. WordPress answers 400 past the
			// last page, so this is also the normal end of pagination on
			// sites that report exact page counts.
			slog.Warn("Media endpoint returned non-success status, stopping pagination",
				"status", resp.StatusCode, "page", page, "collected", len(media))
			return media, nil
		}

		var items []MediaItem
		err = json.NewDecoder(resp.Body).Decode(&items)
		resp.Body.Close()
		if err != nil {
			return media, fmt.Errorf("failed to decode media page %d: %w", page, err)
		}

		if len(items) == 0 {
			return media, nil
		}

		media = append(media, items...)

		if limit > 0 && len(media) >= limit {
			return media[:limit], nil
		}
	}
}

// UpdateAltText is the planned write-back to POST /wp-json/wp/v2/media/{id}.
// It requires authentication handling that does not exist yet, so for now it
// always reports ErrUpdateUnsupported.
func (c *Client) UpdateAltText(ctx context.Context, id int, altText string) error {
	return ErrUpdateUnsupported
}
