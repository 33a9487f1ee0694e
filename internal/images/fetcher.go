package images

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// Fetcher downloads image bytes for providers that cannot take a URL directly.
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new image fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads an image and returns its bytes and normalized format
// ("jpeg", "png", ...) derived from the Content-Type header.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("image response was empty")
	}

	return data, formatFromContentType(resp.Header.Get("Content-Type")), nil
}

func formatFromContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "jpeg"
	}
	format := strings.TrimPrefix(mediaType, "image/")
	if format == "jpg" {
		return "jpeg"
	}
	return format
}
