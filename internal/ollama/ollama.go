package ollama

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/accessible-web/alt-tagger/internal/images"
	"github.com/accessible-web/alt-tagger/internal/providers"
)

// Ollama is a provider for locally hosted vision models.
type Ollama struct {
	BaseURL    string
	Fetcher    *images.Fetcher
	HTTPClient *http.Client
}

// New returns a new Ollama provider for the given server URL.
func New(baseURL string) *Ollama {
	return &Ollama{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Fetcher:    images.NewFetcher(),
		HTTPClient: &http.Client{},
	}
}

// GenerateAltText downloads the image and sends it base64-encoded to the
// Ollama generate endpoint, non-streaming.
func (o *Ollama) GenerateAltText(ctx context.Context, config providers.Config) (string, error) {
	imageData, _, err := o.Fetcher.Fetch(ctx, config.ImageURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image for ollama: %w", err)
	}

	requestBody, err := json.Marshal(map[string]interface{}{
		"model":  config.Model,
		"system": providers.Prompt,
		"prompt": providers.UserPrompt,
		"images": []string{base64.StdEncoding.EncodeToString(imageData)},
		"stream": false,
		"options": map[string]interface{}{
			"num_predict": config.MaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.BaseURL+"/api/generate", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(body))
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	return strings.TrimSpace(response.Response), nil
}
