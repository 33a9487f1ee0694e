package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/accessible-web/alt-tagger/internal/providers"
)

const defaultURL = "https://api.openai.com/v1/chat/completions"

// OpenAI is a provider for OpenAI's vision-capable chat models.
type OpenAI struct {
	APIKey     string
	URL        string
	HTTPClient *http.Client
}

// New returns a new OpenAI provider using the given API key.
func New(apiKey string) *OpenAI {
	return &OpenAI{
		APIKey:     apiKey,
		URL:        defaultURL,
		HTTPClient: &http.Client{},
	}
}

// GenerateAltText asks the chat completions endpoint to describe the image.
// The image goes in as an image_url content part, so OpenAI fetches it
// directly and no local download is needed.
func (o *OpenAI) GenerateAltText(ctx context.Context, config providers.Config) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"model": config.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": providers.Prompt,
			},
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": providers.UserPrompt,
					},
					{
						"type": "image_url",
						"image_url": map[string]string{
							"url": config.ImageURL,
						},
					},
				},
			},
		},
		"max_tokens": config.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.URL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.APIKey)

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
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
