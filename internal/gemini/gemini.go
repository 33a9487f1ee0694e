package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/accessible-web/alt-tagger/internal/images"
	"github.com/accessible-web/alt-tagger/internal/providers"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Gemini is a provider for Google Gemini vision models.
type Gemini struct {
	APIKey  string
	Fetcher *images.Fetcher
}

// New returns a new Gemini provider using the given API key.
func New(apiKey string) *Gemini {
	return &Gemini{
		APIKey:  apiKey,
		Fetcher: images.NewFetcher(),
	}
}

// GenerateAltText downloads the image and sends it to Gemini with the alt
// text prompt. Gemini's API takes inline image bytes rather than a URL.
func (g *Gemini) GenerateAltText(ctx context.Context, config providers.Config) (string, error) {
	imageData, format, err := g.Fetcher.Fetch(ctx, config.ImageURL)
	if err != nil {
		return "", fmt.Errorf("failed to download image for gemini: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create new gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(config.Model)
	model.SetMaxOutputTokens(int32(config.MaxTokens))
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(providers.Prompt)},
	}

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(format, imageData),
		genai.Text(providers.UserPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	if txt, ok := candidate.Content.Parts[0].(genai.Text); ok {
		return strings.TrimSpace(string(txt)), nil
	}

	return "", fmt.Errorf("unexpected response format from Gemini")
}
