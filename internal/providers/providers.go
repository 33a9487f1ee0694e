package providers

import (
	"context"
)

// Config represents one alt text generation request.
type Config struct {
	Model     string
	MaxTokens int
	ImageURL  string
}

// Provider defines the interface for a vision LLM provider.
type Provider interface {
	GenerateAltText(ctx context.Context, config Config) (string, error)
}

// Prompt is the fixed system instruction shared by all providers.
const Prompt = "You are an expert at writing descriptive, concise alt text for images. " +
	"Provide only the alt text, without any additional explanation or context. " +
	"If the image is decorative, return 'Decorative image' with a brief description of the image. " +
	"Be concise. You don't need to write complete sentences. The output should be a single line of text."

// UserPrompt is the text part that accompanies the image in the user turn.
const UserPrompt = "Please write appropriate alt text for this image:"
