package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Mode controls whether generated alt text is written back to WordPress.
type Mode string

const (
	// ModeDryRun computes and records alt text without touching the site.
	ModeDryRun Mode = "dry-run"
	// ModeUpdate is the planned write-back mode. Alt text generation runs
	// the same way, but the write-back itself is not implemented yet and
	// is reported as unsupported rather than silently skipped.
	ModeUpdate Mode = "update"
)

// ParseMode validates a mode token from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDryRun, ModeUpdate:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("mode must be either 'dry-run' or 'update', got %q", s)
	}
}

// RunConfig is the full configuration for one tagging run. It is built once
// from command line input and environment, then threaded through the
// components; nothing reads the environment after startup.
type RunConfig struct {
	SiteURL    string
	Provider   string
	Model      string
	Mode       Mode
	Limit      int
	OutputPath string
	Match      string
	SummaryDir string
}

// Validate checks the fields that can only fail at runtime.
func (c *RunConfig) Validate() error {
	if c.SiteURL == "" {
		return fmt.Errorf("wordpress site URL is required")
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be zero or positive, got %d", c.Limit)
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// DefaultOutputPath derives the CSV filename from the site's hostname,
// e.g. https://example.com/blog -> example.com.csv.
func DefaultOutputPath(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Hostname() == "" {
		return "results.csv"
	}
	return u.Hostname() + ".csv"
}

// NormalizeOutputPath appends the .csv extension when the given name lacks it.
func NormalizeOutputPath(path string) string {
	if strings.HasSuffix(path, ".csv") {
		return path
	}
	return path + ".csv"
}

// DefaultModel returns the provider's default model, honoring the same
// environment overrides the provider services accept.
func DefaultModel(provider string) string {
	switch provider {
	case "openai":
		if model := os.Getenv("OPENAI_MODEL"); model != "" {
			return model
		}
		return "gpt-4o-mini"
	case "gemini":
		if model := os.Getenv("GEMINI_MODEL"); model != "" {
			return model
		}
		return "gemini-1.5-flash"
	case "ollama":
		if model := os.Getenv("OLLAMA_MODEL"); model != "" {
			return model
		}
		return "llava"
	default:
		return ""
	}
}

// Credentials holds what the generation providers need to authenticate.
// Resolved once at startup so a missing key halts the run before any I/O.
type Credentials struct {
	APIKey    string
	OllamaURL string
}

// ResolveCredentials reads the credential environment variables for the
// chosen provider. Ollama needs no key; its URL defaults to localhost.
func ResolveCredentials(provider string) (Credentials, error) {
	switch provider {
	case "openai":
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return Credentials{}, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return Credentials{APIKey: key}, nil
	case "gemini":
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return Credentials{}, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		return Credentials{APIKey: key}, nil
	case "ollama":
		ollamaURL := os.Getenv("OLLAMA_URL")
		if ollamaURL == "" {
			ollamaURL = "http://localhost:11434"
		}
		return Credentials{OllamaURL: ollamaURL}, nil
	default:
		return Credentials{}, fmt.Errorf("unsupported provider: %s", provider)
	}
}
