package tagger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/accessible-web/alt-tagger/internal/config"
	"github.com/accessible-web/alt-tagger/internal/gemini"
	"github.com/accessible-web/alt-tagger/internal/ollama"
	"github.com/accessible-web/alt-tagger/internal/openai"
	"github.com/accessible-web/alt-tagger/internal/providers"
	"github.com/accessible-web/alt-tagger/internal/report"
	"github.com/accessible-web/alt-tagger/internal/wordpress"
	"github.com/bmatcuk/doublestar/v4"
)

// maxAltTokens caps the completion so providers stay terse.
const maxAltTokens = 100

// NewProvider builds the generation provider named in the config.
func NewProvider(name string, creds config.Credentials) (providers.Provider, error) {
	switch name {
	case "openai":
		return openai.New(creds.APIKey), nil
	case "gemini":
		return gemini.New(creds.APIKey), nil
	case "ollama":
		return ollama.New(creds.OllamaURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
}

// Service runs one tagging pass: fetch media, select images missing alt
// text, generate descriptions, write the results CSV.
type Service struct {
	Config   *config.RunConfig
	WP       *wordpress.Client
	Provider providers.Provider
}

// NewService wires a tagging run from its parts.
func NewService(cfg *config.RunConfig, wp *wordpress.Client, provider providers.Provider) *Service {
	return &Service{
		Config:   cfg,
		WP:       wp,
		Provider: provider,
	}
}

// Run executes the pass and returns a summary of what happened. Generation
// failures are per-item: they leave an empty generated_alt cell and are
// itemized in the summary, but never stop the loop. Only configuration and
// output-file errors are fatal.
func (s *Service) Run(ctx context.Context) (*report.Summary, error) {
	cfg := s.Config

	summary := &report.Summary{
		SiteURL:    cfg.SiteURL,
		Provider:   cfg.Provider,
		Model:      cfg.Model,
		Mode:       string(cfg.Mode),
		OutputPath: cfg.OutputPath,
	}

	slog.Info("Fetching media items", "site", cfg.SiteURL, "limit", cfg.Limit)
	items, err := s.WP.FetchMedia(ctx, cfg.Limit)
	if err != nil {
		// Keep the partial result, matching the non-success-status case.
		slog.Warn("Media fetch ended early", "collected", len(items), "error", err)
	}
	summary.Fetched = len(items)

	missing := wordpress.MissingAltText(items)
	if cfg.Match != "" {
		missing, err = matchMedia(missing, cfg.Match)
		if err != nil {
			return nil, err
		}
	}
	summary.Candidates = len(missing)
	slog.Info("Found images missing alt text", "count", len(missing))

	writer, err := report.NewWriter(cfg.OutputPath)
	if err != nil {
		return nil, err
	}

	warnedUpdate := false
	for _, item := range missing {
		slog.Info("Processing image", "id", item.ID, "url", item.SourceURL)

		altText, err := s.Provider.GenerateAltText(ctx, providers.Config{
			Model:     cfg.Model,
			MaxTokens: maxAltTokens,
			ImageURL:  item.SourceURL,
		})
		if err != nil {
			slog.Error("Failed to generate alt text", "id", item.ID, "error", err)
			summary.Failed++
			summary.Failures = append(summary.Failures, report.Failure{
				ID:    item.ID,
				URL:   item.SourceURL,
				Error: err.Error(),
			})
			altText = ""
		} else {
			summary.Generated++
		}

		row := report.ResultRow{
			ID:           item.ID,
			Title:        item.Title.Rendered,
			OriginalAlt:  item.AltText,
			GeneratedAlt: altText,
			URL:          item.SourceURL,
		}
		if err := writer.WriteRow(row); err != nil {
			writer.Close()
			return nil, err
		}

		if cfg.Mode == config.ModeUpdate && altText != "" {
			if err := s.WP.UpdateAltText(ctx, item.ID, altText); err != nil {
				if errors.Is(err, wordpress.ErrUpdateUnsupported) {
					if !warnedUpdate {
						slog.Warn("Update mode requested but write-back is not implemented; results are recorded in the CSV only")
						warnedUpdate = true
					}
				} else {
					slog.Error("Failed to update alt text", "id", item.ID, "error", err)
				}
			}
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}
	return summary, nil
}

// matchMedia keeps items whose media file path matches the doublestar
// pattern, e.g. "**/*.png" or "2024/**".
func matchMedia(items []wordpress.MediaItem, pattern string) ([]wordpress.MediaItem, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid match pattern: %s", pattern)
	}

	var matched []wordpress.MediaItem
	for _, item := range items {
		ok, err := doublestar.Match(pattern, mediaPath(item.SourceURL))
		if err != nil {
			return nil, fmt.Errorf("failed to match pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func mediaPath(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return sourceURL
	}
	return strings.TrimPrefix(u.Path, "/")
}
