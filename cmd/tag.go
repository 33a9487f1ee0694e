package cmd

import (
	"fmt"
	"strconv"

	"github.com/accessible-web/alt-tagger/internal/config"
	"github.com/accessible-web/alt-tagger/internal/report"
	"github.com/accessible-web/alt-tagger/internal/tagger"
	"github.com/accessible-web/alt-tagger/internal/wordpress"
	"github.com/spf13/cobra"
)

func newTagCmd() *cobra.Command {
	var (
		provider   string
		model      string
		write      bool
		limit      int
		output     string
		match      string
		summaryDir string
	)

	cmd := &cobra.Command{
		Use:   "tag <url> [model] [dry-run|update] [limit]",
		Short: "Generate alt text for images that are missing it",
		Long: `Fetches the media library of a WordPress site, selects images whose alt
text is empty, and generates a one-line description for each with a
vision-capable LLM. Results are written to a CSV file for review.

Positional arguments after the URL (model, mode, limit) are accepted for
compatibility with the flag-less invocation style; flags cover the same
options plus the output path.

The limit defaults to 10 images; pass 0 to process the whole library. The
output file defaults to <hostname>.csv.`,
		Example: `  # Dry run over the first 10 images, results in example.com.csv
  alt-tagger tag https://example.com

  # Positional form: model, mode, and limit
  alt-tagger tag https://example.com gpt-4o update 20

  # Flag form: all images, custom output, only PNG uploads
  alt-tagger tag https://example.com -l 0 -o audit --match '**/*.png'

  # Use a local model via Ollama
  alt-tagger tag https://example.com --provider ollama -m llava`,
		Args: cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.RunConfig{
				SiteURL:    args[0],
				Provider:   provider,
				Model:      model,
				Mode:       config.ModeDryRun,
				Limit:      limit,
				OutputPath: output,
				Match:      match,
				SummaryDir: summaryDir,
			}
			if write {
				cfg.Mode = config.ModeUpdate
			}

			// Positional form overrides the flag defaults.
			if len(args) > 1 {
				cfg.Model = args[1]
			}
			if len(args) > 2 {
				mode, err := config.ParseMode(args[2])
				if err != nil {
					return err
				}
				cfg.Mode = mode
			}
			if len(args) > 3 {
				n, err := strconv.Atoi(args[3])
				if err != nil {
					return fmt.Errorf("limit must be an integer, got %q", args[3])
				}
				cfg.Limit = n
			}

			if cfg.Model == "" {
				cfg.Model = config.DefaultModel(cfg.Provider)
			}
			if cfg.OutputPath == "" {
				cfg.OutputPath = config.DefaultOutputPath(cfg.SiteURL)
			} else {
				cfg.OutputPath = config.NormalizeOutputPath(cfg.OutputPath)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// Resolve credentials before any network I/O so a missing key
			// halts the whole run up front.
			creds, err := config.ResolveCredentials(cfg.Provider)
			if err != nil {
				return err
			}

			generator, err := tagger.NewProvider(cfg.Provider, creds)
			if err != nil {
				return err
			}

			service := tagger.NewService(cfg, wordpress.NewClient(cfg.SiteURL), generator)
			summary, err := service.Run(cmd.Context())
			if err != nil {
				return err
			}

			printSummary(summary)

			if cfg.SummaryDir != "" {
				path, err := report.SaveSummary(cfg.SummaryDir, summary)
				if err != nil {
					return err
				}
				fmt.Printf("Run summary saved to: %s\n", path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&provider, "provider", "openai", "LLM provider (openai, gemini, or ollama)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (defaults to the provider's default)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Update mode: write generated alt text back to WordPress (not implemented yet)")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of images to process (0 for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV path (defaults to <hostname>.csv)")
	cmd.Flags().StringVar(&match, "match", "", "Only process media whose file path matches this glob, e.g. '**/*.png'")
	cmd.Flags().StringVar(&summaryDir, "summary-dir", "", "Also write a YAML run summary into this directory")

	return cmd
}

func printSummary(summary *report.Summary) {
	fmt.Println("\n========================================")
	fmt.Println("Tagging Summary")
	fmt.Println("========================================")
	fmt.Printf("Media items fetched:   %d\n", summary.Fetched)
	fmt.Printf("Images missing alt:    %d\n", summary.Candidates)
	fmt.Printf("Alt text generated:    %d\n", summary.Generated)
	fmt.Printf("Generation failures:   %d\n", summary.Failed)
	fmt.Println("========================================")
	fmt.Printf("\nResults written to: %s\n", summary.OutputPath)
}
