package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alt-tagger",
		Short: "WordPress alt text generator powered by vision LLMs",
		Long: `Alt-tagger scans a WordPress site's media library for images that are
missing alt text and generates descriptions for them with a vision-capable LLM.

Results are written to a CSV file for review. By default nothing is changed on
the WordPress site (dry-run); writing alt text back is a planned capability.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newTagCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
