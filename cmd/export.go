package cmd

import (
	"fmt"
	"strings"

	"github.com/accessible-web/alt-tagger/internal/report"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var input string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a results CSV to Parquet",
		Long: `Converts a results CSV produced by the tag command into a Parquet file,
for loading into analytics tooling or joining across runs.`,
		Example: `  # example.com.csv -> example.com.parquet
  alt-tagger export --input example.com.csv

  # Explicit output path
  alt-tagger export --input example.com.csv --output audits/latest.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = strings.TrimSuffix(input, ".csv") + ".parquet"
			}

			rows, err := report.ReadResults(input)
			if err != nil {
				return err
			}

			if err := report.WriteParquet(output, rows); err != nil {
				return err
			}

			fmt.Printf("Exported %d rows to %s\n", len(rows), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Results CSV to convert (required)")
	cmd.Flags().StringVar(&output, "output", "", "Output Parquet path (defaults to the input name with .parquet)")

	_ = cmd.MarkFlagRequired("input")
	return cmd
}
