package report

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
)

// WriteParquet writes result rows to a Parquet file for downstream
// analytics tooling.
func WriteParquet(path string, rows []ResultRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}

	if err := parquet.Write(file, rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}
	return nil
}
