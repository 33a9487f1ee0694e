package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// header is the fixed column layout of a results file.
var header = []string{"id", "title", "original_alt", "generated_alt", "url"}

// ResultRow is one processed media item. GeneratedAlt is empty when
// generation failed for that item; the run summary carries the error.
type ResultRow struct {
	ID           int    `parquet:"id"`
	Title        string `parquet:"title"`
	OriginalAlt  string `parquet:"original_alt"`
	GeneratedAlt string `parquet:"generated_alt"`
	URL          string `parquet:"url"`
}

// Writer streams result rows to a CSV file in processing order.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

// NewWriter creates (or overwrites) the output file and writes the header.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := &Writer{
		file: file,
		csv:  csv.NewWriter(file),
	}
	if err := w.csv.Write(header); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return w, nil
}

// WriteRow appends one result row.
func (w *Writer) WriteRow(row ResultRow) error {
	record := []string{
		strconv.Itoa(row.ID),
		row.Title,
		row.OriginalAlt,
		row.GeneratedAlt,
		row.URL,
	}
	if err := w.csv.Write(record); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return w.file.Close()
}

// ReadResults loads a results CSV back into rows, e.g. for the export
// command. The header row is validated by position count only.
func ReadResults(path string) ([]ResultRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("results file is empty")
	}

	rows := make([]ResultRow, 0, len(records)-1)
	for i, record := range records[1:] {
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d has a non-numeric id %q: %w", i+1, record[0], err)
		}
		rows = append(rows, ResultRow{
			ID:           id,
			Title:        record[1],
			OriginalAlt:  record[2],
			GeneratedAlt: record[3],
			URL:          record[4],
		})
	}
	return rows, nil
}
