package report

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSaveSummary(t *testing.T) {
	dir := t.TempDir()

	summary := &Summary{
		SiteURL:    "https://example.com",
		Provider:   "openai",
		Model:      "gpt-4o-mini",
		Mode:       "dry-run",
		OutputPath: "example.com.csv",
		Fetched:    120,
		Candidates: 14,
		Generated:  12,
		Failed:     2,
		Failures: []Failure{
			{ID: 7, URL: "https://example.com/7.jpg", Error: "received non-200 status code: 500"},
		},
	}

	path, err := SaveSummary(dir, summary)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error reading summary: %v", err)
	}

	var loaded Summary
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unexpected error unmarshaling summary: %v", err)
	}

	if loaded.Fetched != 120 || loaded.Failed != 2 {
		t.Errorf("Expected counts to round-trip, got %+v", loaded)
	}
	if len(loaded.Failures) != 1 || loaded.Failures[0].ID != 7 {
		t.Errorf("Expected failure details to round-trip, got %+v", loaded.Failures)
	}
	if loaded.Timestamp == "" {
		t.Error("Expected a timestamp to be stamped on save")
	}
}
