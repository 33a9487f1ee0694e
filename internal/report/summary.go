package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Failure records one item whose alt text generation failed.
type Failure struct {
	ID    int    `yaml:"id"`
	URL   string `yaml:"url"`
	Error string `yaml:"error"`
}

// Summary describes one tagging run: the configuration it ran with and
// what happened to each stage of the pipeline.
type Summary struct {
	SiteURL    string    `yaml:"site_url"`
	Provider   string    `yaml:"provider"`
	Model      string    `yaml:"model"`
	Mode       string    `yaml:"mode"`
	OutputPath string    `yaml:"output_path"`
	Timestamp  string    `yaml:"timestamp"`
	Fetched    int       `yaml:"fetched"`
	Candidates int       `yaml:"candidates"`
	Generated  int       `yaml:"generated"`
	Failed     int       `yaml:"failed"`
	Failures   []Failure `yaml:"failures,omitempty"`
}

// SaveSummary writes the run summary as YAML into dir, named by timestamp.
func SaveSummary(dir string, summary *Summary) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create summary directory: %w", err)
	}

	if summary.Timestamp == "" {
		summary.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}
	path := filepath.Join(dir, fmt.Sprintf("run_%s.yaml", summary.Timestamp))

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write summary file: %w", err)
	}
	return path, nil
}
