package ollama

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/accessible-web/alt-tagger/internal/providers"
)

func TestGenerateAltText(t *testing.T) {
	imageBytes := []byte{0xff, 0xd8, 0xff, 0xe0}
	imageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(imageBytes)
	}))
	defer imageServer.Close()

	var captured struct {
		Model  string   `json:"model"`
		Images []string `json:"images"`
		Stream bool     `json:"stream"`
	}
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		fmt.Fprint(w, `{"response":"A close-up of a leaf\n"}`)
	}))
	defer apiServer.Close()

	provider := New(apiServer.URL)

	alt, err := provider.GenerateAltText(context.Background(), providers.Config{
		Model:     "llava",
		MaxTokens: 100,
		ImageURL:  imageServer.URL + "/leaf.jpg",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if alt != "A close-up of a leaf" {
		t.Errorf("Expected trimmed response, got %q", alt)
	}

	if captured.Model != "llava" {
		t.Errorf("Expected model llava, got %q", captured.Model)
	}
	if captured.Stream {
		t.Error("Expected non-streaming request")
	}
	if len(captured.Images) != 1 || captured.Images[0] != base64.StdEncoding.EncodeToString(imageBytes) {
		t.Error("Expected the downloaded image base64-encoded in the request")
	}
}

func TestGenerateAltTextImageFetchFailure(t *testing.T) {
	imageServer := httptest.NewServer(http.NotFoundHandler())
	defer imageServer.Close()

	provider := New("http://localhost:11434")
	_, err := provider.GenerateAltText(context.Background(), providers.Config{
		Model:    "llava",
		ImageURL: imageServer.URL + "/gone.jpg",
	})
	if err == nil {
		t.Error("Expected error when the image cannot be downloaded")
	}
}
