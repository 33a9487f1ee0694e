package wordpress

// RenderedText unwraps WordPress's {"rendered": "..."} field shape.
type RenderedText struct {
	Rendered string `json:"rendered"`
}

// MediaItem is one entry from the wp/v2/media listing. Read-only; the
// tagger never mutates items it fetched.
type MediaItem struct {
	ID        int          `json:"id"`
	Title     RenderedText `json:"title"`
	MediaType string       `json:"media_type"`
	AltText   string       `json:"alt_text"`
	SourceURL string       `json:"source_url"`
}

// MissingAltText keeps only image items whose alt text is empty. WordPress
// serializes a never-set alt_text as an empty string, so absent and empty
// are the same case here. Order-preserving.
func MissingAltText(items []MediaItem) []MediaItem {
	var missing []MediaItem
	for _, item := range items {
		if item.MediaType == "image" && item.AltText == "" {
			missing = append(missing, item)
		}
	}
	return missing
}
