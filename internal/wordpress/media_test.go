package wordpress

import (
	"reflect"
	"testing"
)

func TestMissingAltText(t *testing.T) {
	tests := []struct {
		name string
		item MediaItem
		keep bool
	}{
		{
			name: "image without alt text",
			item: MediaItem{ID: 1, MediaType: "image", AltText: ""},
			keep: true,
		},
		{
			name: "image with alt text",
			item: MediaItem{ID: 2, MediaType: "image", AltText: "x"},
			keep: false,
		},
		{
			name: "non-image without alt text",
			item: MediaItem{ID: 3, MediaType: "file", AltText: ""},
			keep: false,
		},
		{
			name: "non-image with alt text",
			item: MediaItem{ID: 4, MediaType: "file", AltText: "x"},
			keep: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingAltText([]MediaItem{tt.item})
			if tt.keep && len(got) != 1 {
				t.Errorf("Expected item %d to be kept", tt.item.ID)
			}
			if !tt.keep && len(got) != 0 {
				t.Errorf("Expected item %d to be excluded", tt.item.ID)
			}
		})
	}
}

func TestMissingAltTextPreservesOrder(t *testing.T) {
	items := []MediaItem{
		{ID: 3, MediaType: "image"},
		{ID: 1, MediaType: "image", AltText: "described"},
		{ID: 2, MediaType: "image"},
		{ID: 9, MediaType: "video"},
		{ID: 5, MediaType: "image"},
	}

	got := MissingAltText(items)

	var ids []int
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	want := []int{3, 2, 5}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Expected order %v, got %v", want, ids)
	}
}

func TestMissingAltTextIdempotent(t *testing.T) {
	items := []MediaItem{
		{ID: 1, MediaType: "image"},
		{ID: 2, MediaType: "image", AltText: "x"},
		{ID: 3, MediaType: "file"},
	}

	once := MissingAltText(items)
	twice := MissingAltText(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected filter to be idempotent, got %v then %v", once, twice)
	}
}
