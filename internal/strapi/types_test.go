package strapi

import (
	"encoding/json"
	"testing"
)

const entryFixture = `{
	"id": 1,
	"attributes": {
		"title": "Hello",
		"slug": "hello",
		"publishedAt": "2024-01-05T10:00:00.000Z",
		"featuredImage": {
			"data": {
				"id": 9,
				"attributes": {
					"name": "hero.jpg",
					"alternativeText": "A hero",
					"url": "/uploads/hero.jpg",
					"formats": {
						"small": {"url": "/uploads/small_hero.jpg"},
						"large": {"url": "/uploads/large_hero.jpg"}
					}
				}
			}
		},
		"categories": {"data": [{"id": 2, "attributes": {"name": "News", "slug": "news"}}]},
		"tags": {"data": []},
		"author": {"data": {"id": 3, "attributes": {"name": "Ada", "email": "ada@example.com"}}}
	}
}`

func TestPostEntry(t *testing.T) {
	var entry PostEntry
	if err := json.Unmarshal([]byte(entryFixture), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got := entry.FeaturedImage(); got != "/uploads/hero.jpg" {
		t.Errorf("FeaturedImage = %q", got)
	}
	media := &entry.Attributes.FeaturedImage
	if got := media.URL("large"); got != "/uploads/large_hero.jpg" {
		t.Errorf("URL(large) = %q", got)
	}
	if got := media.URL("medium"); got != "/uploads/hero.jpg" {
		t.Errorf("URL(medium) should fall back to the original, got %q", got)
	}
	if got := media.AltText(); got != "A hero" {
		t.Errorf("AltText = %q", got)
	}
	if got := entry.CategoryNames(); len(got) != 1 || got[0] != "News" {
		t.Errorf("CategoryNames = %v", got)
	}
	if got := entry.TagNames(); got == nil || len(got) != 0 {
		t.Errorf("TagNames = %v, want empty slice", got)
	}
	if got := entry.AuthorName(); got != "Ada" {
		t.Errorf("AuthorName = %q", got)
	}
	if got := FormatDate(entry.Attributes.PublishedAt); got != "January 5, 2024" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestPostEntry_MissingRelations(t *testing.T) {
	var entry PostEntry
	if err := json.Unmarshal([]byte(`{"id": 1, "attributes": {"title": "Bare", "featuredImage": {"data": null}, "author": {"data": null}}}`), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if entry.FeaturedImage() != "" {
		t.Error("expected empty featured image")
	}
	if entry.AuthorName() != "" {
		t.Error("expected empty author")
	}
	if got := entry.CategoryNames(); got == nil || len(got) != 0 {
		t.Errorf("CategoryNames = %v", got)
	}

	var nilEntry *PostEntry
	if nilEntry.FeaturedImage() != "" || nilEntry.AuthorName() != "" {
		t.Error("nil entry accessors should return empty strings")
	}
	var page *PageEntry
	if page.FeaturedImage() != "" {
		t.Error("nil page accessor should return empty string")
	}
}
