package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const embeddedPostJSON = `{
	"id": 7,
	"slug": "hello-world",
	"date": "2024-01-05T09:30:00",
	"title": {"rendered": "Hello World"},
	"content": {"rendered": "<p>Body</p>"},
	"excerpt": {"rendered": "<p>Excerpt</p>"},
	"_embedded": {
		"wp:featuredmedia": [
			{"id": 11, "source_url": "https://cdn.example.com/hero.jpg"},
			{"id": 12, "source_url": "https://cdn.example.com/second.jpg"}
		],
		"author": [{"id": 1, "name": "Ada"}],
		"wp:term": [
			[
				{"id": 2, "name": "News", "slug": "news", "taxonomy": "category"},
				{"id": 3, "name": "Stray", "slug": "stray", "taxonomy": "post_tag"}
			],
			[
				{"id": 4, "name": "go", "slug": "go", "taxonomy": "post_tag"},
				{"id": 5, "name": "Misfiled", "slug": "misfiled", "taxonomy": "category"}
			]
		]
	}
}`

func decodePost(t *testing.T, raw string) *Post {
	t.Helper()
	var p Post
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func TestFeaturedImage(t *testing.T) {
	tests := []struct {
		name string
		post *Post
		want string
	}{
		{"first media entry", decodePost(t, embeddedPostJSON), "https://cdn.example.com/hero.jpg"},
		{"no embedded block", &Post{ID: 1}, ""},
		{"empty media array", &Post{Embedded: &Embedded{FeaturedMedia: []Media{}}}, ""},
		{"nil post", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.post.FeaturedImage())
		})
	}
}

func TestPageFeaturedImage(t *testing.T) {
	page := &Page{Embedded: &Embedded{FeaturedMedia: []Media{{SourceURL: "https://cdn.example.com/page.png"}}}}
	assert.Equal(t, "https://cdn.example.com/page.png", page.FeaturedImage())

	var missing *Page
	assert.Empty(t, missing.FeaturedImage())
	assert.Empty(t, (&Page{}).FeaturedImage())
}

func TestCategoriesAndTags(t *testing.T) {
	post := decodePost(t, embeddedPostJSON)

	categories := Categories(post)
	require.Len(t, categories, 1)
	assert.Equal(t, "News", categories[0].Name)

	tags := Tags(post)
	require.Len(t, tags, 1)
	assert.Equal(t, "go", tags[0].Name)
}

func TestCategoriesAndTags_MissingSlots(t *testing.T) {
	tests := []struct {
		name string
		post *Post
	}{
		{"nil post", nil},
		{"no embedded", &Post{}},
		{"no term groups", &Post{Embedded: &Embedded{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := Categories(tt.post)
			tags := Tags(tt.post)
			assert.NotNil(t, categories)
			assert.NotNil(t, tags)
			assert.Empty(t, categories)
			assert.Empty(t, tags)
		})
	}
}

func TestTags_OnlyCategorySlotPresent(t *testing.T) {
	post := &Post{Embedded: &Embedded{Terms: [][]Term{
		{{ID: 1, Name: "News", Taxonomy: TaxonomyCategory}},
	}}}

	assert.Len(t, Categories(post), 1)
	assert.Empty(t, Tags(post))
}

func TestTermSlot(t *testing.T) {
	e := &Embedded{Terms: [][]Term{{{ID: 1}}, {{ID: 2}}}}

	assert.Equal(t, 1, e.TermSlot(CategoryTermSlot)[0].ID)
	assert.Equal(t, 2, e.TermSlot(TagTermSlot)[0].ID)
	assert.Nil(t, e.TermSlot(2))
	assert.Nil(t, e.TermSlot(-1))

	var nilEmbedded *Embedded
	assert.Nil(t, nilEmbedded.TermSlot(0))
}

func TestPrimaryAuthor(t *testing.T) {
	post := decodePost(t, embeddedPostJSON)
	author := post.Embedded.PrimaryAuthor()
	require.NotNil(t, author)
	assert.Equal(t, "Ada", author.Name)

	assert.Nil(t, (&Embedded{}).PrimaryAuthor())
}

func TestTermNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, TermNames([]Term{{Name: "a"}, {Name: "b"}}))
	assert.Equal(t, []string{}, TermNames(nil))
}
