// Package strapi reads content from a WordPress REST API that serves ACF
// custom fields, addressed by numeric id. Records decode into the shared
// content types. The native Strapi v4 shapes below describe collection
// entries for sites that expose Strapi's own API; they are read-only views.
package strapi

import "github.com/olgasafonova/headless-cms-mcp-server/internal/content"

// Record types returned by the client
type (
	Post = content.Post
	Page = content.Page
	Term = content.Term
)

// Relation is Strapi's envelope for to-many relations
type Relation[T any] struct {
	Data []T `json:"data"`
}

// MediaFormat is one generated image rendition
type MediaFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// MediaFormats lists the renditions Strapi generates for an upload
type MediaFormats struct {
	Thumbnail *MediaFormat `json:"thumbnail,omitempty"`
	Small     *MediaFormat `json:"small,omitempty"`
	Medium    *MediaFormat `json:"medium,omitempty"`
	Large     *MediaFormat `json:"large,omitempty"`
}

// MediaAttributes holds an upload's metadata
type MediaAttributes struct {
	Name            string       `json:"name"`
	AlternativeText string       `json:"alternativeText"`
	Caption         string       `json:"caption"`
	Width           int          `json:"width"`
	Height          int          `json:"height"`
	Formats         MediaFormats `json:"formats"`
	URL             string       `json:"url"`
}

// MediaData is a single upload entry
type MediaData struct {
	ID         int             `json:"id"`
	Attributes MediaAttributes `json:"attributes"`
}

// Media is a single-media relation. Data is nil when nothing is attached.
type Media struct {
	Data *MediaData `json:"data"`
}

// TermAttributes is shared by categories and tags
type TermAttributes struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Category is a category entry
type Category struct {
	ID         int            `json:"id"`
	Attributes TermAttributes `json:"attributes"`
}

// Tag is a tag entry
type Tag struct {
	ID         int            `json:"id"`
	Attributes TermAttributes `json:"attributes"`
}

// AuthorAttributes holds an author's fields
type AuthorAttributes struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Author is an author entry
type Author struct {
	ID         int              `json:"id"`
	Attributes AuthorAttributes `json:"attributes"`
}

// AuthorRelation is a to-one author relation
type AuthorRelation struct {
	Data *Author `json:"data"`
}

// PostAttributes holds a post entry's fields
type PostAttributes struct {
	Title         string             `json:"title"`
	Content       string             `json:"content"`
	Excerpt       string             `json:"excerpt"`
	Slug          string             `json:"slug"`
	CreatedAt     string             `json:"createdAt"`
	UpdatedAt     string             `json:"updatedAt"`
	PublishedAt   string             `json:"publishedAt"`
	FeaturedImage Media              `json:"featuredImage"`
	Categories    Relation[Category] `json:"categories"`
	Tags          Relation[Tag]      `json:"tags"`
	Author        AuthorRelation     `json:"author"`
}

// PageAttributes holds a page entry's fields
type PageAttributes struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Slug          string `json:"slug"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	PublishedAt   string `json:"publishedAt"`
	FeaturedImage Media  `json:"featuredImage"`
}

// PostEntry is a native Strapi post. The Client fetches WordPress/ACF
// records; PostEntry and PageEntry are a typed view for callers holding
// Strapi v4 payloads (see "Decisions" in DESIGN.md).
type PostEntry struct {
	ID         int            `json:"id"`
	Attributes PostAttributes `json:"attributes"`
}

// PageEntry is a native Strapi page
type PageEntry struct {
	ID         int            `json:"id"`
	Attributes PageAttributes `json:"attributes"`
}

// URL returns the rendition's URL for format (thumbnail, small, medium or
// large), falling back to the original upload. Returns "" with no upload.
func (m *Media) URL(format string) string {
	if m == nil || m.Data == nil {
		return ""
	}
	f := m.Data.Attributes.Formats
	var r *MediaFormat
	switch format {
	case "thumbnail":
		r = f.Thumbnail
	case "small":
		r = f.Small
	case "medium":
		r = f.Medium
	case "large":
		r = f.Large
	}
	if r != nil && r.URL != "" {
		return r.URL
	}
	return m.Data.Attributes.URL
}

// AltText returns the upload's alternative text, or ""
func (m *Media) AltText() string {
	if m == nil || m.Data == nil {
		return ""
	}
	return m.Data.Attributes.AlternativeText
}

// FeaturedImage returns the original featured image URL, or ""
func (p *PostEntry) FeaturedImage() string {
	if p == nil {
		return ""
	}
	return p.Attributes.FeaturedImage.URL("")
}

// CategoryNames returns the names of the post's categories
func (p *PostEntry) CategoryNames() []string {
	if p == nil {
		return []string{}
	}
	names := make([]string, 0, len(p.Attributes.Categories.Data))
	for _, c := range p.Attributes.Categories.Data {
		names = append(names, c.Attributes.Name)
	}
	return names
}

// TagNames returns the names of the post's tags
func (p *PostEntry) TagNames() []string {
	if p == nil {
		return []string{}
	}
	names := make([]string, 0, len(p.Attributes.Tags.Data))
	for _, t := range p.Attributes.Tags.Data {
		names = append(names, t.Attributes.Name)
	}
	return names
}

// AuthorName returns the author's name, or ""
func (p *PostEntry) AuthorName() string {
	if p == nil || p.Attributes.Author.Data == nil {
		return ""
	}
	return p.Attributes.Author.Data.Attributes.Name
}

// FeaturedImage returns the original featured image URL, or ""
func (p *PageEntry) FeaturedImage() string {
	if p == nil {
		return ""
	}
	return p.Attributes.FeaturedImage.URL("")
}
