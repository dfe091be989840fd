// Package content implements a generic WordPress REST fetcher and the pure
// extractors that turn its records into template-ready values. Backend clients
// (wordpress, strapi) configure it with a Profile instead of duplicating logic.
package content

import "encoding/json"

// Rendered is a WordPress field delivered as {"rendered": "..."}
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post is a post record from /wp/v2/posts
type Post struct {
	ID            int             `json:"id"`
	Date          string          `json:"date"`
	DateGMT       string          `json:"date_gmt,omitempty"`
	Modified      string          `json:"modified,omitempty"`
	ModifiedGMT   string          `json:"modified_gmt,omitempty"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status,omitempty"`
	Link          string          `json:"link,omitempty"`
	Title         Rendered        `json:"title"`
	Content       Rendered        `json:"content"`
	Excerpt       Rendered        `json:"excerpt"`
	AuthorID      int             `json:"author,omitempty"`
	FeaturedMedia int             `json:"featured_media,omitempty"`
	Categories    []int           `json:"categories,omitempty"`
	Tags          []int           `json:"tags,omitempty"`
	ACF           json.RawMessage `json:"acf,omitempty"`
	Embedded      *Embedded       `json:"_embedded,omitempty"`
}

// Page is a page record from /wp/v2/pages
type Page struct {
	ID            int             `json:"id"`
	Date          string          `json:"date"`
	DateGMT       string          `json:"date_gmt,omitempty"`
	Modified      string          `json:"modified,omitempty"`
	ModifiedGMT   string          `json:"modified_gmt,omitempty"`
	Slug          string          `json:"slug"`
	Status        string          `json:"status,omitempty"`
	Link          string          `json:"link,omitempty"`
	Parent        int             `json:"parent,omitempty"`
	MenuOrder     int             `json:"menu_order,omitempty"`
	Title         Rendered        `json:"title"`
	Content       Rendered        `json:"content"`
	FeaturedMedia int             `json:"featured_media,omitempty"`
	ACF           json.RawMessage `json:"acf,omitempty"`
	Embedded      *Embedded       `json:"_embedded,omitempty"`
}

// Embedded holds relations inlined by the _embed query parameter.
// Every slot is optional.
type Embedded struct {
	FeaturedMedia []Media  `json:"wp:featuredmedia,omitempty"`
	Author        []Author `json:"author,omitempty"`
	Terms         [][]Term `json:"wp:term,omitempty"`
}

// Media is an attachment record
type Media struct {
	ID           int           `json:"id"`
	SourceURL    string        `json:"source_url"`
	AltText      string        `json:"alt_text,omitempty"`
	MediaType    string        `json:"media_type,omitempty"`
	MimeType     string        `json:"mime_type,omitempty"`
	MediaDetails *MediaDetails `json:"media_details,omitempty"`
}

// MediaDetails carries dimensions and generated size variants
type MediaDetails struct {
	Width  int                  `json:"width,omitempty"`
	Height int                  `json:"height,omitempty"`
	Sizes  map[string]MediaSize `json:"sizes,omitempty"`
}

// MediaSize is one generated resolution of an attachment
type MediaSize struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SourceURL string `json:"source_url"`
}

// Term is a taxonomy term (category or tag)
type Term struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Taxonomy string `json:"taxonomy"`
	Link     string `json:"link,omitempty"`
}

// Author is an embedded user record
type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Link string `json:"link,omitempty"`
}
