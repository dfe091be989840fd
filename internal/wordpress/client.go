package wordpress

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/base"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/content"
)

// Backend is the backend name used in logs, metrics and errors
const Backend = "wordpress"

// Client provides access to a WordPress REST API
type Client struct {
	fetcher *content.Fetcher
}

// ClientOption configures the Client (re-export base.ClientOption)
type ClientOption = base.ClientOption

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return base.WithHTTPClient(c)
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return base.WithLogger(l)
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return base.WithUserAgent(ua)
}

// WithTimeout sets the request timeout
func WithTimeout(d time.Duration) ClientOption {
	return base.WithTimeout(d)
}

// NewClient creates a client for the REST root at endpoint,
// e.g. https://example.com/wp-json
func NewClient(endpoint string, opts ...ClientOption) *Client {
	return &Client{
		fetcher: content.NewFetcher(base.NewClient(Backend, endpoint, opts...), content.WordPressProfile()),
	}
}

// Endpoint returns the REST root the client targets
func (c *Client) Endpoint() string {
	return c.fetcher.Client().BaseURL
}

// GetPosts lists posts with featured media, author and terms embedded.
// Returns an empty slice on any failure.
func (c *Client) GetPosts(ctx context.Context, params map[string]string) []Post {
	return c.fetcher.Posts(ctx, params)
}

// GetPost returns the post with the given slug, or nil
func (c *Client) GetPost(ctx context.Context, slug string) *Post {
	return c.fetcher.Post(ctx, slug)
}

// GetPages lists pages with featured media embedded.
// Returns an empty slice on any failure.
func (c *Client) GetPages(ctx context.Context, params map[string]string) []Page {
	return c.fetcher.Pages(ctx, params)
}

// GetPage returns the page with the given slug, or nil
func (c *Client) GetPage(ctx context.Context, slug string) *Page {
	return c.fetcher.Page(ctx, slug)
}

// FeaturedImager is implemented by *Post and *Page
type FeaturedImager interface {
	FeaturedImage() string
}

// GetFeaturedImage returns the record's featured image URL, or ""
func GetFeaturedImage(record FeaturedImager) string {
	if record == nil {
		return ""
	}
	return record.FeaturedImage()
}

// GetCategories returns the post's embedded categories
func GetCategories(post *Post) []Term {
	return content.Categories(post)
}

// GetTags returns the post's embedded tags
func GetTags(post *Post) []Term {
	return content.Tags(post)
}

// FormatDate renders a date string as "January 5, 2024"
func FormatDate(date string) string {
	return content.FormatDate(date)
}
