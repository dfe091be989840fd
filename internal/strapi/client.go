package strapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/base"
	"github.com/olgasafonova/headless-cms-mcp-server/internal/content"
)

// Backend is the backend name used in logs, metrics and errors
const Backend = "strapi"

// Client reads posts, pages and ACF fields by id
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

// NewClient creates a client for the REST root at endpoint
func NewClient(endpoint string, opts ...ClientOption) *Client {
	return &Client{
		fetcher: content.NewFetcher(base.NewClient(Backend, endpoint, opts...), content.ACFProfile()),
	}
}

// Endpoint returns the REST root the client targets
func (c *Client) Endpoint() string {
	return c.fetcher.Client().BaseURL
}

// GetPosts lists posts with relations embedded and ACF fields in standard
// format. Returns an empty slice on any failure.
func (c *Client) GetPosts(ctx context.Context, params map[string]string) []Post {
	return c.fetcher.Posts(ctx, params)
}

// GetPost returns the post with the given id, or nil
func (c *Client) GetPost(ctx context.Context, id int) *Post {
	return c.fetcher.Post(ctx, strconv.Itoa(id))
}

// GetPages lists pages. Returns an empty slice on any failure.
func (c *Client) GetPages(ctx context.Context, params map[string]string) []Page {
	return c.fetcher.Pages(ctx, params)
}

// GetPage returns the page with the given id, or nil
func (c *Client) GetPage(ctx context.Context, id int) *Page {
	return c.fetcher.Page(ctx, strconv.Itoa(id))
}

// GetImage fetches post postID and resolves its ACF image field to a URL.
// Returns "" when the post or field is missing or not an image.
func (c *Client) GetImage(ctx context.Context, postID int, field string) string {
	field = strings.TrimSpace(field)
	if field == "" {
		return ""
	}
	post := c.GetPost(ctx, postID)
	if post == nil {
		return ""
	}
	url := content.ImageField(post.ACF, field)
	if url == "" {
		c.fetcher.Client().Logger.Debug("No image in custom field",
			"backend", Backend,
			"post_id", postID,
			"field", field,
		)
	}
	return url
}

// GetFeaturedImage returns the record's featured image URL, or ""
func GetFeaturedImage(record interface{ FeaturedImage() string }) string {
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
