// Package wordpress provides a client for the WordPress REST API.
// Single posts and pages are resolved by slug.
package wordpress

import "github.com/olgasafonova/headless-cms-mcp-server/internal/content"

// Record types shared with the generic fetcher
type (
	Post   = content.Post
	Page   = content.Page
	Media  = content.Media
	Term   = content.Term
	Author = content.Author
)
