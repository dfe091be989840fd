package wordpress

import (
	"context"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/content"
)

// MCP Tool wrapper methods
// These methods wrap the client methods with Args/Result types for MCP integration.

// GetPostsMCP is the MCP wrapper for GetPosts
func (c *Client) GetPostsMCP(ctx context.Context, args GetPostsArgs) (GetPostsResult, error) {
	if err := ValidatePerPage(args.PerPage); err != nil {
		return GetPostsResult{}, err
	}

	posts := c.GetPosts(ctx, args.Query().Params())
	summaries := content.SummarizePosts(posts)
	return GetPostsResult{
		Posts: summaries,
		Count: len(summaries),
	}, nil
}

// GetPostMCP is the MCP wrapper for GetPost
func (c *Client) GetPostMCP(ctx context.Context, args GetPostArgs) (GetPostResult, error) {
	if err := ValidateSlug(args.Slug); err != nil {
		return GetPostResult{}, err
	}

	post := c.GetPost(ctx, args.Slug)
	if post == nil {
		return GetPostResult{
			Found:   false,
			Message: "No post found with slug: " + args.Slug,
		}, nil
	}

	summary := content.SummarizePost(post, args.IncludeContent)
	return GetPostResult{Post: &summary, Found: true}, nil
}

// GetPagesMCP is the MCP wrapper for GetPages
func (c *Client) GetPagesMCP(ctx context.Context, args GetPagesArgs) (GetPagesResult, error) {
	if err := ValidatePerPage(args.PerPage); err != nil {
		return GetPagesResult{}, err
	}

	pages := c.GetPages(ctx, args.Query().Params())
	summaries := content.SummarizePages(pages)
	return GetPagesResult{
		Pages: summaries,
		Count: len(summaries),
	}, nil
}

// GetPageMCP is the MCP wrapper for GetPage
func (c *Client) GetPageMCP(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	if err := ValidateSlug(args.Slug); err != nil {
		return GetPageResult{}, err
	}

	page := c.GetPage(ctx, args.Slug)
	if page == nil {
		return GetPageResult{
			Found:   false,
			Message: "No page found with slug: " + args.Slug,
		}, nil
	}

	summary := content.SummarizePage(page, args.IncludeContent)
	return GetPageResult{Page: &summary, Found: true}, nil
}
