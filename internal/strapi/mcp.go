package strapi

import (
	"context"
	"fmt"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/content"
)

// MCP Tool wrapper methods

// GetPostsMCP is the MCP wrapper for GetPosts
func (c *Client) GetPostsMCP(ctx context.Context, args GetPostsArgs) (GetPostsResult, error) {
	if err := ValidatePerPage(args.PerPage); err != nil {
		return GetPostsResult{}, err
	}

	summaries := content.SummarizePosts(c.GetPosts(ctx, args.Query().Params()))
	return GetPostsResult{
		Posts: summaries,
		Count: len(summaries),
	}, nil
}

// GetPostMCP is the MCP wrapper for GetPost
func (c *Client) GetPostMCP(ctx context.Context, args GetPostArgs) (GetPostResult, error) {
	if err := ValidateID("id", args.ID); err != nil {
		return GetPostResult{}, err
	}

	post := c.GetPost(ctx, args.ID)
	if post == nil {
		return GetPostResult{
			Found:   false,
			Message: fmt.Sprintf("No post found with id: %d", args.ID),
		}, nil
	}

	summary := content.SummarizePost(post, args.IncludeContent)
	return GetPostResult{
		Post:   &summary,
		Fields: content.Fields(post.ACF),
		Found:  true,
	}, nil
}

// GetPagesMCP is the MCP wrapper for GetPages
func (c *Client) GetPagesMCP(ctx context.Context, args GetPagesArgs) (GetPagesResult, error) {
	if err := ValidatePerPage(args.PerPage); err != nil {
		return GetPagesResult{}, err
	}

	summaries := content.SummarizePages(c.GetPages(ctx, args.Query().Params()))
	return GetPagesResult{
		Pages: summaries,
		Count: len(summaries),
	}, nil
}

// GetPageMCP is the MCP wrapper for GetPage
func (c *Client) GetPageMCP(ctx context.Context, args GetPageArgs) (GetPageResult, error) {
	if err := ValidateID("id", args.ID); err != nil {
		return GetPageResult{}, err
	}

	page := c.GetPage(ctx, args.ID)
	if page == nil {
		return GetPageResult{
			Found:   false,
			Message: fmt.Sprintf("No page found with id: %d", args.ID),
		}, nil
	}

	summary := content.SummarizePage(page, args.IncludeContent)
	return GetPageResult{
		Page:   &summary,
		Fields: content.Fields(page.ACF),
		Found:  true,
	}, nil
}

// GetImageMCP is the MCP wrapper for GetImage
func (c *Client) GetImageMCP(ctx context.Context, args GetImageArgs) (GetImageResult, error) {
	if err := ValidateID("post_id", args.PostID); err != nil {
		return GetImageResult{}, err
	}
	if err := ValidateFieldName(args.Field); err != nil {
		return GetImageResult{}, err
	}

	url := c.GetImage(ctx, args.PostID, args.Field)
	if url == "" {
		return GetImageResult{
			Found:   false,
			Message: fmt.Sprintf("No image in field %q of post %d", args.Field, args.PostID),
		}, nil
	}
	return GetImageResult{URL: url, Found: true}, nil
}
