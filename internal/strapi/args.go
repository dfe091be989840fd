package strapi

import "github.com/olgasafonova/headless-cms-mcp-server/internal/content"

// GetPostsArgs contains parameters for listing posts
type GetPostsArgs struct {
	Search  string            `json:"search,omitempty" jsonschema:"Full-text search filter"`
	PerPage int               `json:"per_page,omitempty" jsonschema:"Posts per request (1-100, default 10)"`
	Page    int               `json:"page,omitempty" jsonschema:"Result page to request (default 1)"`
	OrderBy string            `json:"orderby,omitempty" jsonschema:"Sort field such as date or title"`
	Order   string            `json:"order,omitempty" jsonschema:"Sort direction: asc or desc"`
	Params  map[string]string `json:"params,omitempty" jsonschema:"Extra REST query parameters merged over the defaults"`
}

// Query converts the args to a list query
func (a GetPostsArgs) Query() content.ListQuery {
	return content.ListQuery{
		Search:  a.Search,
		PerPage: a.PerPage,
		Page:    a.Page,
		OrderBy: a.OrderBy,
		Order:   a.Order,
		Extra:   a.Params,
	}
}

// GetPostsResult is the result of listing posts
type GetPostsResult struct {
	Posts []content.PostSummary `json:"posts"`
	Count int                   `json:"count"`
}

// GetPostArgs contains parameters for getting a post by id
type GetPostArgs struct {
	ID             int  `json:"id" jsonschema:"Numeric post id"`
	IncludeContent bool `json:"include_content,omitempty" jsonschema:"Include rendered HTML content (default false)"`
}

// GetPostResult is the result of getting a post
type GetPostResult struct {
	Post    *content.PostSummary `json:"post,omitempty"`
	Fields  map[string]any       `json:"fields,omitempty"`
	Found   bool                 `json:"found"`
	Message string               `json:"message,omitempty"`
}

// GetPagesArgs contains parameters for listing pages
type GetPagesArgs struct {
	Search  string            `json:"search,omitempty" jsonschema:"Full-text search filter"`
	PerPage int               `json:"per_page,omitempty" jsonschema:"Pages per request (1-100, default 10)"`
	Page    int               `json:"page,omitempty" jsonschema:"Result page to request (default 1)"`
	OrderBy string            `json:"orderby,omitempty" jsonschema:"Sort field such as menu_order or title"`
	Order   string            `json:"order,omitempty" jsonschema:"Sort direction: asc or desc"`
	Params  map[string]string `json:"params,omitempty" jsonschema:"Extra REST query parameters merged over the defaults"`
}

// Query converts the args to a list query
func (a GetPagesArgs) Query() content.ListQuery {
	return content.ListQuery{
		Search:  a.Search,
		PerPage: a.PerPage,
		Page:    a.Page,
		OrderBy: a.OrderBy,
		Order:   a.Order,
		Extra:   a.Params,
	}
}

// GetPagesResult is the result of listing pages
type GetPagesResult struct {
	Pages []content.PageSummary `json:"pages"`
	Count int                   `json:"count"`
}

// GetPageArgs contains parameters for getting a page by id
type GetPageArgs struct {
	ID             int  `json:"id" jsonschema:"Numeric page id"`
	IncludeContent bool `json:"include_content,omitempty" jsonschema:"Include rendered HTML content (default false)"`
}

// GetPageResult is the result of getting a page
type GetPageResult struct {
	Page    *content.PageSummary `json:"page,omitempty"`
	Fields  map[string]any       `json:"fields,omitempty"`
	Found   bool                 `json:"found"`
	Message string               `json:"message,omitempty"`
}

// GetImageArgs contains parameters for resolving an ACF image field
type GetImageArgs struct {
	PostID int    `json:"post_id" jsonschema:"Numeric id of the post holding the field"`
	Field  string `json:"field" jsonschema:"ACF field name, e.g. hero_image"`
}

// GetImageResult is the resolved image URL
type GetImageResult struct {
	URL     string `json:"url,omitempty"`
	Found   bool   `json:"found"`
	Message string `json:"message,omitempty"`
}
