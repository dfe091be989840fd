package tools

// AllTools contains all tool specifications for the headless CMS MCP server.
// Tool descriptions follow a structured format for LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// WORDPRESS TOOLS
	// ==========================================================================
	{
		Name:     "wordpress_get_posts",
		Method:   "WPGetPosts",
		Title:    "List WordPress Posts",
		Category: "list",
		Backend:  BackendWordPress,
		Description: `List blog posts from the WordPress site, newest first.

USE WHEN: User asks "what are the latest posts", "find posts about X", "list posts in category 5".

NOT FOR: Reading one post in full (use wordpress_get_post).

PARAMETERS:
- search: Full-text filter (optional)
- per_page: 1-100 (default 10)
- page: Result page (default 1)
- orderby / order: Sort field and direction (optional)
- params: Extra REST filters such as categories or tags (optional)

RETURNS: Post summaries with title, slug, formatted date, featured image, author, category and tag names. Empty list if the site is unreachable.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_post",
		Method:   "WPGetPost",
		Title:    "Get WordPress Post",
		Category: "read",
		Backend:  BackendWordPress,
		Description: `Get one WordPress post by slug.

USE WHEN: User asks "show me the post hello-world", "what does the launch post say".

NOT FOR: Searching posts (use wordpress_get_posts).

PARAMETERS:
- slug: Post slug (required)
- include_content: Include rendered HTML (default false)

RETURNS: Post summary, or found=false when no post has that slug.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_pages",
		Method:   "WPGetPages",
		Title:    "List WordPress Pages",
		Category: "list",
		Backend:  BackendWordPress,
		Description: `List static pages from the WordPress site.

USE WHEN: User asks "what pages does the site have", "list the navigation pages".

NOT FOR: Blog posts (use wordpress_get_posts).

PARAMETERS:
- search, per_page, page, orderby, order, params: As for wordpress_get_posts

RETURNS: Page summaries with title, slug, formatted date and featured image.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wordpress_get_page",
		Method:   "WPGetPage",
		Title:    "Get WordPress Page",
		Category: "read",
		Backend:  BackendWordPress,
		Description: `Get one WordPress page by slug.

USE WHEN: User asks "show the about page", "what is on the contact page".

PARAMETERS:
- slug: Page slug (required)
- include_content: Include rendered HTML (default false)

RETURNS: Page summary, or found=false when no page has that slug.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// STRAPI (ACF) TOOLS
	// ==========================================================================
	{
		Name:     "strapi_get_posts",
		Method:   "StrapiGetPosts",
		Title:    "List CMS Posts",
		Category: "list",
		Backend:  BackendStrapi,
		Description: `List posts from the ACF-enabled CMS, with custom fields in standard format.

USE WHEN: User asks for posts from the headless CMS rather than the blog.

NOT FOR: Reading custom fields of one post (use strapi_get_post).

PARAMETERS:
- search, per_page, page, orderby, order, params: As for wordpress_get_posts

RETURNS: Post summaries. Empty list if the CMS is unreachable.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "strapi_get_post",
		Method:   "StrapiGetPost",
		Title:    "Get CMS Post",
		Category: "read",
		Backend:  BackendStrapi,
		Description: `Get one CMS post by numeric id, including its custom fields.

USE WHEN: User asks "show post 42", "what custom fields does post 42 have".

PARAMETERS:
- id: Post id (required)
- include_content: Include rendered HTML (default false)

RETURNS: Post summary and custom fields, or found=false.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "strapi_get_pages",
		Method:   "StrapiGetPages",
		Title:    "List CMS Pages",
		Category: "list",
		Backend:  BackendStrapi,
		Description: `List pages from the ACF-enabled CMS.

PARAMETERS:
- search, per_page, page, orderby, order, params: As for wordpress_get_posts

RETURNS: Page summaries. Empty list if the CMS is unreachable.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "strapi_get_page",
		Method:   "StrapiGetPage",
		Title:    "Get CMS Page",
		Category: "read",
		Backend:  BackendStrapi,
		Description: `Get one CMS page by numeric id, including its custom fields.

PARAMETERS:
- id: Page id (required)
- include_content: Include rendered HTML (default false)

RETURNS: Page summary and custom fields, or found=false.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "strapi_get_image",
		Method:   "StrapiGetImage",
		Title:    "Resolve CMS Image Field",
		Category: "media",
		Backend:  BackendStrapi,
		Description: `Resolve an ACF image field of a post to a URL.

USE WHEN: User asks "what is the hero image of post 42", "get the banner for post 7".

NOT FOR: The featured image (included in strapi_get_post).

PARAMETERS:
- post_id: Post id (required)
- field: ACF field name (required)

RETURNS: Image URL, preferring the full URL, then large, medium and full sizes. found=false when the field holds no image.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

// ToolsByBackend returns the tools that read from backend
func ToolsByBackend(backend string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Backend == backend {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the tools in category
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}
