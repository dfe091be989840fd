package content

// Lookup selects how a single record is resolved
type Lookup int

const (
	// LookupBySlug lists the collection filtered by slug and picks the matching record
	LookupBySlug Lookup = iota
	// LookupByID fetches /{collection}/{id} directly
	LookupByID
)

func (l Lookup) String() string {
	switch l {
	case LookupBySlug:
		return "slug"
	case LookupByID:
		return "id"
	default:
		return "unknown"
	}
}

// REST collection paths
const (
	PostsPath = "/wp/v2/posts"
	PagesPath = "/wp/v2/pages"
)

// Embed relation sets
const (
	EmbedFeaturedMedia = "wp:featuredmedia"
	EmbedPostRelations = "wp:featuredmedia,author,wp:term"
)

// Profile describes one backend's request conventions
type Profile struct {
	// Backend names the backend in logs, metrics and errors
	Backend string

	// Lookup is the single-record strategy
	Lookup Lookup

	// PostListParams are the defaults for post list requests
	PostListParams map[string]string

	// PageListParams are the defaults for page list requests
	PageListParams map[string]string

	// SingleParams are the defaults for by-id requests
	SingleParams map[string]string
}

// WordPressProfile targets a stock WordPress REST API with slug lookups
func WordPressProfile() Profile {
	return Profile{
		Backend: "wordpress",
		Lookup:  LookupBySlug,
		PostListParams: map[string]string{
			"_embed": EmbedPostRelations,
		},
		PageListParams: map[string]string{
			"_embed": EmbedFeaturedMedia,
		},
	}
}

// ACFProfile targets WordPress with Advanced Custom Fields and id lookups.
// The strapi package uses it.
func ACFProfile() Profile {
	return Profile{
		Backend: "strapi",
		Lookup:  LookupByID,
		PostListParams: map[string]string{
			"_embed":     EmbedPostRelations,
			"acf_format": "standard",
		},
		PageListParams: map[string]string{
			"_embed": EmbedFeaturedMedia,
		},
		SingleParams: map[string]string{
			"_embed":     EmbedFeaturedMedia,
			"acf_format": "standard",
		},
	}
}
