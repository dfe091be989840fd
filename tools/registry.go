// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively and registered through type-safe handlers.
package tools

// Backend names used by ToolSpec.Backend
const (
	BackendWordPress = "wordpress"
	BackendStrapi    = "strapi"
)

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to a backend client method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "wordpress_get_posts")
	Name string

	// Method is the handler key (e.g., "WPGetPosts")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (list, read, media)
	Category string

	// Backend is the CMS the tool reads from
	Backend string

	// ReadOnly indicates the tool doesn't modify CMS state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}
