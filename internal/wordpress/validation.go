package wordpress

import (
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/headless-cms-mcp-server/internal/errors"
)

// slugRegex matches WordPress slugs, including percent-encoded non-ASCII ones
var slugRegex = regexp.MustCompile(`^[A-Za-z0-9%_-]+$`)

// MaxSlugLength is the column width WordPress uses for post_name
const MaxSlugLength = 200

// MaxPerPage is the REST API's upper bound for per_page
const MaxPerPage = 100

// ValidateSlug validates a post or page slug.
func ValidateSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return apierrors.NewValidationError("slug", "", "is required")
	}
	if len(slug) > MaxSlugLength {
		return apierrors.NewValidationError("slug", "", "exceeds maximum length of 200 characters")
	}
	if !slugRegex.MatchString(slug) {
		return apierrors.NewValidationError("slug", slug, "must contain only letters, digits, hyphens, underscores or percent-encoded characters")
	}
	return nil
}

// ValidatePerPage validates a per_page value. Zero means the API default.
func ValidatePerPage(perPage int) error {
	if perPage < 0 || perPage > MaxPerPage {
		return apierrors.NewValidationError("per_page", "", "must be between 1 and 100")
	}
	return nil
}
