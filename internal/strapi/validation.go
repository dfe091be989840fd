package strapi

import (
	"regexp"
	"strings"

	apierrors "github.com/olgasafonova/headless-cms-mcp-server/internal/errors"
)

// fieldNameRegex matches ACF field names
var fieldNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// MaxFieldNameLength bounds ACF field names
const MaxFieldNameLength = 64

// MaxPerPage is the REST API's upper bound for per_page
const MaxPerPage = 100

// ValidateID validates a post or page id
func ValidateID(field string, id int) error {
	if id <= 0 {
		return apierrors.NewValidationError(field, "", "must be a positive integer")
	}
	return nil
}

// ValidateFieldName validates an ACF field name
func ValidateFieldName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apierrors.NewValidationError("field", "", "is required")
	}
	if len(name) > MaxFieldNameLength {
		return apierrors.NewValidationError("field", "", "exceeds maximum length of 64 characters")
	}
	if !fieldNameRegex.MatchString(name) {
		return apierrors.NewValidationError("field", name, "must contain only letters, digits, hyphens or underscores")
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
