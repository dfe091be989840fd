// Package errors provides shared error types for the CMS content clients.
package errors

import (
	"errors"
	"fmt"
)

// FetchError is the single failure kind for a CMS request. Transport failures,
// non-2xx statuses and malformed bodies all collapse into it.
type FetchError struct {
	Backend    string // "wordpress", "strapi"
	Resource   string // "posts", "pages", "posts/42"
	StatusCode int    // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s fetch %s failed with status %d: %v", e.Backend, e.Resource, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch %s failed: %v", e.Backend, e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a FetchError.
func NewFetchError(backend, resource string, statusCode int, err error) *FetchError {
	return &FetchError{
		Backend:    backend,
		Resource:   resource,
		StatusCode: statusCode,
		Err:        err,
	}
}

// NotFoundError indicates a lookup completed but no matching record came back.
type NotFoundError struct {
	Backend    string // "wordpress", "strapi"
	EntityType string // "post", "page"
	Identifier string // slug or numeric id
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found in %s: %s", e.EntityType, e.Backend, e.Identifier)
	}
	return fmt.Sprintf("not found in %s: %s", e.Backend, e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(backend, entityType, identifier string) *NotFoundError {
	return &NotFoundError{
		Backend:    backend,
		EntityType: entityType,
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsFetch returns true if err is or wraps a FetchError.
func IsFetch(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe)
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
