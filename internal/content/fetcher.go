package content

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/base"
	apierrors "github.com/olgasafonova/headless-cms-mcp-server/internal/errors"
	"github.com/olgasafonova/headless-cms-mcp-server/metrics"
)

// Fetcher issues content requests according to a Profile.
// Its exported methods never return errors: list calls fall back to an empty
// slice and single lookups to nil. Failures go to the client's logger.
type Fetcher struct {
	client  *base.Client
	profile Profile
}

// NewFetcher creates a fetcher over client using profile's conventions
func NewFetcher(client *base.Client, profile Profile) *Fetcher {
	return &Fetcher{
		client:  client,
		profile: profile,
	}
}

// Profile returns the fetcher's backend profile
func (f *Fetcher) Profile() Profile {
	return f.profile
}

// Client returns the underlying base client
func (f *Fetcher) Client() *base.Client {
	return f.client
}

// Posts lists posts. Caller params override the profile defaults.
func (f *Fetcher) Posts(ctx context.Context, params map[string]string) []Post {
	posts, err := list[Post](ctx, f, PostsPath, "posts", f.profile.PostListParams, params)
	if err != nil {
		f.fallback(err, "posts", "")
		return []Post{}
	}
	return posts
}

// Pages lists pages. Caller params override the profile defaults.
func (f *Fetcher) Pages(ctx context.Context, params map[string]string) []Page {
	pages, err := list[Page](ctx, f, PagesPath, "pages", f.profile.PageListParams, params)
	if err != nil {
		f.fallback(err, "pages", "")
		return []Page{}
	}
	return pages
}

// Post resolves a single post by slug or id depending on the profile's Lookup
func (f *Fetcher) Post(ctx context.Context, key string) *Post {
	post, err := single(ctx, f, PostsPath, "post", f.profile.PostListParams, key,
		func(p *Post) (int, string) { return p.ID, p.Slug })
	if err != nil {
		f.fallback(err, "post", key)
		return nil
	}
	return post
}

// Page resolves a single page by slug or id depending on the profile's Lookup
func (f *Fetcher) Page(ctx context.Context, key string) *Page {
	page, err := single(ctx, f, PagesPath, "page", f.profile.PageListParams, key,
		func(p *Page) (int, string) { return p.ID, p.Slug })
	if err != nil {
		f.fallback(err, "page", key)
		return nil
	}
	return page
}

// fallback logs an absorbed failure. A lookup with no match is not a failure.
func (f *Fetcher) fallback(err error, resource, key string) {
	attrs := []any{"backend", f.profile.Backend, "resource", resource}
	if key != "" {
		attrs = append(attrs, "key", key)
	}

	switch {
	case apierrors.IsNotFound(err):
		f.client.Logger.Debug("No matching record", append(attrs, "error", err)...)
	case apierrors.IsValidation(err):
		f.client.Logger.Warn("Invalid lookup key", append(attrs, "error", err)...)
	default:
		metrics.RecordFallback(f.profile.Backend, resource)
		f.client.Logger.Warn("Error fetching content", append(attrs, "error", err)...)
	}
}

func list[T any](ctx context.Context, f *Fetcher, path, resource string, defaults, params map[string]string) ([]T, error) {
	var records []T
	err := f.client.GetJSON(ctx, base.RequestConfig{
		Path:     path,
		Params:   base.MergeParams(defaults, params),
		Resource: resource,
	}, &records)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func single[T any](ctx context.Context, f *Fetcher, path, entity string, listDefaults map[string]string, key string, ident func(*T) (int, string)) (*T, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apierrors.NewValidationError(f.profile.Lookup.String(), "", "is required")
	}

	switch f.profile.Lookup {
	case LookupByID:
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			return nil, apierrors.NewValidationError("id", key, "must be a positive integer")
		}

		var record T
		err = f.client.GetJSON(ctx, base.RequestConfig{
			Path:     path + "/" + strconv.Itoa(id),
			Params:   base.MergeParams(f.profile.SingleParams, nil),
			Resource: entity,
		}, &record)
		if err != nil {
			return nil, err
		}
		if gotID, _ := ident(&record); gotID != id {
			return nil, apierrors.NewNotFoundError(f.profile.Backend, entity, key)
		}
		return &record, nil

	default:
		records, err := list[T](ctx, f, path, entity+"s", listDefaults, map[string]string{"slug": key})
		if err != nil {
			return nil, err
		}
		for i := range records {
			if _, slug := ident(&records[i]); slugsMatch(slug, key) {
				return &records[i], nil
			}
		}
		return nil, apierrors.NewNotFoundError(f.profile.Backend, entity, key)
	}
}

// slugsMatch compares slugs after percent-decoding. WordPress stores
// non-ASCII slugs encoded and lowercased.
func slugsMatch(a, b string) bool {
	return strings.EqualFold(unescapeSlug(a), unescapeSlug(b))
}

func unescapeSlug(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
