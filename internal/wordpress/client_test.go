package wordpress

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const postsFixture = `[
	{
		"id": 10,
		"slug": "hello-world",
		"date": "2024-01-05T00:00:00",
		"title": {"rendered": "Hello World"},
		"content": {"rendered": "<p>Welcome</p>"},
		"excerpt": {"rendered": "<p>Welcome</p>"},
		"_embedded": {
			"wp:featuredmedia": [{"id": 3, "source_url": "https://cdn.example.com/hello.jpg"}],
			"author": [{"id": 1, "name": "Editor"}],
			"wp:term": [
				[{"id": 5, "name": "News", "slug": "news", "taxonomy": "category"}],
				[{"id": 6, "name": "release", "slug": "release", "taxonomy": "post_tag"}]
			]
		}
	}
]`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ctx() context.Context {
	return context.Background()
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient(server.URL+"/wp-json", WithLogger(quietLogger()))
}

func TestNewClient(t *testing.T) {
	client := NewClient("https://example.com/wp-json/")
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.Endpoint() != "https://example.com/wp-json" {
		t.Errorf("Endpoint() = %q", client.Endpoint())
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	client := NewClient("https://example.com/wp-json",
		WithHTTPClient(customHTTPClient),
		WithUserAgent("site-builder/1.0"),
		WithLogger(quietLogger()),
	)

	if client.fetcher.Client().HTTPClient != customHTTPClient {
		t.Error("custom HTTP client was not set")
	}
	if client.fetcher.Client().UserAgent != "site-builder/1.0" {
		t.Error("custom user agent was not set")
	}

	client = NewClient("https://example.com/wp-json", WithTimeout(3*time.Second))
	if client.fetcher.Client().HTTPClient.Timeout != 3*time.Second {
		t.Error("timeout was not applied")
	}
}

func TestGetPosts(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("_embed"); got != "wp:featuredmedia,author,wp:term" {
			t.Errorf("_embed = %q", got)
		}
		if got := r.URL.Query().Get("categories"); got != "5" {
			t.Errorf("categories = %q, want 5", got)
		}
		_, _ = w.Write([]byte(postsFixture))
	})

	posts := client.GetPosts(ctx(), map[string]string{"categories": "5"})
	if len(posts) != 1 {
		t.Fatalf("len(posts) = %d, want 1", len(posts))
	}
	if posts[0].Title.Rendered != "Hello World" {
		t.Errorf("title = %q", posts[0].Title.Rendered)
	}
}

func TestGetPosts_Failure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"code":"internal_server_error"}`},
		{"forbidden", http.StatusForbidden, `{"code":"rest_forbidden"}`},
		{"malformed body", http.StatusOK, `[{"id": 1,`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			posts := client.GetPosts(ctx(), nil)
			if posts == nil {
				t.Fatal("GetPosts must return an empty slice, not nil")
			}
			if len(posts) != 0 {
				t.Errorf("len(posts) = %d, want 0", len(posts))
			}
		})
	}
}

func TestGetPost(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/posts" {
			t.Errorf("slug lookups must use the list endpoint, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("slug") == "hello-world" {
			_, _ = w.Write([]byte(postsFixture))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	post := client.GetPost(ctx(), "hello-world")
	if post == nil {
		t.Fatal("expected post")
	}
	if post.Slug != "hello-world" {
		t.Errorf("slug = %q, want hello-world", post.Slug)
	}

	if missing := client.GetPost(ctx(), "missing"); missing != nil {
		t.Errorf("expected nil for unknown slug, got %+v", missing)
	}
}

func TestGetPages(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/wp-json/wp/v2/pages" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("_embed"); got != "wp:featuredmedia" {
			t.Errorf("_embed = %q, want wp:featuredmedia", got)
		}
		pages := []map[string]any{
			{"id": 2, "slug": "about", "title": map[string]string{"rendered": "About"}},
			{"id": 3, "slug": "contact", "title": map[string]string{"rendered": "Contact"}},
		}
		_ = json.NewEncoder(w).Encode(pages)
	})

	pages := client.GetPages(ctx(), nil)
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}

	page := client.GetPage(ctx(), "contact")
	if page == nil || page.ID != 3 {
		t.Fatalf("GetPage(contact) = %+v, want id 3", page)
	}
}

func TestGetPage_ServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if page := client.GetPage(ctx(), "about"); page != nil {
		t.Errorf("expected nil page, got %+v", page)
	}
}

func TestExtractors(t *testing.T) {
	var posts []Post
	if err := json.Unmarshal([]byte(postsFixture), &posts); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	post := &posts[0]

	if got := GetFeaturedImage(post); got != "https://cdn.example.com/hello.jpg" {
		t.Errorf("GetFeaturedImage = %q", got)
	}
	if got := GetCategories(post); len(got) != 1 || got[0].Slug != "news" {
		t.Errorf("GetCategories = %+v", got)
	}
	if got := GetTags(post); len(got) != 1 || got[0].Slug != "release" {
		t.Errorf("GetTags = %+v", got)
	}
	if got := FormatDate(post.Date); got != "January 5, 2024" {
		t.Errorf("FormatDate = %q", got)
	}

	var nilPost *Post
	if got := GetFeaturedImage(nilPost); got != "" {
		t.Errorf("GetFeaturedImage(nil post) = %q", got)
	}
	if got := GetFeaturedImage(nil); got != "" {
		t.Errorf("GetFeaturedImage(nil) = %q", got)
	}
	if got := GetFeaturedImage(&Page{}); got != "" {
		t.Errorf("GetFeaturedImage(empty page) = %q", got)
	}
	if got := GetTags(&Post{}); got == nil || len(got) != 0 {
		t.Errorf("GetTags(empty) = %v, want empty slice", got)
	}
}
