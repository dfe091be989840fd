package content

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olgasafonova/headless-cms-mcp-server/internal/base"
)

// recordingServer serves fixed responses per path and remembers query strings
type recordingServer struct {
	*httptest.Server
	mu      sync.Mutex
	queries map[string][]url.Values
}

func newRecordingServer(t *testing.T, routes map[string]string) *recordingServer {
	t.Helper()
	rs := &recordingServer{queries: make(map[string][]url.Values)}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rs.mu.Lock()
		rs.queries[r.URL.Path] = append(rs.queries[r.URL.Path], r.URL.Query())
		rs.mu.Unlock()

		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"rest_no_route"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *recordingServer) lastQuery(path string) url.Values {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	q := rs.queries[path]
	if len(q) == 0 {
		return nil
	}
	return q[len(q)-1]
}

func (rs *recordingServer) hits(path string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.queries[path])
}

func quietClient(backend, baseURL string) *base.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return base.NewClient(backend, baseURL, base.WithLogger(logger))
}

func TestFetcher_PostsMergesParams(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PostsPath: `[{"id":1,"slug":"a"},{"id":2,"slug":"b"}]`,
	})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	posts := f.Posts(context.Background(), map[string]string{"per_page": "2"})
	require.Len(t, posts, 2)
	assert.Equal(t, "a", posts[0].Slug)

	q := srv.lastQuery(PostsPath)
	assert.Equal(t, EmbedPostRelations, q.Get("_embed"))
	assert.Equal(t, "2", q.Get("per_page"))
	assert.Empty(t, q.Get("acf_format"))
}

func TestFetcher_CallerParamsOverrideDefaults(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{PagesPath: `[]`})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	pages := f.Pages(context.Background(), map[string]string{"_embed": "author"})
	assert.NotNil(t, pages)
	assert.Empty(t, pages)
	assert.Equal(t, "author", srv.lastQuery(PagesPath).Get("_embed"))
}

func TestFetcher_ACFPostDefaults(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{PostsPath: `[]`})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	f.Posts(context.Background(), nil)
	q := srv.lastQuery(PostsPath)
	assert.Equal(t, EmbedPostRelations, q.Get("_embed"))
	assert.Equal(t, "standard", q.Get("acf_format"))
}

func TestFetcher_ListFallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}},
		{"object instead of array", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"rest_forbidden"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

			posts := f.Posts(context.Background(), nil)
			assert.NotNil(t, posts)
			assert.Empty(t, posts)

			pages := f.Pages(context.Background(), nil)
			assert.NotNil(t, pages)
			assert.Empty(t, pages)
		})
	}
}

func TestFetcher_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	f := NewFetcher(quietClient("wordpress", addr), WordPressProfile())
	assert.Empty(t, f.Posts(context.Background(), nil))
	assert.Nil(t, f.Post(context.Background(), "hello"))

	g := NewFetcher(quietClient("strapi", addr), ACFProfile())
	assert.Nil(t, g.Page(context.Background(), "3"))
}

func TestFetcher_NullBodyIsEmptyList(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{PostsPath: `null`})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	posts := f.Posts(context.Background(), nil)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestFetcher_PostBySlug(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PostsPath: `[{"id":9,"slug":"hello-world","title":{"rendered":"Hello"}}]`,
	})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	post := f.Post(context.Background(), "hello-world")
	require.NotNil(t, post)
	assert.Equal(t, 9, post.ID)
	assert.Equal(t, "Hello", post.Title.Rendered)

	q := srv.lastQuery(PostsPath)
	assert.Equal(t, "hello-world", q.Get("slug"))
	assert.Equal(t, EmbedPostRelations, q.Get("_embed"))
}

func TestFetcher_PostBySlug_NoMatch(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PostsPath: `[{"id":9,"slug":"something-else"}]`,
		PagesPath: `[]`,
	})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	assert.Nil(t, f.Post(context.Background(), "hello-world"))
	assert.Nil(t, f.Page(context.Background(), "about"))
}

func TestFetcher_PostBySlug_PercentEncoded(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PostsPath: `[{"id":7,"slug":"%e6%97%a5%e6%9c%ac"}]`,
	})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	post := f.Post(context.Background(), "日本")
	require.NotNil(t, post)
	assert.Equal(t, 7, post.ID)
	assert.Equal(t, "日本", srv.lastQuery(PostsPath).Get("slug"))

	post = f.Post(context.Background(), "%E6%97%A5%E6%9C%AC")
	require.NotNil(t, post)
	assert.Equal(t, 7, post.ID)
}

func TestSlugsMatch(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"hello-world", "hello-world", true},
		{"Hello-World", "hello-world", true},
		{"%e6%97%a5%e6%9c%ac", "日本", true},
		{"caf%c3%a9", "CAFÉ", true},
		{"100%", "100%", true},
		{"hello", "world", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugsMatch(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestFetcher_PageBySlugUsesPageDefaults(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PagesPath: `[{"id":3,"slug":"about"}]`,
	})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	page := f.Page(context.Background(), "about")
	require.NotNil(t, page)
	assert.Equal(t, 3, page.ID)
	assert.Equal(t, EmbedFeaturedMedia, srv.lastQuery(PagesPath).Get("_embed"))
}

func TestFetcher_BlankKeySkipsRequest(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{PostsPath: `[{"id":1,"slug":""}]`})
	f := NewFetcher(quietClient("wordpress", srv.URL), WordPressProfile())

	assert.Nil(t, f.Post(context.Background(), "   "))
	assert.Equal(t, 0, srv.hits(PostsPath))
}

func TestFetcher_PostByID(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PostsPath + "/42": `{"id":42,"slug":"answer","acf":{"hero":"https://cdn.example.com/h.jpg"}}`,
	})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	post := f.Post(context.Background(), "42")
	require.NotNil(t, post)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "https://cdn.example.com/h.jpg", ImageField(post.ACF, "hero"))

	q := srv.lastQuery(PostsPath + "/42")
	assert.Equal(t, EmbedFeaturedMedia, q.Get("_embed"))
	assert.Equal(t, "standard", q.Get("acf_format"))
}

func TestFetcher_ByIDMismatchIsNil(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{
		PagesPath + "/5": `{"id":6,"slug":"other"}`,
	})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	assert.Nil(t, f.Page(context.Background(), "5"))
}

func TestFetcher_ByIDInvalidKey(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	for _, key := range []string{"abc", "0", "-3", ""} {
		assert.Nil(t, f.Post(context.Background(), key), "key %q", key)
	}
	assert.Equal(t, 0, srv.hits(PostsPath+"/0"))
}

func TestFetcher_ByIDNotFoundStatus(t *testing.T) {
	srv := newRecordingServer(t, map[string]string{})
	f := NewFetcher(quietClient("strapi", srv.URL), ACFProfile())

	assert.Nil(t, f.Post(context.Background(), "404"))
}

func TestFetcher_LogsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	f := NewFetcher(base.NewClient("wordpress", srv.URL, base.WithLogger(logger)), WordPressProfile())

	f.Posts(context.Background(), nil)

	out := buf.String()
	assert.Contains(t, out, "Error fetching content")
	assert.Contains(t, out, "backend=wordpress")
	assert.Contains(t, out, "resource=posts")
}

func TestFetcher_Accessors(t *testing.T) {
	client := quietClient("wordpress", "https://example.com")
	f := NewFetcher(client, WordPressProfile())

	assert.Same(t, client, f.Client())
	assert.Equal(t, "wordpress", f.Profile().Backend)
	assert.Equal(t, LookupBySlug, f.Profile().Lookup)
}

func TestLookupString(t *testing.T) {
	assert.Equal(t, "slug", LookupBySlug.String())
	assert.Equal(t, "id", LookupByID.String())
	assert.Equal(t, "unknown", Lookup(99).String())
}
