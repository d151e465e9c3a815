package ws

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhaoyu-io/folio/internal/content"
)

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	securityHeaders(inner).ServeHTTP(rec, req)

	want := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"X-XSS-Protection":        "1; mode=block",
		"Content-Security-Policy": "default-src 'self'",
	}

	for header, expected := range want {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("header %s = %q, want %q", header, got, expected)
		}
	}
}

func testContent() *content.Content {
	c := content.Default()
	c.Posts = []content.Post{
		{Slug: "hello-world", Title: "Hello", Content: "# Hi", Date: "2026-01-02", Author: "zhaoyu", Tags: []string{"go"}},
	}
	return c
}

func newTestServer(t *testing.T, opts Options) (*Server, *http.ServeMux, *content.Store) {
	t.Helper()
	store := content.NewStore(testContent())
	b := NewBroadcaster(store, time.Hour, 0, 0, nil)
	t.Cleanup(b.Stop)
	s := NewServer(store, b, opts)
	s.now = func() time.Time { return time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC) }
	mux := http.NewServeMux()
	s.SetupRoutes(mux)
	return s, mux, store
}

func serve(mux http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleTest(t *testing.T) {
	_, mux, _ := newTestServer(t, Options{})
	rec := serve(mux, http.MethodGet, content.EndpointTest, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info content.TestInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "SPA", info.Mode)
	assert.Equal(t, "2026-10-18T12:00:00Z", info.Timestamp)
	assert.NotEmpty(t, info.Features)
}

func TestHandleBlog(t *testing.T) {
	_, mux, store := newTestServer(t, Options{})

	rec := serve(mux, http.MethodGet, content.EndpointBlog, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list content.BlogList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Posts, 1)
	assert.Equal(t, "hello-world", list.Posts[0].Slug)
	assert.Empty(t, list.Message)
	assert.NotContains(t, rec.Body.String(), `"data"`)

	store.Set(content.Default())
	rec = serve(mux, http.MethodGet, content.EndpointBlog, nil)
	list = content.BlogList{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Posts)
	assert.Equal(t, "no posts published yet", list.Message)
	assert.Contains(t, rec.Body.String(), `"posts":[]`)
}

func TestHandleBlogPost(t *testing.T) {
	_, mux, _ := newTestServer(t, Options{})

	rec := serve(mux, http.MethodGet, content.BlogPostEndpoint("hello-world"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp content.Response[content.Post]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Hello", resp.Data.Title)

	rec = serve(mux, http.MethodGet, content.BlogPostEndpoint("missing"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp = content.Response[content.Post]{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
	assert.Equal(t, "post not found", resp.Error)
}

func TestHandleBlogPostPlaceholder(t *testing.T) {
	_, mux, store := newTestServer(t, Options{})
	store.Set(content.Default())

	rec := serve(mux, http.MethodGet, content.BlogPostEndpoint("anything"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp content.Response[content.Post]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "anything", resp.Data.Slug)
	assert.Equal(t, "Sample Blog Post", resp.Data.Title)
	assert.Equal(t, "2026-10-18T12:00:00Z", resp.Data.Date)
}

func TestHandleContentNegotiation(t *testing.T) {
	_, mux, _ := newTestServer(t, Options{})

	rec := serve(mux, http.MethodGet, content.EndpointContent, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var snap content.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, content.Default().Profile.Name, snap.Content.Profile.Name)

	rec = serve(mux, http.MethodGet, content.EndpointContent, http.Header{
		"Accept": {"text/html, application/cbor;q=0.9"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/cbor", rec.Header().Get("Content-Type"))
	var cs content.Snapshot
	require.NoError(t, cbor.Unmarshal(rec.Body.Bytes(), &cs))
	assert.Equal(t, uint64(1), cs.Version)
	assert.Equal(t, snap.Content.Profile, cs.Content.Profile)
}

func TestHandleReload(t *testing.T) {
	var calls int
	reload := func() (uint64, error) {
		calls++
		if calls == 2 {
			return 0, errors.New("bad yaml")
		}
		return 7, nil
	}
	_, mux, _ := newTestServer(t, Options{AuthToken: "s3cret", Reload: reload})

	rec := serve(mux, http.MethodPost, content.EndpointReload, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, calls)

	rec = serve(mux, http.MethodPost, content.EndpointReload, http.Header{"Authorization": {"Bearer s3cret"}})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp content.Response[content.Snapshot]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.Data.Version)

	rec = serve(mux, http.MethodPost, content.EndpointReload, http.Header{"X-Folio-Token": {"s3cret"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "bad yaml")

	rec = serve(mux, http.MethodGet, content.EndpointReload, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleReloadUnavailable(t *testing.T) {
	_, mux, _ := newTestServer(t, Options{})
	rec := serve(mux, http.MethodPost, content.EndpointReload, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHealthUnavailable(t *testing.T) {
	_, mux, _ := newTestServer(t, Options{})
	rec := serve(mux, http.MethodGet, content.EndpointHealth, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEmbeddedFrontendGetsSecurityHeaders(t *testing.T) {
	frontend := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html></html>"))
	})
	_, mux, _ := newTestServer(t, Options{EmbeddedHandler: frontend})
	rec := serve(mux, http.MethodGet, "/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<html>"))
}

func TestCheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		host    string
		want    bool
	}{
		{"no origin", nil, "", "example.com", true},
		{"same host", nil, "https://example.com", "example.com", true},
		{"localhost", nil, "http://localhost:5173", "example.com", true},
		{"loopback v6", nil, "http://[::1]:5173", "example.com", true},
		{"foreign", nil, "https://evil.test", "example.com", false},
		{"allow list exact", []string{"https://zhaoyu.io"}, "https://zhaoyu.io", "api.zhaoyu.io", true},
		{"allow list host", []string{"https://zhaoyu.io"}, "http://zhaoyu.io", "api.zhaoyu.io", true},
		{"allow list rejects localhost", []string{"https://zhaoyu.io"}, "http://localhost", "api.zhaoyu.io", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(content.NewStore(content.Default()), nil, Options{AllowedOrigins: tt.allowed})
			r := httptest.NewRequest(http.MethodGet, "/ws", nil)
			r.Host = tt.host
			if tt.origin != "" {
				r.Header.Set("Origin", tt.origin)
			}
			if got := s.checkOrigin(r); got != tt.want {
				t.Errorf("checkOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
			}
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		target string
		accept string
		want   Encoding
	}{
		{"/api/content", "", EncodingJSON},
		{"/api/content", "application/json", EncodingJSON},
		{"/api/content", "application/cbor", EncodingCBOR},
		{"/api/content", "text/html, application/cbor; q=0.5", EncodingCBOR},
		{"/ws?encoding=cbor", "", EncodingCBOR},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, tt.target, nil)
		if tt.accept != "" {
			r.Header.Set("Accept", tt.accept)
		}
		if got := Negotiate(r); got != tt.want {
			t.Errorf("Negotiate(%s, %q) = %v, want %v", tt.target, tt.accept, got, tt.want)
		}
	}
}

func TestDevFrontendFallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html><title>folio</title>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	_, mux, _ := newTestServer(t, Options{Dev: true, FrontendDir: dir})

	rec := serve(mux, http.MethodGet, "/blog/hello-world", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>folio</title>")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec = serve(mux, http.MethodGet, "/app.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}
