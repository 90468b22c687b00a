package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/content"
	"github.com/ziadkadry99/folio/internal/site"
)

func newTestApp(t *testing.T, src content.Source, liveReload string) *app.App {
	t.Helper()
	pages, err := site.LoadPages(content.SamplePages())
	require.NoError(t, err)
	r, err := site.NewRenderer(site.Options{Pages: pages, Links: site.ServerLinks{}, LiveReload: liveReload})
	require.NoError(t, err)
	a := app.New(app.Options{Source: src, RetryDelay: time.Millisecond, Renderer: r})
	_ = a.Load(context.Background())
	return a
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	return New(cfg, newTestApp(t, content.SampleSource{}, ""), zap.NewNop())
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0})

	w := get(t, srv, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{Port: 0, AllowAll: true})

	req := httptest.NewRequest("OPTIONS", "/api/content/blog", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestPageRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	tests := []struct {
		target string
		status int
		want   string
	}{
		{"/", http.StatusOK, "page-home"},
		{"/index.html", http.StatusOK, "page-home"},
		{"/introduction", http.StatusOK, "page-introduction"},
		{"/character.html", http.StatusOK, `href="/character?id=3"`},
		{"/character?id=2", http.StatusOK, "아리온"},
		{"/character?id=", http.StatusOK, `class="character-item"`},
		{"/character?id=99", http.StatusNotFound, `class="not-found"`},
		{"/archive?id=abc", http.StatusNotFound, `class="not-found"`},
		{"/blog?category=%EC%95%84%ED%8A%B8+%EA%B8%B0%EB%B2%95", http.StatusOK, `data-category="아트 기법"`},
		{"/world?id=1", http.StatusOK, "page-world"},
		{"/gallery", http.StatusNotFound, ""},
		{"/favicon.ico", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(t, srv, tt.target)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestPageUnavailable(t *testing.T) {
	a := newTestApp(t, content.FileSource{Path: filepath.Join(t.TempDir(), "none.json")}, "")
	srv := New(Config{}, a, zap.NewNop())

	w := get(t, srv, "/blog")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "데이터를 로드할 수 없습니다.")

	w = get(t, srv, "/api/content/blog")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = get(t, srv, "/fragments/blog")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBlogFragment(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/fragments/blog?category=all")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `class="blog-item"`))
	assert.NotContains(t, w.Body.String(), "<html")

	w = get(t, srv, "/fragments/blog?category=%EC%B0%BD%EC%9E%91+%EA%B3%BC%EC%A0%95")
	assert.Equal(t, 1, strings.Count(w.Body.String(), `class="blog-item"`))
}

func TestAssets(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/assets/style.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")

	w = get(t, srv, "/assets/script.js?v=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "replaceState")

	w = get(t, srv, "/assets/other.png")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContentAPI(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/api/content/archive")
	require.Equal(t, http.StatusOK, w.Code)
	var archives []content.ArchiveDoc
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &archives))
	require.Len(t, archives, 2)
	assert.Equal(t, "2024.08.15", archives[0].Date)

	w = get(t, srv, "/api/content/character/2")
	require.Equal(t, http.StatusOK, w.Code)
	var ch content.CharacterDoc
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ch))
	assert.Equal(t, "아리온", ch.Name)
	assert.Equal(t, 5, ch.Stats.Combat)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/content/character/99").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/content/character/x").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/content/gallery").Code)
}

func TestSearchAPI(t *testing.T) {
	srv := newTestServer(t, Config{})

	w := get(t, srv, "/api/search?q=%EB%8B%AC%EB%B9%9B")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []site.SearchEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.NotEmpty(t, entries)

	w = get(t, srv, "/api/search")
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestLiveReload(t *testing.T) {
	a := newTestApp(t, content.SampleSource{}, LiveReloadPath)
	srv := New(Config{LiveReload: true}, a, zap.NewNop())
	ts := httptest.NewServer(srv.Router())
	defer ts.Close()

	page := get(t, srv, "/")
	assert.Contains(t, page.Body.String(), `data-live-reload="/ws/reload"`)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + LiveReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return srv.hub.Len() == 1 }, time.Second, 5*time.Millisecond)
	srv.Reload()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "reload", string(msg))

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Zero(t, srv.hub.Len())
}

func TestLiveReloadDisabled(t *testing.T) {
	srv := newTestServer(t, Config{})
	srv.Reload()
	assert.Equal(t, http.StatusNotFound, get(t, srv, LiveReloadPath).Code)
}
