package server

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/maestrohq/landing/internal/config"
	"github.com/maestrohq/landing/internal/overrides"
	"github.com/maestrohq/landing/sections"
)

func newServer(t *testing.T, cfg *config.Config) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)
	store := overrides.New(cfg.Overrides.Path, overrides.WithLogger(log), overrides.WithSections(sections.Tables()))
	require.NoError(t, store.Load())
	s, err := New(cfg, store, log)
	require.NoError(t, err)
	return s, logs
}

func get(h http.Handler, target string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	s, _ := newServer(t, config.Default())
	h := s.Handler()

	tests := []struct {
		target   string
		code     int
		contains string
	}{
		{"/healthz", http.StatusOK, "ok"},
		{"/static/site.css", http.StatusOK, "--primary"},
		{"/", http.StatusOK, `id="pricing"`},
		{"/sections/hero", http.StatusOK, `data-editable="mainTitle"`},
		{"/sections/nope", http.StatusNotFound, "unknown section"},
		{"/manifest.json", http.StatusOK, `"fields"`},
		{"/missing", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(h, tt.target)
			assert.Equal(t, tt.code, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestRoutesTree(t *testing.T) {
	s, _ := newServer(t, config.Default())
	var routes []string
	for n := range s.Routes().All() {
		routes = append(routes, n.FullRoute())
	}
	assert.Equal(t, []string{"/", "/{$}", "/contact", "/sections/{name}", "/manifest.json"}, routes)
}

func TestRequestID(t *testing.T) {
	s, logs := newServer(t, config.Default())

	rec := get(s.Handler(), "/healthz")
	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "a fresh id is assigned")

	incoming := uuid.NewString()
	rec = get(s.Handler(), "/healthz", RequestIDHeader, incoming)
	assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))

	rec = get(s.Handler(), "/healthz", RequestIDHeader, "not-a-uuid")
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(RequestIDHeader))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 3)
	fields := entries[1].ContextMap()
	assert.Equal(t, incoming, fields["id"])
	assert.Equal(t, "/healthz", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := recoverer(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := get(h, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic serving request").Len())
}

func TestExternalAssetsNotServed(t *testing.T) {
	cfg := config.Default()
	cfg.Site.Assets = "https://cdn.example.com/landing"
	s, _ := newServer(t, cfg)
	assert.Equal(t, http.StatusNotFound, get(s.Handler(), "/static/site.css").Code)
	assert.Contains(t, get(s.Handler(), "/").Body.String(), "https://cdn.example.com/landing/site.css")
}

func TestServeShutsDown(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hero:\n  badge: Live\n"), 0o644))
	cfg := config.Default()
	cfg.Overrides.Path = path
	cfg.Overrides.Watch = true
	s, _ := newServer(t, cfg)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/sections/hero")
	require.NoError(t, err)
	resp.Body.Close()
	client.CloseIdleConnections()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
