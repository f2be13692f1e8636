package owapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(srvURL string) *Client {
	return NewClient(Config{BaseURL: srvURL, Timeout: 5 * time.Second})
}

func TestFetchStatsOK(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	p, err := c.FetchStats(context.Background(), "pc", "us", "Clovis-1467")
	if err != nil {
		t.Fatalf("FetchStats: %v", err)
	}
	if want := "/stats/pc/us/Clovis-1467/complete"; gotPath != want {
		t.Fatalf("request path = %q want %q", gotPath, want)
	}
	if p.Name != "Clovis#1467" || p.Private {
		t.Fatalf("unexpected payload: name=%q private=%v", p.Name, p.Private)
	}
}

func TestFetchStatsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.FetchStats(context.Background(), "pc", "us", "Nobody-0000")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != 404 {
		t.Fatalf("StatusCode = %d want 404", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Error(), "could not be found") {
		t.Fatalf("unexpected message: %s", apiErr.Error())
	}
}

func TestFetchStatsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.FetchStats(context.Background(), "pc", "us", "Clovis-1467"); err == nil {
		t.Fatalf("expected decode error for malformed body")
	}
}

func TestFetchStatsContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	c := newTestClient(srv.URL)
	if _, err := c.FetchStats(ctx, "pc", "us", "Clovis-1467"); err == nil {
		t.Fatalf("expected context deadline error")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BaseURL == "" || cfg.Timeout <= 0 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}
