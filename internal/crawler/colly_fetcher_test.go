package crawler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.UserAgent() != "partner-evaluator-test" {
			http.Error(w, "unexpected user agent", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Acme</title></head>` +
			`<body><p>We sell widgets.</p><a href="/pricing">Pricing</a></body></html>`))
	})
	mux.HandleFunc("/logo.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 0x50, 0x4e, 0x47})
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCollyFetcherFetch(t *testing.T) {
	srv := newTestSite(t)
	f := NewCollyFetcher("partner-evaluator-test", 5*time.Second)

	page, err := f.Fetch(context.Background(), srv.URL+"/")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if page.Text != "# Acme\n\nWe sell widgets." {
		t.Fatalf("unexpected text: %q", page.Text)
	}
	if len(page.Links) != 1 || page.Links[0] != "/pricing" {
		t.Fatalf("unexpected links: %v", page.Links)
	}
}

func TestCollyFetcherErrors(t *testing.T) {
	srv := newTestSite(t)
	f := NewCollyFetcher("partner-evaluator-test", 5*time.Second)

	for _, path := range []string{"/missing", "/logo.png"} {
		if _, err := f.Fetch(context.Background(), srv.URL+path); !errors.Is(err, ErrFetch) {
			t.Fatalf("%s: expected ErrFetch, got %v", path, err)
		}
	}
}

func TestCollyFetcherRespectsDeadline(t *testing.T) {
	srv := newTestSite(t)
	f := NewCollyFetcher("partner-evaluator-test", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	start := time.Now()
	if _, err := f.Fetch(ctx, srv.URL+"/slow"); err == nil {
		t.Fatal("expected error for a slow page")
	}
	if time.Since(start) > 3*time.Second {
		t.Fatal("fetch did not honor the context deadline")
	}
}
