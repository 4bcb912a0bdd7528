// internal/enrich/fetcher_test.go
package enrich

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(Config{Timeout: 2 * time.Second})
}

func TestFetchOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("expected browser-like User-Agent, got %q", ua)
		}
		w.Write([]byte(`<html><head>
			<title>Example Page</title>
			<meta name="description" content="A page about examples.">
		</head><body></body></html>`))
	}))
	defer server.Close()

	detail := newTestFetcher().Fetch(context.Background(), server.URL)

	if detail.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", detail.StatusCode)
	}
	if !detail.Exists {
		t.Error("expected exists=true for status 200")
	}
	if detail.Title != "Example Page" {
		t.Errorf("expected title 'Example Page', got %q", detail.Title)
	}
	if detail.Description != "A page about examples." {
		t.Errorf("unexpected description %q", detail.Description)
	}
}

func TestFetchOpenGraphFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<title>OG Page</title>
			<meta property="og:description" content="Open Graph description.">
		</head></html>`))
	}))
	defer server.Close()

	detail := newTestFetcher().Fetch(context.Background(), server.URL)

	if detail.Description != "Open Graph description." {
		t.Errorf("expected og:description fallback, got %q", detail.Description)
	}
}

func TestFetchTruncation(t *testing.T) {
	longTitle := strings.Repeat("t", 120)
	longDesc := strings.Repeat("d", 200)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>` + longTitle + `</title>` +
			`<meta name="description" content="` + longDesc + `"></head></html>`))
	}))
	defer server.Close()

	detail := newTestFetcher().Fetch(context.Background(), server.URL)

	if len(detail.Title) != 103 || !strings.HasSuffix(detail.Title, "...") {
		t.Errorf("expected title truncated to 100 chars plus ellipsis, got length %d", len(detail.Title))
	}
	if len(detail.Description) != 153 || !strings.HasSuffix(detail.Description, "...") {
		t.Errorf("expected description truncated to 150 chars plus ellipsis, got length %d", len(detail.Description))
	}
}

func TestFetchNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html><head><title>Not Found Page</title></head></html>`))
	}))
	defer server.Close()

	detail := newTestFetcher().Fetch(context.Background(), server.URL)

	if detail.Exists {
		t.Error("expected exists=false for status 404")
	}
	if detail.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", detail.StatusCode)
	}
	// Content parsing is strictly 200-only.
	if detail.Title != "N/A" || detail.Description != "N/A" {
		t.Errorf("expected N/A defaults on 404, got title=%q description=%q", detail.Title, detail.Description)
	}
}

func TestFetchNon200NonMissing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`<html><head><title>Forbidden</title></head></html>`))
	}))
	defer server.Close()

	detail := newTestFetcher().Fetch(context.Background(), server.URL)

	if !detail.Exists {
		t.Error("expected exists=true for status 403")
	}
	if detail.Title != "N/A" {
		t.Errorf("expected N/A title on non-200 status, got %q", detail.Title)
	}
}

func TestFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable := server.URL
	server.Close()

	detail := newTestFetcher().Fetch(context.Background(), unreachable)

	if detail.StatusCode != StatusError {
		t.Errorf("expected StatusError sentinel, got %d", detail.StatusCode)
	}
	if detail.Exists {
		t.Error("expected exists=false on network error")
	}
	if detail.Title != "Error fetching" {
		t.Errorf("expected 'Error fetching' title, got %q", detail.Title)
	}
	if !strings.HasPrefix(detail.Description, "Error: ") {
		t.Errorf("expected 'Error: ...' description, got %q", detail.Description)
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Final</title></head></html>`))
	}))
	defer target.Close()

	redirect := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer redirect.Close()

	detail := newTestFetcher().Fetch(context.Background(), redirect.URL)

	if detail.StatusCode != http.StatusOK {
		t.Errorf("expected redirect to resolve to 200, got %d", detail.StatusCode)
	}
	if detail.Title != "Final" {
		t.Errorf("expected title from redirect target, got %q", detail.Title)
	}
}

func TestFetchAllIsolatesFailures(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Alive</title></head></html>`))
	}))
	defer ok.Close()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := dead.URL
	dead.Close()

	details := newTestFetcher().FetchAll(context.Background(), []string{deadURL, ok.URL})

	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].StatusCode != StatusError {
		t.Errorf("expected first URL to fail, got status %d", details[0].StatusCode)
	}
	if details[1].Title != "Alive" {
		t.Errorf("failure must not abort the batch; got title %q", details[1].Title)
	}
}

func TestParsePageInvalidMarkup(t *testing.T) {
	title, description := parsePage(strings.NewReader("not <html at all"))
	if title != "" || description != "" {
		t.Errorf("expected empty results, got title=%q description=%q", title, description)
	}
}
