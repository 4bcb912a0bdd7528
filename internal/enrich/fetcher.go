// internal/enrich/fetcher.go

// Package enrich fetches live HTTP metadata for extracted URLs: page
// title, meta description, status code and an existence flag. URLs are
// fetched one at a time; a failing URL never aborts the rest of the
// batch.
package enrich

import (
	"context"
	"net/http"
	"time"

	"github.com/valpere/LinkHarvester/internal/metrics"
	"github.com/valpere/LinkHarvester/internal/utils"
)

// StatusError is the status-code sentinel recorded when the request
// never produced an HTTP response (DNS failure, refused connection,
// timeout).
const StatusError = -1

// Sentinel values for title and description when no page content was
// parsed.
const (
	notAvailable  = "N/A"
	errorFetching = "Error fetching"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"

	titleLimit       = 100
	descriptionLimit = 150
)

// Detail is the enrichment record for a single URL.
type Detail struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StatusCode  int    `json:"status_code"`
	Exists      bool   `json:"exists"`
}

// Config defines fetcher options. Zero values fall back to defaults.
type Config struct {
	Timeout   time.Duration
	UserAgent string
	Logger    utils.Logger
}

// Fetcher issues one GET per URL with a fixed timeout and browser-like
// headers, following redirects. There is no retry and no rate limiting.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    utils.Logger
}

// NewFetcher creates a fetcher with the specified configuration.
func NewFetcher(config Config) *Fetcher {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaultUserAgent
	}
	if config.Logger == nil {
		config.Logger = utils.NewLogger()
	}

	return &Fetcher{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: config.UserAgent,
		logger:    config.Logger,
	}
}

// Fetch retrieves metadata for a single URL. It never returns an error:
// transport failures are folded into the Detail as sentinel values.
// Title and description are parsed only from responses with status 200.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) Detail {
	detail := Detail{
		URL:         targetURL,
		Title:       notAvailable,
		Description: notAvailable,
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return f.failed(detail, err)
	}
	f.setRequestHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return f.failed(detail, err)
	}
	defer resp.Body.Close()

	metrics.EnrichDuration.Observe(time.Since(start).Seconds())

	detail.StatusCode = resp.StatusCode
	detail.Exists = resp.StatusCode != http.StatusNotFound

	if resp.StatusCode != http.StatusOK {
		metrics.EnrichFetchesTotal.WithLabelValues("http_error").Inc()
		f.logger.WithField("url", targetURL).Debugf("skipping content parse, status %d", resp.StatusCode)
		return detail
	}

	metrics.EnrichFetchesTotal.WithLabelValues("ok").Inc()

	title, description := parsePage(resp.Body)
	if title != "" {
		detail.Title = utils.Truncate(title, titleLimit)
	}
	if description != "" {
		detail.Description = utils.Truncate(description, descriptionLimit)
	}

	return detail
}

// FetchAll enriches every URL sequentially, preserving input order.
// Each URL is processed independently; there is no overall deadline
// beyond the caller's context.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Detail {
	details := make([]Detail, 0, len(urls))
	for _, u := range urls {
		details = append(details, f.Fetch(ctx, u))
	}
	return details
}

func (f *Fetcher) failed(detail Detail, err error) Detail {
	metrics.EnrichFetchesTotal.WithLabelValues("error").Inc()
	f.logger.WithField("url", detail.URL).Warnf("fetch failed: %v", err)

	detail.Title = errorFetching
	detail.Description = "Error: " + err.Error()
	detail.StatusCode = StatusError
	detail.Exists = false
	return detail
}

// setRequestHeaders makes the request look like an ordinary browser
// navigation.
func (f *Fetcher) setRequestHeaders(req *http.Request) {
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
}
