// Package api defines the wire types of the LinkHarvester HTTP API.
package api

// ExtractRequest is the body of POST /api/v1/extract.
type ExtractRequest struct {
	// Input is the raw text blob, JSON or otherwise.
	Input string `json:"input"`

	// Enrich requests per-URL HTTP metadata in the response.
	Enrich bool `json:"enrich,omitempty"`
}

// ExtractionResult is the aggregate result record.
type ExtractionResult struct {
	TotalURLsFound     int      `json:"total_urls_found"`
	UniqueURLs         []string `json:"unique_urls"`
	TotalStreamURLs    int      `json:"total_stream_urls"`
	UniqueStreamURLs   []string `json:"unique_stream_urls"`
	TotalUniqueDomains int      `json:"total_unique_domains"`
	UniqueDomains      []string `json:"unique_domains"`
}

// URLDetail is the enrichment record for a single URL. StatusCode is -1
// when the fetch never produced an HTTP response.
type URLDetail struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StatusCode  int    `json:"status_code"`
	Exists      bool   `json:"exists"`
}

// ExtractResponse is the success body of POST /api/v1/extract.
type ExtractResponse struct {
	Result     ExtractionResult `json:"result"`
	URLDetails []URLDetail      `json:"url_details,omitempty"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
