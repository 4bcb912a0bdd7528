// internal/extract/extract.go

// Package extract implements the URL extraction core: classification of
// raw input as JSON or plain text, recursive URL discovery, stream-link
// selection, normalization and domain derivation. Process is a pure
// function of its input; nothing here touches the network.
package extract

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned by Process for empty or whitespace-only
// input. No partial result is produced in that case.
var ErrEmptyInput = errors.New("input is empty or contains only whitespace")

// Result is the aggregate outcome of one extraction run. The three
// list fields are deduplicated; each count equals the length of its
// list. List order follows first appearance during extraction, but
// callers must not rely on any particular order.
type Result struct {
	TotalURLsFound     int      `json:"total_urls_found"`
	UniqueURLs         []string `json:"unique_urls"`
	TotalStreamURLs    int      `json:"total_stream_urls"`
	UniqueStreamURLs   []string `json:"unique_stream_urls"`
	TotalUniqueDomains int      `json:"total_unique_domains"`
	UniqueDomains      []string `json:"unique_domains"`
}

// Process classifies raw input, extracts and normalizes every URL,
// selects stream links when the input is a structured document with a
// "streams" array, and derives the unique domain set.
func Process(raw string) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	input := Classify(raw)

	var candidates []string
	if input.Structured {
		candidates = collectURLs(input.Tree)
	} else {
		candidates = FindURLs(input.Raw)
	}

	urls := newStringSet()
	for _, candidate := range candidates {
		urls.add(Normalize(candidate))
	}

	streams := newStringSet()
	for _, link := range streamLinks(input) {
		streams.add(link)
	}

	domains := newStringSet()
	for _, u := range urls.values() {
		domains.add(Domain(u))
	}

	return &Result{
		TotalURLsFound:     urls.len(),
		UniqueURLs:         urls.values(),
		TotalStreamURLs:    streams.len(),
		UniqueStreamURLs:   streams.values(),
		TotalUniqueDomains: domains.len(),
		UniqueDomains:      domains.values(),
	}, nil
}

// streamLinks extracts the normalized "stream" field of every entry in
// a top-level "streams" array. Entries without a usable stream field
// are skipped silently. Inputs that are not objects, or objects without
// a streams array, contribute nothing.
func streamLinks(input Input) []string {
	obj, ok := input.Tree.(map[string]interface{})
	if !ok {
		return nil
	}

	entries, ok := obj["streams"].([]interface{})
	if !ok {
		return nil
	}

	var links []string
	for _, entry := range entries {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		stream, ok := item["stream"].(string)
		if !ok || stream == "" {
			continue
		}
		links = append(links, Normalize(stream))
	}

	return links
}

// stringSet is an insertion-ordered set of strings, so repeated runs
// over the same input produce the same list order.
type stringSet struct {
	seen  map[string]struct{}
	items []string
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) add(v string) {
	if _, dup := s.seen[v]; dup {
		return
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *stringSet) len() int { return len(s.items) }

// values always returns a non-nil slice so results serialize as JSON
// arrays, never null.
func (s *stringSet) values() []string {
	if s.items == nil {
		return []string{}
	}
	return s.items
}
