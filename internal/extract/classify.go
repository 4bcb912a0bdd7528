// internal/extract/classify.go
package extract

import "encoding/json"

// Input is the classified form of a raw text blob. Exactly one of the
// two representations is active: a structured JSON tree when
// Structured is true, the original text otherwise.
type Input struct {
	Tree       interface{}
	Raw        string
	Structured bool
}

// Classify attempts to parse raw as a JSON document. On success the
// returned Input carries the decoded tree; on any parse failure it
// carries the raw text unchanged. Classification never fails.
func Classify(raw string) Input {
	var tree interface{}
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return Input{Raw: raw}
	}
	return Input{Tree: tree, Structured: true}
}

// collectURLs walks an arbitrary decoded JSON value and applies the
// URL pattern to every string leaf. Objects contribute their values,
// arrays their elements in index order; numbers, booleans and nulls
// contribute nothing. Decoded JSON cannot be cyclic, so the recursion
// always terminates.
func collectURLs(node interface{}) []string {
	var urls []string

	switch v := node.(type) {
	case map[string]interface{}:
		for _, value := range v {
			urls = append(urls, collectURLs(value)...)
		}
	case []interface{}:
		for _, item := range v {
			urls = append(urls, collectURLs(item)...)
		}
	case string:
		urls = append(urls, FindURLs(v)...)
	}

	return urls
}
