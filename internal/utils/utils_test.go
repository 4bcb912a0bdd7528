// internal/utils/utils_test.go
package utils

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"shorter than limit", "hello", 10, "hello"},
		{"exactly at limit", "hello", 5, "hello"},
		{"over limit", "hello world", 5, "hello..."},
		{"empty", "", 5, ""},
		{"zero limit", "hello", 0, ""},
		{"multibyte", "héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, expected %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestTruncateLongTitle(t *testing.T) {
	long := strings.Repeat("a", 150)
	got := Truncate(long, 100)
	if len(got) != 103 {
		t.Errorf("expected 100 chars plus ellipsis, got length %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
}
