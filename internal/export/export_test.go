// internal/export/export_test.go
package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/extract"
)

func sampleReport() *Report {
	return &Report{
		Result: &extract.Result{
			TotalURLsFound:     2,
			UniqueURLs:         []string{"https://a.com/x", "http://b.com/y"},
			TotalStreamURLs:    1,
			UniqueStreamURLs:   []string{"https://a.com/x"},
			TotalUniqueDomains: 2,
			UniqueDomains:      []string{"a.com", "b.com"},
		},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func sampleReportWithDetails() *Report {
	report := sampleReport()
	report.Details = []enrich.Detail{
		{URL: "https://a.com/x", Title: "Page A", Description: "About A", StatusCode: 200, Exists: true},
		{URL: "http://b.com/y", Title: "N/A", Description: "N/A", StatusCode: 404, Exists: false},
		{URL: "http://c.com", Title: "Error fetching", Description: "Error: dial tcp", StatusCode: enrich.StatusError, Exists: false},
	}
	return report
}

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReportWithDetails()))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		TotalURLsFound int      `json:"total_urls_found"`
		UniqueURLs     []string `json:"unique_urls"`
		URLDetails     []struct {
			URL        string `json:"url"`
			StatusCode int    `json:"status_code"`
			Exists     bool   `json:"exists"`
		} `json:"url_details"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, 2, decoded.TotalURLsFound)
	assert.Len(t, decoded.UniqueURLs, 2)
	require.Len(t, decoded.URLDetails, 3)
	assert.Equal(t, -1, decoded.URLDetails[2].StatusCode)
	assert.False(t, decoded.URLDetails[2].Exists)
}

func TestJSONWriterOmitsDetailsWhenAbsent(t *testing.T) {
	var sb strings.Builder
	w := NewJSONStreamWriter(&sb)
	require.NoError(t, w.Write(sampleReport()))
	require.NoError(t, w.Close())

	assert.NotContains(t, sb.String(), "url_details")
	assert.Contains(t, sb.String(), `"total_urls_found": 2`)
}

func TestCSVWriterSingleColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReport()))
	require.NoError(t, w.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"URLs"}, rows[0])
	assert.Equal(t, []string{"https://a.com/x"}, rows[1])
	assert.Equal(t, []string{"http://b.com/y"}, rows[2])
}

func TestHTMLWriterReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	w, err := NewHTMLWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReportWithDetails()))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "Page A")
	assert.Contains(t, html, `badge ok`)
	assert.Contains(t, html, `badge missing`)
	assert.Contains(t, html, `badge error`)
	assert.Contains(t, html, "200 OK: <strong>1</strong>")
	assert.Contains(t, html, "404 Not Found: <strong>1</strong>")
	assert.Contains(t, html, "Errors: <strong>1</strong>")
	// Self-contained: no external assets.
	assert.NotContains(t, html, "<script src")
	assert.NotContains(t, html, `<link rel="stylesheet" href`)
}

func TestHTMLWriterWithoutDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")

	w, err := NewHTMLWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReport()))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "https://a.com/x")
	assert.NotContains(t, string(data), "200 OK:")
}

func TestExcelWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	w, err := NewExcelWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleReportWithDetails()))
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSummarize(t *testing.T) {
	summary := sampleReportWithDetails().Summarize()
	assert.Equal(t, Summary{OK: 1, NotFound: 1, Errors: 1}, summary)
}

func TestManagerRejectsBadFormat(t *testing.T) {
	_, err := NewManager(Format("xml"), "out.xml")
	assert.Error(t, err)

	_, err = NewManager(FormatJSON, "")
	assert.Error(t, err)
}

func TestManagerWritesConfiguredFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	m, err := NewManager(FormatJSON, path)
	require.NoError(t, err)
	require.NoError(t, m.Write(sampleReport()))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
