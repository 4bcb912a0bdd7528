// internal/export/html.go
package export

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strconv"

	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/extract"
)

// HTMLWriter renders a self-contained report document: summary counts,
// the unique URL, stream and domain lists, and, when enrichment ran, a
// per-URL table with title, description and a status badge. No external
// assets are referenced.
type HTMLWriter struct {
	out    io.Writer
	closer io.Closer
}

// NewHTMLWriter creates an HTML writer backed by a file.
func NewHTMLWriter(filename string) (*HTMLWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &HTMLWriter{out: file, closer: file}, nil
}

type htmlRow struct {
	URL         string
	Title       string
	Description string
	StatusLabel string
	StatusClass string
}

type htmlView struct {
	Result      *extract.Result
	Summary     Summary
	Rows        []htmlRow
	HasDetails  bool
	GeneratedAt string
}

// Write renders the report.
func (w *HTMLWriter) Write(report *Report) error {
	view := htmlView{
		Result:      report.Result,
		Summary:     report.Summarize(),
		HasDetails:  len(report.Details) > 0,
		GeneratedAt: report.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
	}

	for _, d := range report.Details {
		view.Rows = append(view.Rows, htmlRow{
			URL:         d.URL,
			Title:       d.Title,
			Description: d.Description,
			StatusLabel: statusLabel(d),
			StatusClass: statusClass(d),
		})
	}

	if err := reportTemplate.Execute(w.out, view); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any.
func (w *HTMLWriter) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

func statusLabel(d enrich.Detail) string {
	if d.StatusCode == enrich.StatusError {
		return "ERROR"
	}
	return strconv.Itoa(d.StatusCode)
}

func statusClass(d enrich.Detail) string {
	switch d.StatusCode {
	case 200:
		return "ok"
	case 404:
		return "missing"
	case enrich.StatusError:
		return "error"
	default:
		return "other"
	}
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>LinkHarvester Report</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 2em; color: #222; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
.badge { display: inline-block; padding: 2px 8px; border-radius: 4px; color: #fff; font-size: 0.85em; }
.badge.ok { background: #2e7d32; }
.badge.missing { background: #c62828; }
.badge.error { background: #6a1b9a; }
.badge.other { background: #ef6c00; }
.counts span { margin-right: 1.5em; }
ul { columns: 1; }
footer { margin-top: 2em; color: #888; font-size: 0.8em; }
</style>
</head>
<body>
<h1>LinkHarvester Report</h1>
<p class="counts">
<span>URLs: <strong>{{.Result.TotalURLsFound}}</strong></span>
<span>Stream URLs: <strong>{{.Result.TotalStreamURLs}}</strong></span>
<span>Domains: <strong>{{.Result.TotalUniqueDomains}}</strong></span>
</p>
{{if .HasDetails}}
<p class="counts">
<span>200 OK: <strong>{{.Summary.OK}}</strong></span>
<span>404 Not Found: <strong>{{.Summary.NotFound}}</strong></span>
<span>Errors: <strong>{{.Summary.Errors}}</strong></span>
<span>Other: <strong>{{.Summary.Other}}</strong></span>
</p>
<table>
<tr><th>URL</th><th>Title</th><th>Description</th><th>Status</th></tr>
{{range .Rows}}
<tr>
<td>{{.URL}}</td>
<td>{{.Title}}</td>
<td>{{.Description}}</td>
<td><span class="badge {{.StatusClass}}">{{.StatusLabel}}</span></td>
</tr>
{{end}}
</table>
{{else}}
<h2>Unique URLs</h2>
<ul>{{range .Result.UniqueURLs}}<li>{{.}}</li>{{end}}</ul>
{{end}}
<h2>Unique Stream URLs</h2>
<ul>{{range .Result.UniqueStreamURLs}}<li>{{.}}</li>{{else}}<li>(none found)</li>{{end}}</ul>
<h2>Unique Domains</h2>
<ul>{{range .Result.UniqueDomains}}<li>{{.}}</li>{{else}}<li>(none found)</li>{{end}}</ul>
<footer>Generated {{.GeneratedAt}} by LinkHarvester</footer>
</body>
</html>
`))
