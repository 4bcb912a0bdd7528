// internal/export/types.go

// Package export renders extraction results to files: pretty JSON, a
// single-column CSV, a self-contained HTML report, or an Excel
// workbook.
package export

import (
	"time"

	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/extract"
)

// Format represents a supported export format.
type Format string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatHTML  Format = "html"
	FormatExcel Format = "excel"
)

// ValidFormats returns all valid export format values.
func ValidFormats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatHTML, FormatExcel}
}

// IsValidFormat checks whether f is a supported export format.
func IsValidFormat(f Format) bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Report bundles everything an export writer may render. Details is nil
// when enrichment was not requested.
type Report struct {
	Result      *extract.Result
	Details     []enrich.Detail
	GeneratedAt time.Time
}

// Summary tallies enrichment outcomes for the HTML and Excel reports.
type Summary struct {
	OK       int
	NotFound int
	Errors   int
	Other    int
}

// Summarize counts details per status class.
func (r *Report) Summarize() Summary {
	var s Summary
	for _, d := range r.Details {
		switch d.StatusCode {
		case 200:
			s.OK++
		case 404:
			s.NotFound++
		case enrich.StatusError:
			s.Errors++
		default:
			s.Other++
		}
	}
	return s
}

// Writer renders a report to its destination.
type Writer interface {
	Write(report *Report) error
	Close() error
}
