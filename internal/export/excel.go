// internal/export/excel.go
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelWriter writes the report as an Excel workbook: a Summary sheet
// with the counts, a URLs sheet with the three deduplicated lists, and
// a Details sheet when enrichment ran.
type ExcelWriter struct {
	filename string
}

// NewExcelWriter creates a new Excel writer.
func NewExcelWriter(filename string) (*ExcelWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("excel output requires a filename")
	}
	return &ExcelWriter{filename: filename}, nil
}

// Write builds the workbook and saves it.
func (w *ExcelWriter) Write(report *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, report); err != nil {
		return err
	}
	if err := w.writeURLs(f, report); err != nil {
		return err
	}
	if len(report.Details) > 0 {
		if err := w.writeDetails(f, report); err != nil {
			return err
		}
	}

	if err := f.SaveAs(w.filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *ExcelWriter) writeSummary(f *excelize.File, report *Report) error {
	const sheet = "Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Total unique URLs", report.Result.TotalURLsFound},
		{"Total unique stream URLs", report.Result.TotalStreamURLs},
		{"Total unique domains", report.Result.TotalUniqueDomains},
	}
	if len(report.Details) > 0 {
		summary := report.Summarize()
		rows = append(rows,
			[]interface{}{"Status 200", summary.OK},
			[]interface{}{"Status 404", summary.NotFound},
			[]interface{}{"Fetch errors", summary.Errors},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func (w *ExcelWriter) writeURLs(f *excelize.File, report *Report) error {
	const sheet = "URLs"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create URLs sheet: %w", err)
	}

	header := []interface{}{"URLs", "Stream URLs", "Domains"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	columns := [][]string{
		report.Result.UniqueURLs,
		report.Result.UniqueStreamURLs,
		report.Result.UniqueDomains,
	}
	for col, values := range columns {
		for row, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write URL cell: %w", err)
			}
		}
	}
	return nil
}

func (w *ExcelWriter) writeDetails(f *excelize.File, report *Report) error {
	const sheet = "Details"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create details sheet: %w", err)
	}

	header := []interface{}{"URL", "Title", "Description", "Status", "Exists"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, d := range report.Details {
		row := []interface{}{d.URL, d.Title, d.Description, statusLabel(d), d.Exists}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write detail row: %w", err)
		}
	}
	return nil
}

// Close is a no-op; the workbook is written atomically by Write.
func (w *ExcelWriter) Close() error { return nil }
