// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter writes the unique URL list as a single-column CSV.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(filename string) (*CSVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &CSVWriter{
		file:   file,
		writer: csv.NewWriter(file),
	}, nil
}

// Write writes the header row followed by one row per unique URL.
func (w *CSVWriter) Write(report *Report) error {
	if err := w.writer.Write([]string{"URLs"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, u := range report.Result.UniqueURLs {
		if err := w.writer.Write([]string{u}); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the CSV writer.
func (w *CSVWriter) Close() error {
	if w.writer != nil {
		w.writer.Flush()
		w.writer = nil
	}
	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}
	return nil
}
