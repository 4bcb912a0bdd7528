// internal/export/manager.go
package export

import (
	"fmt"

	"github.com/valpere/LinkHarvester/internal/metrics"
)

// Manager selects and drives the writer for a configured format.
type Manager struct {
	format Format
	file   string
}

// NewManager creates an export manager for the given format and
// destination file.
func NewManager(format Format, file string) (*Manager, error) {
	if !IsValidFormat(format) {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if file == "" {
		return nil, fmt.Errorf("export file is required")
	}
	return &Manager{format: format, file: file}, nil
}

// GetWriter returns the writer for the configured format.
func (m *Manager) GetWriter() (Writer, error) {
	switch m.format {
	case FormatJSON:
		return NewJSONWriter(m.file)
	case FormatCSV:
		return NewCSVWriter(m.file)
	case FormatHTML:
		return NewHTMLWriter(m.file)
	case FormatExcel:
		return NewExcelWriter(m.file)
	default:
		return nil, fmt.Errorf("unsupported export format: %s", m.format)
	}
}

// Write renders the report using the configured format.
func (m *Manager) Write(report *Report) error {
	writer, err := m.GetWriter()
	if err != nil {
		return fmt.Errorf("failed to get writer: %w", err)
	}
	defer writer.Close()

	if err := writer.Write(report); err != nil {
		return err
	}

	metrics.ExportsTotal.WithLabelValues(string(m.format)).Inc()
	return nil
}
