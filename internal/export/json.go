// internal/export/json.go
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/valpere/LinkHarvester/internal/enrich"
	"github.com/valpere/LinkHarvester/internal/extract"
)

// JSONWriter writes the result record as pretty-printed JSON. When the
// report carries enrichment details, they are included under
// "url_details".
type JSONWriter struct {
	out    io.Writer
	closer io.Closer
}

// NewJSONWriter creates a JSON writer backed by a file.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &JSONWriter{out: file, closer: file}, nil
}

// NewJSONStreamWriter creates a JSON writer over an arbitrary writer,
// for stdout output.
func NewJSONStreamWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

type jsonDocument struct {
	*extract.Result
	URLDetails []enrich.Detail `json:"url_details,omitempty"`
}

// Write encodes the report.
func (w *JSONWriter) Write(report *Report) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonDocument{
		Result:     report.Result,
		URLDetails: report.Details,
	})
}

// Close closes the underlying file, if any.
func (w *JSONWriter) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}
