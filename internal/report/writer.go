// Package report renders a verification result as a downloadable CSV or XLSX
// comparison table. Reports are produced in-request; nothing is stored.
package report

import (
	"encoding/csv"
	"io"

	"docverify/internal/domain"
)

// BOM is the UTF-8 byte order mark, prepended for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Verification ID",
	"Document Type",
	"Verdict",
	"Field",
	"User Data",
	"Data From Document",
	"Field Status",
}

// Writer wraps csv.Writer for exporting a verification result as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult writes one row per field comparison.
func (w *Writer) WriteResult(res *domain.VerificationResult) error {
	for _, d := range res.Details {
		row := []string{
			res.VerificationID.String(),
			string(res.DocumentType),
			string(res.Status),
			d.Field,
			d.UserData,
			d.DataFromDocument,
			string(d.Status),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}
