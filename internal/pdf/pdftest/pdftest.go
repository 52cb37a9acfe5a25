// Package pdftest builds small PDF documents used as form templates in tests
// and local development.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// Blank returns a single Letter page with a title line, using points as the unit
// so coordinates match the PDF user space.
func Blank(title string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(72, 60, title)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("build blank template: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTemplates writes blank templates under dir using the given names.
func WriteTemplates(dir string, names ...string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range names {
		b, err := Blank(name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
			return err
		}
	}
	return nil
}
