package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/okafor/stylerules/internal/model"
)

// PDFReader extracts per-page text from PDF documents
type PDFReader struct{}

// NewPDFReader creates a pdf reader
func NewPDFReader() *PDFReader {
	return &PDFReader{}
}

// Kind implements Reader
func (r *PDFReader) Kind() model.SourceKind {
	return model.SourcePDF
}

// Read joins the extracted text of each page with single spaces. Pages
// that fail to decode are skipped rather than failing the document.
func (r *PDFReader) Read(_ context.Context, path string) (text string, err error) {
	// The pdf library panics on some malformed cross-reference tables;
	// convert that into a ParseFailure-style error.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("parse pdf %s: %v", path, rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pageText = strings.TrimSpace(pageText)
		if pageText != "" {
			pages = append(pages, pageText)
		}
	}

	return strings.Join(pages, " "), nil
}
