package source

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/okafor/stylerules/internal/model"
)

// DocxReader extracts paragraph text from word-processor documents.
// A .docx file is a zip archive; the body lives in word/document.xml as
// w:p paragraphs containing w:t text runs.
type DocxReader struct{}

// NewDocxReader creates a docx reader
func NewDocxReader() *DocxReader {
	return &DocxReader{}
}

// Kind implements Reader
func (r *DocxReader) Kind() model.SourceKind {
	return model.SourceDocx
}

// Read joins the document's non-empty paragraphs with single spaces
func (r *DocxReader) Read(_ context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer func() { _ = zr.Close() }()

	return docxText(&zr.Reader)
}

func docxText(zr *zip.Reader) (string, error) {
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		defer func() { _ = rc.Close() }()

		paragraphs, err := ooxmlParagraphs(xml.NewDecoder(rc), "p", "t")
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}

		return strings.Join(paragraphs, " "), nil
	}

	return "", fmt.Errorf("no word/document.xml in archive")
}

// ooxmlParagraphs walks an OOXML stream collecting the character data of
// text runs (textEl) grouped by paragraph element (paraEl). Element names
// are matched by local name; namespace prefixes differ between producers.
func ooxmlParagraphs(dec *xml.Decoder, paraEl, textEl string) ([]string, error) {
	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	flush := func() {
		text := strings.TrimSpace(current.String())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case paraEl:
				if inParagraph {
					flush()
				}
				inParagraph = true
			case textEl:
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case paraEl:
				if inParagraph {
					flush()
					inParagraph = false
				}
			case textEl:
				inText = false
			}
		case xml.CharData:
			if inParagraph && inText {
				current.Write(t)
			}
		}
	}

	if inParagraph {
		flush()
	}

	return paragraphs, nil
}
