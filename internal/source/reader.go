// Package source normalizes heterogeneous inputs (web pages, word-processor
// documents, PDFs, slide decks) into plain text. Readers fail soft: a fetch
// or parse failure surfaces as an error the pipeline logs and treats as
// empty text, never aborting the run.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/okafor/stylerules/internal/model"
)

// Reader produces plain text from a described resource
type Reader interface {
	// Read extracts text from ref (a URL or file path). A single attempt,
	// no retries.
	Read(ctx context.Context, ref string) (string, error)

	// Kind identifies the source format this reader handles
	Kind() model.SourceKind
}

// KindForRef classifies a source reference: http(s) URLs are web sources,
// local files are classified by extension.
func KindForRef(ref string) (model.SourceKind, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return model.SourceWeb, nil
	}

	switch strings.ToLower(filepath.Ext(ref)) {
	case ".docx":
		return model.SourceDocx, nil
	case ".pdf":
		return model.SourcePDF, nil
	case ".pptx":
		return model.SourceSlides, nil
	default:
		return "", fmt.Errorf("unsupported source: %q", ref)
	}
}
