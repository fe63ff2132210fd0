package source

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/okafor/stylerules/internal/model"
)

// SlidesReader extracts per-shape text from presentation decks. A .pptx
// archive stores one XML part per slide under ppt/slides/; shape text runs
// are a:t elements grouped into a:p paragraphs.
type SlidesReader struct{}

// NewSlidesReader creates a pptx reader
func NewSlidesReader() *SlidesReader {
	return &SlidesReader{}
}

// Kind implements Reader
func (r *SlidesReader) Kind() model.SourceKind {
	return model.SourceSlides
}

// Read joins shape text across all slides with single spaces, in slide
// order.
func (r *SlidesReader) Read(_ context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("open pptx: %w", err)
	}
	defer func() { _ = zr.Close() }()

	return slidesText(&zr.Reader)
}

func slidesText(zr *zip.Reader) (string, error) {
	var slides []*zip.File
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			slides = append(slides, f)
		}
	}

	if len(slides) == 0 {
		return "", fmt.Errorf("no slides in archive")
	}

	// Archive order is not guaranteed to follow slide numbering
	sort.Slice(slides, func(i, j int) bool { return slideLess(slides[i].Name, slides[j].Name) })

	var blocks []string
	for _, f := range slides {
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", f.Name, err)
		}

		paragraphs, err := ooxmlParagraphs(xml.NewDecoder(rc), "p", "t")
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("parse %s: %w", f.Name, err)
		}

		blocks = append(blocks, paragraphs...)
	}

	return strings.Join(blocks, " "), nil
}

// slideLess orders slide part names numerically: slide2.xml before
// slide10.xml.
func slideLess(a, b string) bool {
	return slideNum(a) < slideNum(b)
}

func slideNum(name string) int {
	name = strings.TrimPrefix(name, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	n := 0
	for _, c := range name {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
