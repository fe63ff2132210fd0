// Package extract derives structured metadata from canonical statements.
package extract

import (
	"sort"

	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/vocab"
)

// Extractor scans canonical text against the controlled vocabularies.
// Extraction is a pure function of the input text.
type Extractor struct {
	vocab vocab.Vocabulary
}

// NewExtractor creates an Extractor over the given vocabulary
func NewExtractor(v vocab.Vocabulary) *Extractor {
	return &Extractor{vocab: v}
}

// Extract collects every matching term per vocabulary, applies the implicit
// inference rules, and returns sorted, deduplicated attributes. Term
// matching is substring containment; see vocab.ContainsAny.
func (e *Extractor) Extract(text string) model.Metadata {
	meta := model.Metadata{
		Fit:      vocab.Matching(e.vocab.Fit, text),
		Color:    vocab.Matching(e.vocab.Color, text),
		Style:    vocab.Matching(e.vocab.Style, text),
		Items:    vocab.Matching(e.vocab.Items, text),
		Occasion: vocab.Matching(e.vocab.Occasion, text),
		Layering: vocab.ContainsAny(e.vocab.Layering, text),
	}

	// Implicit inference: certain items, colors, and fits imply a style.
	// Inference can set layering but never clear it.
	if contains(meta.Items, "blazer") {
		meta.Style = append(meta.Style, "classic")
		meta.Layering = true
	}
	if contains(meta.Items, "denim") || contains(meta.Items, "jeans") {
		meta.Style = append(meta.Style, "classic")
	}
	if contains(meta.Color, "white") || contains(meta.Color, "neutral") {
		meta.Style = append(meta.Style, "minimal")
	}
	if contains(meta.Fit, "tailored") {
		meta.Style = append(meta.Style, "polished")
	}

	meta.Fit = sortUnique(meta.Fit)
	meta.Color = sortUnique(meta.Color)
	meta.Style = sortUnique(meta.Style)
	meta.Items = sortUnique(meta.Items)
	meta.Occasion = sortUnique(meta.Occasion)

	return meta
}

func contains(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}

// sortUnique sorts and deduplicates terms. It always returns a non-nil
// slice so list attributes serialize as [] rather than null.
func sortUnique(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
