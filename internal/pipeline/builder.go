package pipeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/okafor/stylerules/internal/canonical"
	"github.com/okafor/stylerules/internal/extract"
	"github.com/okafor/stylerules/internal/model"
	"github.com/okafor/stylerules/internal/score"
	"github.com/okafor/stylerules/internal/segment"
	"github.com/okafor/stylerules/internal/vocab"
)

// Builder turns one source's raw text into records. It owns the
// cross-source seen-set: canonical text is unique (case-insensitive)
// across every source processed by the same Builder. Not safe for
// concurrent use; the pipeline calls it from a single goroutine.
type Builder struct {
	canon  *canonical.Canonicalizer
	meta   *extract.Extractor
	scorer *score.Scorer
	seen   map[string]struct{}
	stats  Stats
}

// Stats counts per-stage rejections across a run. Rejections are expected
// control flow, not failures.
type Stats struct {
	Sentences     int
	NotCanonical  int
	NoItems       int
	LowConfidence int
	Duplicates    int
	Emitted       int
}

// NewBuilder creates a Builder with a fresh seen-set over the given
// vocabulary.
func NewBuilder(v vocab.Vocabulary) *Builder {
	return &Builder{
		canon:  canonical.New(v),
		meta:   extract.NewExtractor(v),
		scorer: score.NewScorer(),
		seen:   make(map[string]struct{}),
	}
}

// Build segments text, canonicalizes each candidate sentence, and emits a
// record for every statement that passes the hard rules: items non-empty,
// confidence at or above the floor, canonical text not seen before in this
// run. Empty text yields zero records.
func (b *Builder) Build(sourceRef string, text string) []model.Record {
	var records []model.Record

	for sentence := range segment.Sentences(text) {
		b.stats.Sentences++

		canon := b.canon.Canonicalize(sentence)
		if canon == "" {
			b.stats.NotCanonical++
			continue
		}

		meta := b.meta.Extract(canon)
		if len(meta.Items) == 0 {
			b.stats.NoItems++
			continue
		}

		conf := b.scorer.Calculate(meta)
		if conf < score.MinConfidence {
			b.stats.LowConfidence++
			continue
		}

		// Check-then-insert is one logical step; Build is single-owner
		key := strings.ToLower(canon)
		if _, dup := b.seen[key]; dup {
			b.stats.Duplicates++
			continue
		}
		b.seen[key] = struct{}{}

		b.stats.Emitted++
		records = append(records, model.Record{
			ID:            uuid.NewString(),
			Source:        sourceRef,
			CanonicalText: canon,
			Metadata:      meta,
			Confidence:    conf,
			RawText:       sentence,
		})
	}

	return records
}

// Stats returns the rejection counters accumulated so far
func (b *Builder) Stats() Stats {
	return b.stats
}
