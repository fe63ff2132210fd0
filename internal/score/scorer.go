// Package score computes confidence scores from metadata completeness.
package score

import (
	"math"

	"github.com/okafor/stylerules/internal/model"
)

// MinConfidence is the hard acceptance floor: statements scoring below it
// never become records.
const MinConfidence = 0.45

// Scorer computes a bounded quality score from populated metadata
// categories. Items weigh double: a rule without concrete clothing items
// is worth little to downstream retrieval.
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate returns the confidence for meta, in [0, 1], rounded to two
// decimals. The raw score is 2 for items, 1 each for fit, color, style and
// occasion, 0.5 for layering, normalized by 6 and capped at 1. Adding a
// term to an empty category never lowers the result.
func (s *Scorer) Calculate(meta model.Metadata) float64 {
	raw := 0.0
	if len(meta.Items) > 0 {
		raw += 2
	}
	if len(meta.Fit) > 0 {
		raw++
	}
	if len(meta.Color) > 0 {
		raw++
	}
	if len(meta.Style) > 0 {
		raw++
	}
	if len(meta.Occasion) > 0 {
		raw++
	}
	if meta.Layering {
		raw += 0.5
	}

	conf := raw / 6
	if conf > 1 {
		conf = 1
	}
	return math.Round(conf*100) / 100
}
