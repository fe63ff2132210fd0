// Package canonical rewrites candidate sentences into normalized actionable
// styling statements, or rejects them.
package canonical

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/okafor/stylerules/internal/vocab"
)

// maxHeadingWords is the longest colon-prefixed label treated as a heading
// and stripped ("Tip:", "Style note:", ...).
const maxHeadingWords = 6

var (
	baggy      = regexp.MustCompile(`\bbaggy\b`)
	loose      = regexp.MustCompile(`\bloose\b`)
	slimFit    = regexp.MustCompile(`\bslim-fit\b`)
	whitespace = regexp.MustCompile(`\s+`)
)

// Canonicalizer normalizes sentences against a controlled vocabulary
type Canonicalizer struct {
	vocab vocab.Vocabulary
}

// New creates a Canonicalizer using the given vocabulary
func New(v vocab.Vocabulary) *Canonicalizer {
	return &Canonicalizer{vocab: v}
}

// Canonicalize returns the canonical form of sentence, or "" to reject it.
// A non-empty result is lower-case apart from a capitalized first letter,
// ends with a single period, and contains at least one clothing-item term
// alongside a pairing verb or a layering term. Canonicalize is idempotent:
// feeding an accepted statement back in yields the same statement.
func (c *Canonicalizer) Canonicalize(sentence string) string {
	s := strings.TrimSpace(sentence)

	// Strip short label/heading prefixes before a colon
	if left, right, ok := strings.Cut(s, ":"); ok {
		if len(strings.Fields(left)) <= maxHeadingWords {
			s = strings.TrimSpace(right)
		}
	}

	s = strings.ToLower(s)

	// Accessory-only statements are not actionable styling rules
	if vocab.ContainsAny(c.vocab.Accessory, s) && !vocab.ContainsAny(c.vocab.Items, s) {
		return ""
	}

	// Rewrite informal synonyms to controlled vocabulary
	s = baggy.ReplaceAllString(s, "oversized")
	s = loose.ReplaceAllString(s, "relaxed")
	s = slimFit.ReplaceAllString(s, "slim")

	s = strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
	if s == "" {
		return ""
	}

	// Acceptance gate: a pairing verb or a layering term, co-occurring with
	// a clothing item. Everything else is descriptive prose.
	hasItem := vocab.ContainsAny(c.vocab.Items, s)
	if hasItem && (vocab.ContainsAny(c.vocab.Pairing, s) || vocab.ContainsAny(c.vocab.Layering, s)) {
		return accept(s)
	}

	return ""
}

// accept finalizes a statement: capitalize the first rune and terminate
// with a period, without double-applying either.
func accept(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	s = string(unicode.ToUpper(r)) + s[size:]
	if !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}
