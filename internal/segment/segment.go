// Package segment splits normalized source text into sentence-like units.
package segment

import (
	"iter"
	"regexp"
	"strings"
)

// MinLength is the minimum unit length after trimming. Shorter fragments
// (headings, list markers, abbreviation tails) are discarded.
const MinLength = 13

var whitespace = regexp.MustCompile(`\s+`)

// Sentences returns a lazy, restartable sequence of trimmed sentence-like
// units from text. Whitespace and newlines are collapsed to single spaces,
// then the text is split after terminal punctuation (., !, ?) followed by a
// space; the punctuation itself is kept with its sentence. A trailing
// fragment without terminal punctuation is yielded too if long enough.
func Sentences(text string) iter.Seq[string] {
	normalized := strings.TrimSpace(whitespace.ReplaceAllString(text, " "))

	return func(yield func(string) bool) {
		start := 0
		for i := 0; i < len(normalized); i++ {
			c := normalized[i]
			if c != '.' && c != '!' && c != '?' {
				continue
			}
			if i+1 >= len(normalized) || normalized[i+1] != ' ' {
				continue
			}
			unit := strings.TrimSpace(normalized[start : i+1])
			if len(unit) >= MinLength {
				if !yield(unit) {
					return
				}
			}
			start = i + 1
		}

		if start < len(normalized) {
			unit := strings.TrimSpace(normalized[start:])
			if len(unit) >= MinLength {
				yield(unit)
			}
		}
	}
}

// Collect drains the sequence into a slice
func Collect(text string) []string {
	var out []string
	for s := range Sentences(text) {
		out = append(out, s)
	}
	return out
}
