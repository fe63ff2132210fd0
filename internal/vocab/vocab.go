// Package vocab holds the controlled vocabularies the pipeline matches
// against. The tables are configuration data: components take a Vocabulary
// value so tests can substitute smaller ones.
package vocab

import "strings"

// Vocabulary groups the fixed term tables used for canonicalization and
// metadata extraction.
type Vocabulary struct {
	Fit       []string
	Color     []string
	Style     []string
	Items     []string
	Occasion  []string
	Layering  []string
	Pairing   []string
	Accessory []string
}

// Default returns the standard styling vocabulary
func Default() Vocabulary {
	return Vocabulary{
		Fit:   []string{"oversized", "relaxed", "slim", "fitted", "tailored"},
		Color: []string{"white", "black", "neutral", "beige", "earthy", "brown", "olive"},
		Style: []string{"classic", "casual", "formal", "athleisure", "minimal", "polished"},
		Items: []string{
			"t-shirt", "tee", "shirt", "jeans", "denim", "pants", "trousers",
			"skirt", "dress", "jacket", "blazer", "coat", "sweater", "joggers",
		},
		Occasion: []string{"casual", "everyday", "office", "formal", "weekend"},
		Layering: []string{"jacket", "blazer", "coat"},
		Pairing:  []string{"pair", "combine", "match", "wear", "layer", "add"},
		Accessory: []string{
			"necklace", "jewelry", "earrings", "bracelet",
			"choker", "ring", "hat", "scarf", "accessories",
		},
	}
}

// ContainsAny reports whether any term occurs in text. Matching is
// case-insensitive substring containment, not word-boundary matching:
// short terms inside longer words count as hits.
func ContainsAny(terms []string, text string) bool {
	t := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

// Matching returns every term from terms contained in text, in table order
func Matching(terms []string, text string) []string {
	t := strings.ToLower(text)
	var found []string
	for _, term := range terms {
		if strings.Contains(t, term) {
			found = append(found, term)
		}
	}
	return found
}
