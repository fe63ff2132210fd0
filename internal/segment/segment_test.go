package segment

import (
	"reflect"
	"testing"
)

func TestSentences_SplitsAtTerminalPunctuation(t *testing.T) {
	text := "Pair a blazer with jeans for a polished look. Add white sneakers to keep it casual! Does the outfit need a belt? Probably not."

	got := Collect(text)
	want := []string{
		"Pair a blazer with jeans for a polished look.",
		"Add white sneakers to keep it casual!",
		"Does the outfit need a belt?",
		"Probably not.",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %q, want %q", got, want)
	}
}

func TestSentences_CollapsesWhitespace(t *testing.T) {
	text := "Wear   a \t tailored\nblazer over jeans.   Keep the  rest\n\nsimple and neutral."

	got := Collect(text)
	want := []string{
		"Wear a tailored blazer over jeans.",
		"Keep the rest simple and neutral.",
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collect() = %q, want %q", got, want)
	}
}

func TestSentences_DiscardsShortUnits(t *testing.T) {
	text := "Nope. Short one. Wear a tailored blazer over relaxed jeans."

	got := Collect(text)
	if len(got) != 1 {
		t.Fatalf("Expected 1 sentence, got %d: %q", len(got), got)
	}
	if got[0] != "Wear a tailored blazer over relaxed jeans." {
		t.Errorf("Unexpected sentence: %q", got[0])
	}
}

func TestSentences_KeepsTrailingFragment(t *testing.T) {
	text := "First full sentence here. then a trailing fragment without punctuation"

	got := Collect(text)
	if len(got) != 2 {
		t.Fatalf("Expected 2 units, got %d: %q", len(got), got)
	}
	if got[1] != "then a trailing fragment without punctuation" {
		t.Errorf("Unexpected trailing unit: %q", got[1])
	}
}

func TestSentences_NoSplitWithoutFollowingSpace(t *testing.T) {
	// Punctuation not followed by whitespace is not a boundary
	text := "Sizes like 38.5 should stay inside one sentence about jeans."

	got := Collect(text)
	if len(got) != 1 {
		t.Fatalf("Expected 1 sentence, got %d: %q", len(got), got)
	}
}

func TestSentences_Restartable(t *testing.T) {
	seq := Sentences("One full sentence right here. And another one after it.")

	var first, second []string
	for s := range seq {
		first = append(first, s)
	}
	for s := range seq {
		second = append(second, s)
	}

	if len(first) == 0 || !reflect.DeepEqual(first, second) {
		t.Errorf("Sequence not restartable: first=%q second=%q", first, second)
	}
}

func TestSentences_EmptyInput(t *testing.T) {
	if got := Collect(""); got != nil {
		t.Errorf("Expected no sentences for empty input, got %q", got)
	}
	if got := Collect("   \n\t  "); got != nil {
		t.Errorf("Expected no sentences for blank input, got %q", got)
	}
}
